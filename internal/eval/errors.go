package eval

import (
	"fmt"

	"github.com/pana-lang/pana/internal/ast"
	"github.com/pana-lang/pana/internal/diag"
	"github.com/pana-lang/pana/internal/object"
)

// newError builds a located runtime error, framing the message with
// pos's source position and marking it so an outer frame that receives
// it back as an operand won't re-frame it.
func newError(pos ast.Node, format string, args ...interface{}) object.Value {
	p := pos.Pos()
	se := &diag.SourceError{Line: p.Line, Col: p.Col, Message: fmt.Sprintf(format, args...)}
	return object.Error{Message: "^" + se.RuntimeError(), Line: p.Line, Col: p.Col}
}

func isError(v object.Value) bool {
	_, ok := v.(object.Error)
	return ok
}
