package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pana-lang/pana/internal/eval"
	"github.com/pana-lang/pana/internal/lexer"
	"github.com/pana-lang/pana/internal/object"
	"github.com/pana-lang/pana/internal/parser"
	"github.com/spf13/cobra"
)

// Version information, overridable by build flags (-ldflags
// "-X ...Version=...").
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

//go:embed assets/banner.txt
var banner string

var (
	evalExpr string
	dumpAST  bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "pana [archivo]",
	Short: "Interprete del lenguaje de programacion Pana",
	Long: `pana es el interprete del lenguaje de programacion Pana, un lenguaje
dinamico con palabras clave en espanol.

Uso:
  pana script.pana          ejecuta un archivo .pana
  pana -e "imprimir(1+1);"  evalua una expresion en linea
  pana                      sin argumentos, muestra esta ayuda`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runFile,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "muestra informacion adicional durante la ejecucion")
	rootCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evalua codigo en linea en lugar de leer un archivo")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "imprime el AST resultante antes de evaluar (depuracion)")
}

// Execute runs the root command; its returned error already carries
// the message the caller should print before exiting non-zero.
func Execute() error {
	return rootCmd.Execute()
}

func runFile(c *cobra.Command, args []string) error {
	if evalExpr == "" && len(args) == 0 {
		return c.Help()
	}
	if len(args) == 1 && args[0] == "pana" {
		fmt.Println(banner)
		return nil
	}

	input, filename, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(input)
	p := parser.New(l)
	program := p.ParseProgram()
	if p.Err != nil {
		fmt.Fprintln(os.Stderr, p.Err.Error())
		os.Exit(1)
	}

	if dumpAST {
		fmt.Println(program.String())
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "ejecutando %s\n", filename)
	}

	ev := eval.New()
	env := object.NewEnvironment()
	result := ev.Run(program, env)
	if e, ok := result.(object.Error); ok {
		fmt.Fprintln(os.Stderr, e.Display())
		os.Exit(1)
	}
	return nil
}

func readSource(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	filename = args[0]
	if !strings.HasSuffix(filename, ".pana") {
		return "", "", fmt.Errorf("el archivo `%s` debe tener la extension .pana", filename)
	}
	content, readErr := os.ReadFile(filename)
	if readErr != nil {
		return "", "", fmt.Errorf("no se pudo leer el archivo `%s`: %w", filename, readErr)
	}
	return string(content), filename, nil
}
