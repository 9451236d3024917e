package cmd

import (
	"fmt"
	"os"

	"github.com/ahl00/go-arrow/internal/ast"
	arrowerrors "github.com/ahl00/go-arrow/internal/errors"
	"github.com/ahl00/go-arrow/pkg/arrow"
	"github.com/spf13/cobra"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an Arrow file and display its AST",
	Long: `Parse Arrow source code and display its Abstract Syntax Tree.

Without --dump-ast, the program's canonical String() form is printed;
with it, a nested per-node dump is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline source instead of reading from file")
	parseCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the full AST structure")
}

func runParse(_ *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, parseErr := arrow.New().Parse(source)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, arrowerrors.Format(parseErr, source, filename, !noColor))
		return fmt.Errorf("parsing failed")
	}

	if dumpAST {
		dumpProgram(prog)
	} else {
		fmt.Println(prog.String())
	}
	return nil
}

func dumpProgram(prog *ast.Program) {
	fmt.Printf("Program (%d statements)\n", len(prog.Statements))
	for _, s := range prog.Statements {
		dumpNode(s, 1)
	}
}

func dumpNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}

	switch n := node.(type) {
	case *ast.Alloc:
		kw := "const"
		if n.Mutable {
			kw = "let"
		}
		fmt.Printf("%s%s %s: %s\n", pad, kw, n.Name, n.DeclaredType)
		dumpNode(n.Initializer, indent+1)
	case *ast.Assign:
		fmt.Printf("%sAssign %s\n", pad, n.Name)
		dumpNode(n.Expr, indent+1)
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		dumpNode(n.Cond, indent+1)
		for _, s := range n.Then {
			dumpNode(s, indent+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		dumpNode(n.Cond, indent+1)
		for _, s := range n.Body {
			dumpNode(s, indent+1)
		}
	case *ast.ExpressionStatement:
		fmt.Printf("%sExpressionStatement\n", pad)
		dumpNode(n.Expr, indent+1)
	case *ast.Noop:
		fmt.Printf("%sNoop\n", pad)
	case *ast.Literal:
		fmt.Printf("%sLiteral %s\n", pad, n.Value.String())
	case *ast.VarRef:
		fmt.Printf("%sVarRef %s\n", pad, n.Name)
	case *ast.Prefix:
		fmt.Printf("%sPrefix %s\n", pad, n.Op)
		dumpNode(n.Operand, indent+1)
	case *ast.Infix:
		fmt.Printf("%sInfix %s\n", pad, n.Op)
		dumpNode(n.Left, indent+1)
		dumpNode(n.Right, indent+1)
	case *ast.Call:
		fmt.Printf("%sCall %s\n", pad, n.Function)
		for _, a := range n.Args {
			dumpNode(a, indent+1)
		}
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}
