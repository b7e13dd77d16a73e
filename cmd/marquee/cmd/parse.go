package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dhrone/tinyDisplay-sub002/pkg/frontend"
	"github.com/dhrone/tinyDisplay-sub002/pkg/logger"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse <script>",
	Short: "Dump the AST of a Marquee script",
	Long: `Parses a script and prints the resulting AST. Syntax errors go to
stderr; the best-effort tree of the statements that did parse is still
printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "text", "output format: text or yaml")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	program, parseErrs := frontend.ParseSource(source)
	logger.LogParsing(args[0], len(program.Statements), len(parseErrs))

	for _, e := range parseErrs {
		fmt.Fprintf(os.Stderr, "%s %s %s\n",
			locStyle.Render(fmt.Sprintf("%s:%d:%d:", args[0], e.Loc.Line, e.Loc.Col)),
			errStyle.Render("syntax error:"), e.Message)
	}

	dump := dumpProgram(program)
	switch parseFormat {
	case "yaml":
		out, err := yaml.Marshal(dump)
		if err != nil {
			return fmt.Errorf("encoding AST: %w", err)
		}
		fmt.Print(string(out))
	case "text":
		printTree(os.Stdout, dump, 0)
	default:
		return fmt.Errorf("unknown format %q: want text or yaml", parseFormat)
	}

	if len(parseErrs) > 0 {
		return fmt.Errorf("%d syntax error(s)", len(parseErrs))
	}
	return nil
}
