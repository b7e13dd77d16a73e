package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dhrone/tinyDisplay-sub002/pkg/frontend"
	"github.com/dhrone/tinyDisplay-sub002/pkg/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check <script>",
	Short: "Parse and validate a Marquee script",
	Long: `Runs the full front-end pipeline on a script and reports every
syntax and semantic error found. Pass "-" to read from stdin.

Diagnostics are printed as line:column: message, merged from both
passes and ordered by source position.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// diagnostic is one merged parse or validation error for rendering.
type diagnostic struct {
	loc     frontend.Location
	message string
	pass    string
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	logger.LogFileProcessing(path)

	source, err := readSource(path)
	if err != nil {
		return err
	}

	program, parseErrs, validationErrs := frontend.ParseAndValidate(source)
	logger.LogParsing(path, len(program.Statements), len(parseErrs))
	logger.LogValidation(path, len(validationErrs))

	diags := mergeDiagnostics(parseErrs, validationErrs)
	for _, d := range diags {
		fmt.Printf("%s %s %s\n",
			locStyle.Render(fmt.Sprintf("%s:%d:%d:", path, d.loc.Line, d.loc.Col)),
			renderPass(d.pass),
			d.message)
	}

	if len(diags) > 0 {
		fmt.Printf("%s %d statement(s), %d problem(s)\n",
			fileStyle.Render(path+":"), len(program.Statements), len(diags))
		return fmt.Errorf("%d problem(s) found", len(diags))
	}

	fmt.Printf("%s %s %d statement(s)\n", fileStyle.Render(path+":"), okStyle.Render("ok"), len(program.Statements))
	return nil
}

func renderPass(pass string) string {
	if pass == "syntax" {
		return errStyle.Render("syntax error:")
	}
	return warnStyle.Render("semantic error:")
}

// mergeDiagnostics combines both error lists and sorts by source position,
// keeping the original order for equal positions.
func mergeDiagnostics(parseErrs []frontend.ParseError, validationErrs []frontend.ValidationError) []diagnostic {
	diags := make([]diagnostic, 0, len(parseErrs)+len(validationErrs))
	for _, e := range parseErrs {
		diags = append(diags, diagnostic{loc: e.Loc, message: e.Message, pass: "syntax"})
	}
	for _, e := range validationErrs {
		diags = append(diags, diagnostic{loc: e.Loc, message: e.Message, pass: "semantic"})
	}
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].loc.Line != diags[j].loc.Line {
			return diags[i].loc.Line < diags[j].loc.Line
		}
		return diags[i].loc.Col < diags[j].loc.Col
	})
	return diags
}
