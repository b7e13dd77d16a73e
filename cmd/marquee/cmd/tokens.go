package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhrone/tinyDisplay-sub002/pkg/frontend"
	"github.com/dhrone/tinyDisplay-sub002/pkg/logger"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <script>",
	Short: "Dump the token stream of a Marquee script",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		return err
	}

	tokens := frontend.Scan(source)
	logger.LogLexing(args[0], len(tokens))

	for _, tok := range tokens {
		loc := locStyle.Render(fmt.Sprintf("%4d:%-3d", tok.Line, tok.Col))
		if tok.Type == frontend.ERROR {
			fmt.Printf("%s %s %s\n", loc, errStyle.Render("ERROR"), tok.Lexeme)
			continue
		}
		if tok.Literal != nil {
			fmt.Printf("%s %-18s %q (%v)\n", loc, tok.Type, tok.Lexeme, tok.Literal)
			continue
		}
		fmt.Printf("%s %-18s %q\n", loc, tok.Type, tok.Lexeme)
	}
	return nil
}
