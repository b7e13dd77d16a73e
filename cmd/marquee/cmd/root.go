package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhrone/tinyDisplay-sub002/pkg/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Compiler front end for the Marquee animation DSL",
	Long: `marquee lexes, parses and validates Marquee animation scripts:
tick-based motion sequences (movement, pauses, loops, conditionals,
synchronization barriers, timeline scheduling) for widgets on
resource-constrained embedded displays.

Commands:
  check    parse and validate a script, report diagnostics
  parse    dump the AST of a script
  tokens   dump the token stream of a script`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error:"), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if verbose {
		logger.InitDev()
		return
	}
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LevelWarn
	_ = logger.Init(cfg)
}

// readSource loads the script from the named file, or stdin when the
// argument is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
