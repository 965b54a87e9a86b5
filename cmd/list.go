package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
)

// listNoColor disables colored terminal output regardless of config.
var listNoColor bool

// listCmd defines the list command structure.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the curated palette catalog",
	Long: `Lists every keyword the catalog answers directly, one line per keyword
with its five colors and description. Palettes added through the config file
appear alongside the built-in ones. Any keyword not in this list falls
through to deterministic generation.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// runList is the main entry point for the list command.
func runList(cmd *cobra.Command, args []string) error {
	cfg, resolver, err := loadRuntime()
	if err != nil {
		return err
	}
	if err := initCLILogging(cfg); err != nil {
		return err
	}
	if err := applyColorMode(cfg, listNoColor); err != nil {
		return err
	}

	writeCatalog(cmd.OutOrStdout(), resolver.Catalog())
	return nil
}

// writeCatalog renders one line per keyword, sorted: the keyword, a strip
// of five mini swatches, and the description. Padding is display-width
// aware so config-supplied keywords with wide runes keep columns straight.
func writeCatalog(out io.Writer, catalog *palette.Catalog) {
	keywords := catalog.Keywords()

	keywordWidth := 0
	for _, kw := range keywords {
		if w := runewidth.StringWidth(kw); w > keywordWidth {
			keywordWidth = w
		}
	}

	for _, kw := range keywords {
		p, _ := catalog.Lookup(kw)
		strip := components.NewStrip(p.Colors[:]).WithBlockWidth(2).WithGap(0)
		pad := strings.Repeat(" ", keywordWidth-runewidth.StringWidth(kw))
		fmt.Fprintf(out, "%s%s  %s  %s\n", kw, pad, strip.Render(), p.Description)
	}
}

// init registers the list command and its flags with the root command.
func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
}
