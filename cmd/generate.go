package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"swatch/internal/palette"
	"swatch/internal/tui/components"
	"swatch/pkg/logging"
)

// generateJSON switches the output to a machine-readable JSON document.
var generateJSON bool

// generateCopy writes the space-separated hex codes to the clipboard after
// printing. Clipboard trouble never fails the command.
var generateCopy bool

// generateNoColor disables colored terminal output regardless of config.
var generateNoColor bool

// clipboardWriteAll is swappable so tests can run without a system
// clipboard.
var clipboardWriteAll = clipboard.WriteAll

// generateCmd defines the generate command structure.
var generateCmd = &cobra.Command{
	Use:     "generate <keyword>...",
	Aliases: []string{"gen"},
	Short:   "Resolve a keyword into its five-color palette",
	Long: `Resolves a keyword into a palette of five colors plus a short description.

Curated keywords (see 'swatch list') return their hand-picked palette; any
other keyword gets a palette derived deterministically from the word itself,
so the same keyword always produces the same colors. Multiple arguments are
joined with single spaces, making quotes around multi-word keywords optional.

Examples:
  swatch generate ocean
  swatch generate deep space        # same keyword as "deep space"
  swatch generate --json twilight   # machine-readable output
  swatch generate --copy sunset     # hex codes land on the clipboard`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

// runGenerate is the main entry point for the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	keyword := keywordFromArgs(args)
	if strings.TrimSpace(keyword) == "" {
		return fmt.Errorf("keyword must not be empty")
	}

	cfg, resolver, err := loadRuntime()
	if err != nil {
		return err
	}
	if err := initCLILogging(cfg); err != nil {
		return err
	}
	if err := applyColorMode(cfg, generateNoColor); err != nil {
		return err
	}

	p, origin := resolver.ResolveOrigin(keyword)
	logging.Debug("generate", "resolved %q via %s", keyword, origin)

	out := cmd.OutOrStdout()
	if generateJSON {
		if err := writePaletteJSON(out, keyword, p, origin); err != nil {
			return err
		}
	} else {
		writePalette(out, p, origin)
	}

	if generateCopy {
		copyToClipboard(cmd.ErrOrStderr(), strings.Join(p.Colors[:], " "))
	}
	return nil
}

// keywordFromArgs joins the positional arguments into one keyword with
// single spaces, so 'swatch generate deep space' and
// 'swatch generate "deep space"' resolve identically.
func keywordFromArgs(args []string) string {
	return strings.Join(args, " ")
}

// paletteJSON is the machine-readable shape emitted by --json.
type paletteJSON struct {
	Keyword     string   `json:"keyword"`
	Colors      []string `json:"colors"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
}

func writePaletteJSON(out io.Writer, keyword string, p palette.Palette, origin palette.Origin) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(paletteJSON{
		Keyword:     keyword,
		Colors:      p.Colors[:],
		Description: p.Description,
		Source:      origin.String(),
	})
}

// writePalette renders the palette for humans: a strip of color blocks
// sitting over their hex codes, then the description. Block width matches
// the seven-character hex codes so the columns line up.
func writePalette(out io.Writer, p palette.Palette, origin palette.Origin) {
	strip := components.NewStrip(p.Colors[:]).WithBlockWidth(7).WithGap(2)
	fmt.Fprintln(out, strip.Render())
	fmt.Fprintln(out, strings.Join(p.Colors[:], "  "))
	fmt.Fprintf(out, "%s · %s\n", p.Description, origin)
}

// copyToClipboard copies text and reports the outcome on errOut. Failures
// are soft: the palette was already printed, the copy is a convenience.
func copyToClipboard(errOut io.Writer, text string) {
	if err := clipboardWriteAll(text); err != nil {
		logging.Error("generate", err, "clipboard copy failed")
		fmt.Fprintln(errOut, "Warning: could not write to the clipboard")
		return
	}
	fmt.Fprintf(errOut, "Copied %d colors to the clipboard\n", palette.Size)
}

// init registers the generate command and its flags with the root command.
func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Emit the palette as JSON")
	generateCmd.Flags().BoolVar(&generateCopy, "copy", false, "Copy the hex codes to the clipboard")
	generateCmd.Flags().BoolVar(&generateNoColor, "no-color", false, "Disable colored output")
}
