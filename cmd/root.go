package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "swatch",
	Short: "Turn any keyword into a five-color palette",
	Long: `swatch maps keywords to five-color palettes. Well-known words like
"ocean" and "sunset" come from a curated catalog of hand-picked colors;
every other keyword gets a palette derived deterministically from the word
itself, so the same keyword always produces the same five colors.

Custom keywords can be added to the catalog via ~/.config/swatch/config.yaml
or a project-local .swatch/config.yaml.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, unreadable config)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "swatch version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
