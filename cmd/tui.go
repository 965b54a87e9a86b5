package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"swatch/internal/color"
	"swatch/internal/tui"
	"swatch/pkg/logging"
)

// tuiDark and tuiLight pin the background assumption adaptive colors key
// off, since detection inside the alternate screen is unreliable. Leaving
// both unset keeps the environment detection; 'd' toggles in-app.
var (
	tuiDark  bool
	tuiLight bool
)

// tuiCmd defines the tui command structure.
var tuiCmd = &cobra.Command{
	Use:   "tui [keyword]",
	Short: "Explore palettes in an interactive terminal UI",
	Long: `Opens the interactive palette explorer.

Type a keyword and press enter to resolve it. Move between the five swatches
with the arrow keys or h/l, jump with 1-5, copy the focused hex code with y
or all five with c, and press ? for the full set of bindings. A keyword
given on the command line is resolved immediately on startup.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

// runTUI is the main entry point for the tui command.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, resolver, err := loadRuntime()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("config log.level: %w", err)
	}

	// The TUI owns the terminal while it runs, so log entries go to a
	// channel it drains into the activity log overlay instead of stderr.
	logChan := logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	switch {
	case tuiDark:
		color.Initialize(true)
	case tuiLight:
		color.Initialize(false)
	}

	var keyword string
	if len(args) == 1 {
		keyword = args[0]
	}

	p := tui.NewProgram(tui.Options{
		Resolver:         resolver,
		InitialKeyword:   keyword,
		ResolveDelay:     cfg.ResolveDelay(),
		StatusMessageTTL: cfg.StatusMessageTTL(),
		LogChan:          logChan,
	})
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running the palette explorer: %w", err)
	}
	return nil
}

// init registers the tui command and its flags with the root command.
func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVar(&tuiDark, "dark", false, "Assume a dark terminal background")
	tuiCmd.Flags().BoolVar(&tuiLight, "light", false, "Assume a light terminal background")
}
