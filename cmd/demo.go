package cmd

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/marcus/dialogwrap/internal/config"
	"github.com/marcus/dialogwrap/internal/dom"
	"github.com/marcus/dialogwrap/internal/journal"
	"github.com/marcus/dialogwrap/pkg/tui"
)

var (
	demoAutoOpen       bool
	demoNoCommands     bool
	demoNoLightDismiss bool
	demoJournalPath    string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive dialog wrapper demo",
	Long: `Run a terminal demo page with a wrapped settings dialog.

The capability flags simulate a degraded host so the wrapper's polyfill
branches can be exercised: without them the host handles declarative
commands and light dismissal natively and the polyfills stay inert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(getBaseDir())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		caps := dom.DefaultCapabilities()
		if cfg.DisableNativeCommands || demoNoCommands {
			caps.CommandEvents = false
		}
		if cfg.DisableNativeLightDismiss || demoNoLightDismiss {
			caps.LightDismiss = false
		}

		journalPath := demoJournalPath
		if journalPath == "" {
			journalPath = cfg.JournalPath
		}
		var j *journal.Journal
		if journalPath != "" {
			j, err = journal.Open(journalPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer j.Close()
		}

		// Diagnostics would tear up the alternate screen; drop them while
		// the TUI owns the terminal.
		log := slog.New(slog.NewTextHandler(io.Discard, nil))

		m := tui.New(tui.Options{
			Caps:     caps,
			AutoOpen: cfg.AutoOpen || demoAutoOpen,
			Journal:  j,
			Logger:   log,
		})

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("run demo: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().BoolVar(&demoAutoOpen, "autoopen", false, "open the dialog immediately at startup")
	demoCmd.Flags().BoolVar(&demoNoCommands, "no-native-commands", false, "simulate a host without declarative command events")
	demoCmd.Flags().BoolVar(&demoNoLightDismiss, "no-native-light-dismiss", false, "simulate a host without native closedby support")
	demoCmd.Flags().StringVar(&demoJournalPath, "journal", "", "record dialog events to the sqlite journal at this path")
}
