package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus/dialogwrap/internal/config"
	"github.com/marcus/dialogwrap/internal/journal"
)

var (
	journalLimit int
	journalPath  string
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show recent dialog events from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := journalPath
		if path == "" {
			cfg, err := config.Load(getBaseDir())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			path = cfg.JournalPath
		}
		if path == "" {
			return fmt.Errorf("no journal configured: pass --path or set journal_path in config")
		}

		j, err := journal.Open(path)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		entries, err := j.Recent(journalLimit)
		if err != nil {
			return fmt.Errorf("read journal: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("no dialog events recorded")
			return nil
		}

		for _, e := range entries {
			modal := ""
			if e.Modal {
				modal = " modal"
			}
			fmt.Printf("%s  %-6s %s%s\n",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Event, e.DialogID, modal)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.Flags().IntVar(&journalLimit, "limit", 20, "maximum entries to show")
	journalCmd.Flags().StringVar(&journalPath, "path", "", "journal database path (defaults to configured journal_path)")
}
