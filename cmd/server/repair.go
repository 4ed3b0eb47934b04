package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/repair"
)

var fixIssues bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan stored characters for broken records",
	Long: `Scan every stored character and report spell slots expended past their total,
current hit points outside [0, max], spent hit dice past the pool, expertise
without proficiency and ids that no longer match a reference table.

With --fix the numeric problems are clamped and written back. Expertise and
unresolved ids are reported only.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

var repairFlags = map[string]string{
	"storage.backend":     "backend",
	"storage.redis_addr":  "redis-addr",
	"storage.sqlite_path": "sqlite-path",
}

func init() {
	repairCmd.Flags().BoolVar(&fixIssues, "fix", false, "clamp numeric problems and save")
	repairCmd.Flags().String("backend", "redis", "storage backend (redis or sqlite)")
	repairCmd.Flags().String("redis-addr", "localhost:6379", "redis address")
	repairCmd.Flags().String("sqlite-path", "sheet.db", "sqlite database file")
}

func runRepair(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, repairFlags)
	if err != nil {
		return err
	}
	installLogger(cfg)

	ctx := context.Background()
	store, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.close() }()

	_, eng, err := newEngine()
	if err != nil {
		return err
	}

	repairer, err := repair.New(&repair.Config{CharacterRepo: store.characters, Engine: eng})
	if err != nil {
		return err
	}

	out, err := repairer.Scan(ctx, &repair.ScanInput{Fix: fixIssues})
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), out)
}

func writeReport(w io.Writer, out *repair.ScanOutput) error {
	if len(out.Issues) == 0 {
		_, err := fmt.Fprintf(w, "scanned %d characters, no issues\n", out.Scanned)
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return enc.Close()
}
