package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/srd"
)

var (
	srdLevel int
	srdClass string
)

var srdCmd = &cobra.Command{
	Use:   "srd",
	Short: "Look up SRD reference data",
	Long:  `Fetch entries from the D&D 5e SRD API in the format of the bundled reference tables.`,
}

var srdSpellCmd = &cobra.Command{
	Use:   "spell <index>",
	Short: "Print an SRD spell as a spells.yaml entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runSRDSpell,
}

var srdSpellsCmd = &cobra.Command{
	Use:   "spells",
	Short: "List SRD spell indexes",
	Args:  cobra.NoArgs,
	RunE:  runSRDSpells,
}

var srdFlags = map[string]string{
	"srd.base_url": "base-url",
	"srd.timeout":  "srd-timeout",
}

func init() {
	srdCmd.PersistentFlags().String("base-url", srd.DefaultBaseURL, "SRD API base url")
	srdCmd.PersistentFlags().Duration("srd-timeout", srd.DefaultTimeout, "SRD API request timeout")

	srdSpellsCmd.Flags().IntVar(&srdLevel, "level", -1, "only spells of this level (0 for cantrips)")
	srdSpellsCmd.Flags().StringVar(&srdClass, "class", "", "only spells on this class list")

	srdCmd.AddCommand(srdSpellCmd)
	srdCmd.AddCommand(srdSpellsCmd)
}

func newSRDClient(cmd *cobra.Command) (srd.Client, error) {
	cfg, err := loadConfig(cmd, srdFlags)
	if err != nil {
		return nil, err
	}
	installLogger(cfg)
	return srd.New(&srd.Config{BaseURL: cfg.SRD.BaseURL, Timeout: cfg.SRD.Timeout})
}

func runSRDSpell(cmd *cobra.Command, args []string) error {
	client, err := newSRDClient(cmd)
	if err != nil {
		return err
	}

	spell, err := client.GetSpell(context.Background(), args[0])
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode([]any{spell}); err != nil {
		return fmt.Errorf("failed to write spell: %w", err)
	}
	return enc.Close()
}

func runSRDSpells(cmd *cobra.Command, _ []string) error {
	client, err := newSRDClient(cmd)
	if err != nil {
		return err
	}

	input := &srd.ListSpellsInput{ClassID: srdClass}
	if srdLevel >= 0 {
		input.Level = &srdLevel
	}

	indexes, err := client.ListSpellIndexes(context.Background(), input)
	if err != nil {
		return err
	}
	for _, index := range indexes {
		fmt.Fprintln(cmd.OutOrStdout(), index)
	}
	return nil
}
