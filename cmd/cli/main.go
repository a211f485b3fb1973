package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"arquitetura_xpto/internal/domain/engine"
	"arquitetura_xpto/internal/domain/entities"
	"arquitetura_xpto/internal/infrastructure/engineconfig"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:   "budgetctl",
		Short: "Offline tooling for the budget calculation engine",
	}
	root.AddCommand(newCalculateCmd())

	if err := root.Execute(); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}

func newCalculateCmd() *cobra.Command {
	var (
		briefingPath string
		paramsPath   string
		sequence     string
		pretty       bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run one calculation over a briefing file and print the budget as JSON",
		Long: `Reads a briefing from a JSON file, optionally applies a pricing
override file, runs the calculation pipeline and prints the resulting budget
to stdout. No database is touched; the command exists for tuning pricing
parameters against known briefings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(briefingPath)
			if err != nil {
				return fmt.Errorf("read briefing: %w", err)
			}

			var briefing entities.Briefing
			if err := json.Unmarshal(raw, &briefing); err != nil {
				return fmt.Errorf("parse briefing: %w", err)
			}

			cfg, err := engineconfig.Load(paramsPath)
			if err != nil {
				return fmt.Errorf("load pricing parameters: %w", err)
			}

			ref := engine.CodeRef{Sequence: sequence, IssuedAt: time.Now().UTC()}
			result, err := engine.Calculate(briefing, cfg, ref)
			if err != nil {
				return err
			}

			for _, w := range result.Warnings {
				logger.Warn().Str("field", w.Field).Msg(w.Message)
			}
			logger.Info().
				Str("code", result.Budget.Code).
				Float64("total_value", result.Budget.TotalValue).
				Float64("confidence", result.Attributes.Confidence).
				Msg("calculation finished")

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVar(&briefingPath, "briefing", "", "path to the briefing JSON file")
	cmd.Flags().StringVar(&paramsPath, "params", "", "optional pricing override file (yaml, json or toml)")
	cmd.Flags().StringVar(&sequence, "sequence", "001", "sequence fragment used in the budget code")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	_ = cmd.MarkFlagRequired("briefing")

	return cmd
}
