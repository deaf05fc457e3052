package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	rates "github.com/malusev998/rates-exporter"
	"github.com/malusev998/rates-exporter/daterange"
	"github.com/malusev998/rates-exporter/services"
	"github.com/malusev998/rates-exporter/storage"
)

const defaultOutputFile = "exchange_rates_table.csv"

type exportFlags struct {
	start   string
	end     string
	targets string
	output  string
}

func parseTargets(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	targets := make([]string, 0, len(parts))

	for _, part := range parts {
		code := strings.ToUpper(strings.TrimSpace(part))

		if code == "" {
			return nil, fmt.Errorf("invalid target currency list %q", value)
		}

		targets = append(targets, code)
	}

	return targets, nil
}

func exportCobraCommand(config *Config, flags *exportFlags) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		dates, err := daterange.Parse(flags.start, flags.end)

		if err != nil {
			return err
		}

		targets, err := parseTargets(flags.targets)

		if err != nil {
			return err
		}

		fetcher := config.Fetcher

		if fetcher == nil {
			if fetcher, err = config.NewFetcher(config.Ctx); err != nil {
				return err
			}
		}

		st, err := storage.NewStorage(storage.CSV, storage.CSVConfig{Path: flags.output})

		if err != nil {
			return err
		}

		service := services.ExportService{
			Fetcher: fetcher,
			Storage: []rates.Storage{st},
		}

		runID := uuid.New().String()

		if *config.debug {
			config.Logger.Debug("starting export",
				zap.String("run_id", runID),
				zap.String("start", flags.start),
				zap.String("end", flags.end),
				zap.Strings("targets", targets),
				zap.String("output", flags.output),
			)
		}

		written, err := service.Export(dates, targets)

		if err != nil {
			return err
		}

		for name, count := range written {
			config.Logger.Info("export finished",
				zap.String("run_id", runID),
				zap.String("storage", name),
				zap.Int("rows", count),
				zap.String("output", flags.output),
			)
		}

		return nil
	}
}

func export(config *Config) *cobra.Command {
	flags := &exportFlags{}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch historical rates for a date range and write them to a CSV file",
		RunE:  exportCobraCommand(config, flags),
	}

	exportCmd.Flags().StringVarP(&flags.start, "start", "s", "", "Start date (YYYY-MM-DD), inclusive")
	exportCmd.Flags().StringVarP(&flags.end, "end", "e", "", "End date (YYYY-MM-DD), inclusive")
	exportCmd.Flags().StringVarP(&flags.targets, "targets", "t", "", "Comma separated target currency codes")
	exportCmd.Flags().StringVarP(&flags.output, "output", "o", defaultOutputFile, "Output CSV file")

	_ = exportCmd.MarkFlagRequired("start")
	_ = exportCmd.MarkFlagRequired("end")
	_ = exportCmd.MarkFlagRequired("targets")

	return exportCmd
}
