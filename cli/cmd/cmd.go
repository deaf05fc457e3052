package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	rates "github.com/malusev998/rates-exporter"
)

var (
	rootCmd = &cobra.Command{
		Use:           "rates-exporter",
		Short:         "Historical exchange rate CSV exporter",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	debug      bool
	configFile string
)

type (
	Config struct {
		Ctx     context.Context
		Logger  *zap.Logger
		Fetcher rates.Fetcher
		// NewFetcher builds the fetcher from configuration once the config
		// file and environment are loaded; Fetcher takes precedence when set.
		NewFetcher func(ctx context.Context) (rates.Fetcher, error)
		debug      *bool
	}
)

func Execute(config *Config) error {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")

	cobra.OnInitialize(func() {
		absolutePath, _ := filepath.Abs(configFile)

		viper.SetConfigFile(absolutePath)
		viper.SetEnvPrefix("RATES_EXPORTER")
		viper.AutomaticEnv()
		_ = viper.BindEnv("fetchers.abstractapi.apikey", "ABSTRACTAPI_API_KEY")

		// the config file is optional, the environment can carry everything
		_ = viper.ReadInConfig()
	})

	config.debug = &debug

	rootCmd.AddCommand(export(config))

	return rootCmd.Execute()
}
