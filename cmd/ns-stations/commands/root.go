// Package commands contains the commands of the ns-stations command line tool.
package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nlrail/ns-stations/internal/cli"
	"github.com/nlrail/ns-stations/internal/constants"
	"github.com/nlrail/ns-stations/internal/stations"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig
}

// appConfig holds the configuration for the application.
// All keys are flat so that NS_STATIONS_* environment variables map
// one to one onto the hyphenated flag names.
type appConfig struct {
	Verbosity int
	APIKey    string `mapstructure:"api-key"`
	BaseURL   string `mapstructure:"base-url"`
	Timeout   time.Duration
	Output    string

	Query               string
	CountryCodes        string `mapstructure:"country-codes"`
	Limit               int
	IncludeNonPlannable bool `mapstructure:"include-non-plannable"`
}

// New registers commands and returns a new App.
func New() (*App, error) {
	a := App{}

	a.cmd = &cobra.Command{
		Use:   constants.CmdName,
		Short: "Fetch NS railway station metadata as a flat table",
		Long: `Fetch railway station metadata from the NS (Nederlandse Spoorwegen) stations
API and print it as a flat, fixed-column table.

The nested station records of the API are flattened into one row per station
with absent fields left empty, suitable for further analysis. The API key is
read from the --api-key flag, the NS_STATIONS_API_KEY environment variable,
a .env file, or the configuration file.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			cli.SetVerbosity(a.config.Verbosity) // Set verbosity before loading config

			// A local .env file may carry the API key.
			if err := godotenv.Load(); err == nil {
				slog.Info("Loaded environment from .env file")
			}

			if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			))); err != nil {
				return fmt.Errorf("unable to decode configuration into struct: %w", err)
			}

			cli.SetVerbosity(a.config.Verbosity)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cmd.SilenceUsage = true

			return a.fetchRun(cmd)
		},
	}
	a.viper = viper.New()
	a.cmd.CompletionOptions.HiddenDefaultCmd = true

	installRootCmd(&a)
	cli.InstallConfigFlag(a.cmd)

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	a.installVersion()

	return &a, nil
}

func installRootCmd(app *App) {
	cmd := app.cmd

	cmd.PersistentFlags().CountVarP(&app.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	cmd.PersistentFlags().StringVar(&app.config.APIKey, "api-key", "", "NS API subscription key")
	cmd.PersistentFlags().StringVar(&app.config.BaseURL, "base-url", constants.DefaultBaseURL, "stations endpoint URL")
	cmd.PersistentFlags().DurationVar(&app.config.Timeout, "timeout", constants.DefaultTimeout, "request timeout")
	cmd.PersistentFlags().StringVarP(&app.config.Output, "output", "o", string(stations.FormatTable), "output format (table, csv, json, yaml)")

	// Filter flags
	cmd.Flags().StringVarP(&app.config.Query, "query", "q", "", "free text search for stations by name")
	cmd.Flags().StringVar(&app.config.CountryCodes, "country-codes", constants.DefaultCountryCodes, "comma-separated country codes to filter stations")
	cmd.Flags().IntVar(&app.config.Limit, "limit", 0, "maximum number of stations to return (0 uses the server default)")
	cmd.Flags().BoolVar(&app.config.IncludeNonPlannable, "include-non-plannable", false, "include stations journeys cannot be planned to")

	if err := cmd.PersistentFlags().MarkHidden("base-url"); err != nil {
		// This should never happen.
		panic(fmt.Sprintf("failed to hide base-url flag: %v", err))
	}
}

// Run executes the command and associated process, returning an error if any.
func (a *App) Run() error {
	return a.cmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// RootCmd returns the root command.
func (a App) RootCmd() cobra.Command {
	return *a.cmd
}
