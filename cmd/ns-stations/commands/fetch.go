package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nlrail/ns-stations/internal/stations"
)

// fetchRun performs the single fetch-and-flatten pass of the root command.
//
// Anticipated fetch failures (error statuses, transport errors, malformed
// bodies) are absorbed here: the category is logged, a failure line is printed
// and the command still succeeds. Only configuration mistakes fail the command.
func (a *App) fetchRun(cmd *cobra.Command) error {
	if a.config.APIKey == "" {
		a.cmd.SilenceUsage = false
		return errors.New("an API key is required: set --api-key, the NS_STATIONS_API_KEY environment variable, or the configuration file")
	}

	format, err := stations.ParseFormat(a.config.Output)
	if err != nil {
		a.cmd.SilenceUsage = false
		return err
	}

	c, err := stations.New(a.config.APIKey,
		stations.WithBaseURL(a.config.BaseURL),
		stations.WithTimeout(a.config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create stations client: %v", err)
	}

	resp, err := c.Fetch(cmd.Context(), stations.Filters{
		Query:               a.config.Query,
		IncludeNonPlannable: a.config.IncludeNonPlannable,
		CountryCodes:        a.config.CountryCodes,
		Limit:               a.config.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, stations.ErrStatus):
			slog.Error("HTTP error occurred", "error", err)
		case errors.Is(err, stations.ErrDecode):
			slog.Error("Malformed response occurred", "error", err)
		default:
			slog.Error("Request error occurred", "error", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Failed to retrieve stations.")
		return nil
	}

	rows := stations.Flatten(resp)
	slog.Info("Flattened stations", "rows", len(rows))

	return stations.Render(cmd.OutOrStdout(), rows, format)
}
