// Package constants is responsible for defining the constants used in the application.
package constants

import (
	"log/slog"
	"time"
)

// Version is the version of the application.
var Version = "Dev"

const (
	// CmdName is the name of the command line tool.
	CmdName = "ns-stations"

	// DefaultBaseURL is the NS app stations endpoint queried by the fetch command.
	DefaultBaseURL = "https://gateway.apiportal.ns.nl/nsapp-stations/v3"

	// SubscriptionKeyHeader is the header carrying the API credential.
	SubscriptionKeyHeader = "Ocp-Apim-Subscription-Key"

	// DefaultTimeout is the request timeout applied when none is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultCountryCodes is the country filter applied when none is given.
	DefaultCountryCodes = "NL"

	// DefaultLogLevel is the default log level selected without any verbosity flags.
	DefaultLogLevel = slog.LevelWarn
)
