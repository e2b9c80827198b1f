package config

import (
	"github.com/urfave/cli/v3"
)

// Flag names shared by the CLI definition and FlagsFromCommand.
const (
	FlagConfig          = "config"
	FlagBaseURL         = "base-url"
	FlagRequestTimeout  = "request-timeout"
	FlagStorage         = "storage"
	FlagStorageFile     = "storage-file"
	FlagStorageDSN      = "storage-dsn"
	FlagKeyringService  = "keyring-service"
	FlagKeyringUser     = "keyring-user"
	FlagRedisAddress    = "redis-address"
	FlagRedisPassword   = "redis-password"
	FlagRedisDB         = "redis-db"
	FlagLogLevel        = "log-level"
	FlagLogFile         = "log-file"
	FlagDisabledFeature = "disable-feature"
)

// Flags returns the global CLI flags understood by FlagsFromCommand.
// None of them carry a default value so that unset flags never mask
// environment or JSON settings during the merge.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: FlagConfig, Aliases: []string{"c"}, Usage: "JSON config file path"},
		&cli.StringFlag{Name: FlagBaseURL, Aliases: []string{"a"}, Usage: "API base URL (default " + DefaultBaseURL + ")"},
		&cli.DurationFlag{Name: FlagRequestTimeout, Usage: "request timeout (e.g. 30s, 1m)"},
		&cli.StringFlag{Name: FlagStorage, Usage: "token storage backend (nop|memory|file|keyring|sqlite|redis)"},
		&cli.StringFlag{Name: FlagStorageFile, Usage: "token file path for the file backend"},
		&cli.StringFlag{Name: FlagStorageDSN, Usage: "SQLite DSN for the sqlite backend"},
		&cli.StringFlag{Name: FlagKeyringService, Usage: "keyring service name"},
		&cli.StringFlag{Name: FlagKeyringUser, Usage: "keyring user name"},
		&cli.StringFlag{Name: FlagRedisAddress, Usage: "redis address host:port"},
		&cli.StringFlag{Name: FlagRedisPassword, Usage: "redis password"},
		&cli.IntFlag{Name: FlagRedisDB, Usage: "redis database index"},
		&cli.StringFlag{Name: FlagLogLevel, Usage: "log level (debug|info|warn|error)"},
		&cli.StringFlag{Name: FlagLogFile, Usage: "log file path"},
		&cli.StringSliceFlag{Name: FlagDisabledFeature, Usage: "disable a feature (transcription|search|uploads)"},
	}
}

// FlagsFromCommand converts the parsed global flags of cmd into a
// [StructuredConfig] layer for the config builder.
func FlagsFromCommand(cmd *cli.Command) *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:         cmd.String(FlagLogLevel),
			LogFile:          cmd.String(FlagLogFile),
			DisabledFeatures: nonEmpty(cmd.StringSlice(FlagDisabledFeature)),
		},
		Adapter: Adapter{
			BaseURL:        cmd.String(FlagBaseURL),
			RequestTimeout: cmd.Duration(FlagRequestTimeout),
		},
		Storage: Storage{
			Backend: cmd.String(FlagStorage),
			File:    File{Path: cmd.String(FlagStorageFile)},
			DB:      DB{DSN: cmd.String(FlagStorageDSN)},
			Keyring: Keyring{
				Service: cmd.String(FlagKeyringService),
				User:    cmd.String(FlagKeyringUser),
			},
			Redis: Redis{
				Address:  cmd.String(FlagRedisAddress),
				Password: cmd.String(FlagRedisPassword),
				DB:       int(cmd.Int(FlagRedisDB)),
			},
		},
		JSONFilePath: cmd.String(FlagConfig),
	}
}

// nonEmpty keeps an unset slice flag nil so it merges like any other zero
// value.
func nonEmpty(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values
}
