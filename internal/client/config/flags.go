package config

import (
	"github.com/spf13/pflag"
)

// Flag names shared by every command.
const (
	FlagConfig  = "config"
	FlagAPI     = "api"
	FlagDB      = "db"
	FlagTimeout = "timeout"
	FlagVerbose = "verbose"
	FlagNoColor = "no-color"
)

// RegisterFlags adds the persistent configuration flags to fs. Their default
// values are zero so that only flags set explicitly override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "path to a JSON config file")
	fs.StringP(FlagAPI, "a", "", "API base URL (default "+DefaultAPIBaseURL+")")
	fs.String(FlagDB, "", "path to the local SQLite database")
	fs.Duration(FlagTimeout, 0, "per-request timeout, 0 for none")
	fs.BoolP(FlagVerbose, "v", false, "log debug output to stderr")
	fs.Bool(FlagNoColor, false, "disable colored output")
}

// applyFlags copies every flag the user set into cfg.
func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case FlagAPI:
			cfg.APIBaseURL, err = fs.GetString(FlagAPI)
		case FlagDB:
			cfg.DBPath, err = fs.GetString(FlagDB)
		case FlagTimeout:
			cfg.RequestTimeout, err = fs.GetDuration(FlagTimeout)
		case FlagVerbose:
			cfg.Verbose, err = fs.GetBool(FlagVerbose)
		case FlagNoColor:
			cfg.NoColor, err = fs.GetBool(FlagNoColor)
		}
	})
	return err
}
