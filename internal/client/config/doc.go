// Package config loads runtime configuration for the estatehub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with --config / -c.
//  3. Environment variables, after loading .env from the working directory.
//  4. Command-line flags set explicitly, which override everything else.
//
// # Environment
//
//	ESTATEHUB_API_URL          API base URL
//	ESTATEHUB_DB               path to the local SQLite database
//	ESTATEHUB_REQUEST_TIMEOUT  per-request timeout, e.g. "10s"
//	ESTATEHUB_LOG_LEVEL        debug, info, warn or error
//	ESTATEHUB_NO_COLOR         disable colored output
//
// # JSON schema
//
// Durations are strings like "10s" or integer nanoseconds. Absent fields
// keep their earlier value:
//
//	{
//	  "api_url": "http://localhost:5000/api",
//	  "db_path": "/home/me/.config/estatehub/estatehub.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "no_color": false
//	}
package config
