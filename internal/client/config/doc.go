// Package config loads runtime configuration for the Everli CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     .yaml/.yml are read as YAML, everything else as JSON.
//  3. Environment: a dotenv file (-env path, or ./.env when present) and the
//     process environment, the latter winning.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string          account email
//	-l string          location id (skips location resolution)
//	-b string          API base URL
//	-t int             request timeout (seconds)
//	-log-level string  debug | info | warn | error
//
// Environment variables
//
//	EVERLI_EMAIL, EVERLI_PASSWORD, EVERLI_LOCATION, EVERLI_BASE_URL,
//	EVERLI_TIMEOUT (Go duration), EVERLI_LOG_LEVEL, EVERLI_LOG_FORMAT
//
// # File schema
//
// Durations may be strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://api.everli.com",
//	  "email": "me@example.com",
//	  "location": "11392",
//	  "request_timeout": "10s",
//	  "log_level": "info"
//	}
//
// The password is deliberately not read from flags; put it in the
// environment or let the CLI prompt for it.
package config
