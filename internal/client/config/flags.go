package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/everli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string          account email
//	-l string          location id
//	-b string          API base URL
//	-t int             request timeout in seconds
//	-log-level string  log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, so -c and -env do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-l", "-b", "-t", "-log-level"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Email, "u", cfg.Email, "account email")
	fs.StringVar(&cfg.Location, "l", cfg.Location, "location id (skips location resolution)")
	fs.StringVar(&cfg.BaseURL, "b", cfg.BaseURL, "Everli API base URL")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
