package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/everli/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

const (
	envEmail     = "EVERLI_EMAIL"
	envPassword  = "EVERLI_PASSWORD"
	envLocation  = "EVERLI_LOCATION"
	envBaseURL   = "EVERLI_BASE_URL"
	envTimeout   = "EVERLI_TIMEOUT"
	envLogLevel  = "EVERLI_LOG_LEVEL"
	envLogFormat = "EVERLI_LOG_FORMAT"
)

// parseEnv overlays cfg with EVERLI_* variables. Values from the dotenv file
// (-env, or ./.env when it exists) are used only when the process
// environment does not define the same key. Panics on unreadable files and
// invalid durations.
func parseEnv(cfg *Config) {
	fileValues := readEnvFile(flagx.EnvFileFlag())

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileValues[key]
	}

	setString(&cfg.Email, lookup(envEmail))
	setString(&cfg.Password, lookup(envPassword))
	setString(&cfg.Location, lookup(envLocation))
	setString(&cfg.BaseURL, lookup(envBaseURL))
	setString(&cfg.LogLevel, lookup(envLogLevel))
	setString(&cfg.LogFormat, lookup(envLogFormat))

	if v := lookup(envTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}

func readEnvFile(path string) map[string]string {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}
		}
		panic(err)
	}
	return values
}
