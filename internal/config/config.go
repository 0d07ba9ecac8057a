// Package config loads the service configuration from the environment,
// an optional .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration keys. With AutomaticEnv each key is also read from the
// upper-cased environment variable of the same name.
const (
	KeyPort          = "port"
	KeyProvider      = "llm_provider"
	KeyQuestionsFile = "questions_file"
	KeyVerbose       = "verbose"
	KeyLogJSON       = "log_json"
)

const (
	DefaultPort     = "5000"
	DefaultProvider = "openai"
)

// Config holds the startup parameters of the service.
type Config struct {
	Port          string
	Provider      string
	QuestionsFile string
	Verbose       bool
	LogJSON       bool
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyProvider, DefaultProvider)
	v.SetDefault(KeyQuestionsFile, "")
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogJSON, false)

	v.AutomaticEnv()
	return v
}

// Load reads the configuration out of v and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Port:          strings.TrimSpace(v.GetString(KeyPort)),
		Provider:      strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		QuestionsFile: strings.TrimSpace(v.GetString(KeyQuestionsFile)),
		Verbose:       v.GetBool(KeyVerbose),
		LogJSON:       v.GetBool(KeyLogJSON),
	}

	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid port %q", cfg.Port)
	}

	return cfg, nil
}

// LoadEnvFile loads variables from the given .env files (".env" when none
// are given). Variables already present in the environment win. A missing
// file is not an error.
func LoadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}
