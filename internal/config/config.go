package config

import (
	"fmt"
	"strings"

	"github.com/inhies/go-bytesize"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/wordtrie/internal/logging"
	"github.com/kumarlokesh/wordtrie/internal/wordlist"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. WORDTRIE_LOG_LEVEL for log.level.
const EnvPrefix = "WORDTRIE"

// Config holds all configuration for the application
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	WordList WordListConfig `mapstructure:"wordlist"`
	Output   OutputConfig   `mapstructure:"output"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WordListConfig holds configuration for loading word lists
type WordListConfig struct {
	Paths       []string `mapstructure:"paths"`
	MaxFileSize string   `mapstructure:"max_file_size"`
}

// OutputConfig holds configuration for exported word lists
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)

	v.SetDefault("wordlist.paths", []string{})
	v.SetDefault("wordlist.max_file_size", "10MB")

	v.SetDefault("output.format", string(wordlist.FormatText))
}

// MaxFileSizeBytes returns the parsed word list size limit
func (c *WordListConfig) MaxFileSizeBytes() (bytesize.ByteSize, error) {
	size, err := bytesize.Parse(c.MaxFileSize)
	if err != nil {
		return 0, fmt.Errorf("invalid max file size %q: %w", c.MaxFileSize, err)
	}
	return size, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	size, err := c.WordList.MaxFileSizeBytes()
	if err != nil {
		return err
	}
	if size <= 0 {
		return fmt.Errorf("max file size must be positive, got %s", size)
	}

	if _, err := wordlist.ParseFormat(c.Output.Format); err != nil {
		return err
	}

	return nil
}
