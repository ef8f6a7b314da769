package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	IMAP struct {
		Host    string `mapstructure:"host" yaml:"host"`
		Port    int    `mapstructure:"port" yaml:"port"`
		Mailbox string `mapstructure:"mailbox" yaml:"mailbox"`
		Address string `mapstructure:"address" yaml:"address"`
		// AppPassword is env-only and must never be serialized.
		AppPassword string `mapstructure:"app_password" yaml:"-"`
	} `mapstructure:"imap" yaml:"imap"`

	Scan struct {
		Limit           int    `mapstructure:"limit" yaml:"limit"`
		SaveAttachments bool   `mapstructure:"save_attachments" yaml:"save_attachments"`
		AttachmentsDir  string `mapstructure:"attachments_dir" yaml:"attachments_dir"`
	} `mapstructure:"scan" yaml:"scan"`

	Report struct {
		Output    string `mapstructure:"output" yaml:"output"`
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"report" yaml:"report"`

	Vocab struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"vocab" yaml:"vocab"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then environment
// variables prefixed INVOICE_SCAN.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/invoice-scan")
	v.AddConfigPath(".invoice-scan")
	v.AddConfigPath(".")

	v.SetEnvPrefix("INVOICE_SCAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The app password is a secret: bound straight from the environment,
	// never read from a config file.
	if err := v.BindEnv("imap.app_password", "IMAP_APP_PASSWORD"); err != nil {
		fmt.Printf("Warning: failed to bind IMAP_APP_PASSWORD environment variable: %v\n", err)
	}
	if err := v.BindEnv("imap.address", "IMAP_ADDRESS"); err != nil {
		fmt.Printf("Warning: failed to bind IMAP_ADDRESS environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("imap.host", "imap.gmail.com")
	v.SetDefault("imap.port", 993)
	v.SetDefault("imap.mailbox", "INBOX")

	v.SetDefault("scan.limit", 50)
	v.SetDefault("scan.save_attachments", false)
	v.SetDefault("scan.attachments_dir", "attachments")

	v.SetDefault("report.output", "invoices.xlsx")
	v.SetDefault("report.delimiter", ",")

	v.SetDefault("vocab.file", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.IMAP.Host == "" {
		return fmt.Errorf("imap.host must not be empty")
	}

	if config.IMAP.Port < 1 || config.IMAP.Port > 65535 {
		return fmt.Errorf("imap.port must be between 1 and 65535, got: %d", config.IMAP.Port)
	}

	if config.Scan.Limit < 1 {
		return fmt.Errorf("scan.limit must be positive, got: %d", config.Scan.Limit)
	}

	if len(config.Report.Delimiter) != 1 {
		return fmt.Errorf("report delimiter must be a single character, got: %s", config.Report.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
