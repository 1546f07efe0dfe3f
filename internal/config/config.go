package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Azure   AzureConfig   `yaml:"azure" mapstructure:"azure"`
	Pricing PricingConfig `yaml:"pricing" mapstructure:"pricing"`
	Prompt  PromptConfig  `yaml:"prompt" mapstructure:"prompt"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// AzureConfig holds Azure OpenAI connection settings.
type AzureConfig struct {
	Endpoint   string `yaml:"endpoint" mapstructure:"endpoint"`
	APIKey     string `yaml:"api_key" mapstructure:"api_key"`
	APIVersion string `yaml:"api_version" mapstructure:"api_version"`
	Deployment string `yaml:"deployment" mapstructure:"deployment"`
	Model      string `yaml:"model" mapstructure:"model"`
}

// PricingConfig holds per-1K-token pricing (USD).
type PricingConfig struct {
	InputPer1K  float64 `yaml:"input_per_1k" mapstructure:"input_per_1k"`
	OutputPer1K float64 `yaml:"output_per_1k" mapstructure:"output_per_1k"`
}

// PromptConfig configures prompt construction and report rendering.
type PromptConfig struct {
	Question     string `yaml:"question" mapstructure:"question"`
	PreviewChars int    `yaml:"preview_chars" mapstructure:"preview_chars"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// ConfigError reports a missing or invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Field + ": " + e.Reason
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TOONBENCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Conventional Azure OpenAI variable names take effect without the prefix.
	_ = v.BindEnv("azure.endpoint", "TOONBENCH_AZURE_ENDPOINT", "AZURE_OPENAI_ENDPOINT")
	_ = v.BindEnv("azure.api_key", "TOONBENCH_AZURE_API_KEY", "AZURE_OPENAI_API_KEY")
	_ = v.BindEnv("azure.api_version", "TOONBENCH_AZURE_API_VERSION", "AZURE_OPENAI_API_VERSION")
	_ = v.BindEnv("azure.deployment", "TOONBENCH_AZURE_DEPLOYMENT", "AZURE_OPENAI_DEPLOYMENT")
	_ = v.BindEnv("azure.model", "TOONBENCH_AZURE_MODEL", "AZURE_OPENAI_MODEL")

	// Defaults
	v.SetDefault("azure.api_version", "2024-06-01")
	v.SetDefault("azure.model", "gpt-4o")
	v.SetDefault("pricing.input_per_1k", 0.00275)
	v.SetDefault("pricing.output_per_1k", 0.011)
	v.SetDefault("prompt.preview_chars", 400)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// Validate checks that the settings required before any network call are
// present. It runs eagerly at startup so a bad environment never reaches
// the completion client.
func (c *Config) Validate() error {
	if c.Azure.Endpoint == "" {
		return &ConfigError{Field: "azure.endpoint", Reason: "required (set AZURE_OPENAI_ENDPOINT)"}
	}
	if c.Azure.APIKey == "" {
		return &ConfigError{Field: "azure.api_key", Reason: "required (set AZURE_OPENAI_API_KEY)"}
	}
	if c.Azure.Deployment == "" {
		return &ConfigError{Field: "azure.deployment", Reason: "required (set AZURE_OPENAI_DEPLOYMENT)"}
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
