package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	CatalogPath   string    `mapstructure:"catalog"`
	CatalogPlugin string    `mapstructure:"catalog_plugin"`
	FontPath      string    `mapstructure:"font"`
	OutputDir     string    `mapstructure:"output_dir"`
	DataDir       string    `mapstructure:"data_dir"`
	Institution   string    `mapstructure:"institution"`
	Department    string    `mapstructure:"department"`
	TermStart     string    `mapstructure:"term_start"`
	TermWeeks     int       `mapstructure:"term_weeks"`
	Timezone      string    `mapstructure:"timezone"`
	Log           LogConfig `mapstructure:"log"`

	DBPath string `mapstructure:"-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load resolves configuration from defaults, an optional YAML file and
// DERS_* environment variables, in increasing priority.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("catalog", filepath.Join("data", "courses.json"))
	v.SetDefault("catalog_plugin", "")
	v.SetDefault("font", filepath.Join("assets", "DejaVuSans.ttf"))
	v.SetDefault("output_dir", ".")
	v.SetDefault("data_dir", ".dersprog")
	v.SetDefault("institution", "KTO Karatay Üniversitesi")
	v.SetDefault("department", "Bilgisayar Programcılığı")
	v.SetDefault("term_start", "")
	v.SetDefault("term_weeks", 14)
	v.SetDefault("timezone", "Europe/Istanbul")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dersprog")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.DBPath = filepath.Join(cfg.DataDir, "dersprog.db")
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("catalog path is required")
	}
	if c.TermWeeks <= 0 {
		return fmt.Errorf("term_weeks must be positive")
	}
	if c.TermStart != "" {
		if _, err := time.Parse("2006-01-02", c.TermStart); err != nil {
			return fmt.Errorf("term_start must be YYYY-MM-DD: %w", err)
		}
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return nil
}
