// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// MaxDeleteGracePeriod bounds the cosmetic delay before a deleted card leaves the board.
const MaxDeleteGracePeriod = 2 * time.Second

// Config holds all configuration for the job board.
// The mapstructure tags are used by Viper to unmarshal the data.
type Config struct {
	HttpListenAddr    string        `mapstructure:"http_listen_addr" validate:"required"`
	LogLevel          string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	IDStrategy        string        `mapstructure:"id_strategy" validate:"oneof=counter timestamp"`
	SeedSampleJobs    bool          `mapstructure:"seed_sample_jobs"`
	SeedFile          string        `mapstructure:"seed_file"`
	DeleteGracePeriod time.Duration `mapstructure:"delete_grace_period" validate:"gte=0"`
	ToastTTL          time.Duration `mapstructure:"toast_ttl" validate:"gt=0"`
	ResetSchedule     string        `mapstructure:"reset_schedule" validate:"omitempty,cron"`
	TracingEnabled    bool          `mapstructure:"tracing_enabled"`
}

// Load loads configuration from file and environment variables.
func Load() (*Config, error) {
	return load(viper.New(), []string{"./configs", "."})
}

func load(v *viper.Viper, paths []string) (*Config, error) {
	v.SetDefault("http_listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("id_strategy", "counter")
	v.SetDefault("seed_sample_jobs", true)
	v.SetDefault("seed_file", "")
	v.SetDefault("delete_grace_period", "0s")
	v.SetDefault("toast_ttl", "2.8s")
	v.SetDefault("reset_schedule", "")
	v.SetDefault("tracing_enabled", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("JOBBOARD")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// No config file: defaults and env vars only.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DeleteGracePeriod > MaxDeleteGracePeriod {
		cfg.DeleteGracePeriod = MaxDeleteGracePeriod
	}
	return &cfg, nil
}

// Validate checks field values, including the reset schedule's cron syntax.
func (c *Config) Validate() error {
	validate := validator.New()
	_ = validate.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		_, err := ScheduleParser.Parse(fl.Field().String())
		return err == nil
	})

	if err := validate.Struct(c); err != nil {
		var details []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				details = append(details, "field '"+fe.Field()+"' failed on the '"+fe.Tag()+"' tag")
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(details, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ScheduleParser parses reset schedules, which include a seconds field.
var ScheduleParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
