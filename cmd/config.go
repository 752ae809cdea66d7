package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/analytics"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. WAREHOUSE_HTTP_PORT.
const EnvPrefix = "WAREHOUSE"

type Config struct {
	HTTPPort   string `mapstructure:"http_port"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     string `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBSslMode  string `mapstructure:"db_sslmode"`

	LogLevel string `mapstructure:"log_level"`

	RouteWalkingSpeed float64 `mapstructure:"route_walking_speed"` // metres per second
	RoutePickSeconds  float64 `mapstructure:"route_pick_seconds"`
	RouteMaxBins      int     `mapstructure:"route_max_bins"`

	AnalyticsSchedule    string `mapstructure:"analytics_schedule"`
	AnalyticsHeatmapDays int    `mapstructure:"analytics_heatmap_days"`

	MetricsEnabled bool `mapstructure:"metrics_enabled"`
	DocsEnabled    bool `mapstructure:"docs_enabled"`
}

var defaults = map[string]any{
	"http_port":              "8080",
	"db_host":                "localhost",
	"db_port":                "5432",
	"db_user":                "postgres",
	"db_password":            "",
	"db_name":                "warehouse",
	"db_sslmode":             "disable",
	"log_level":              "info",
	"route_walking_speed":    services.DefaultWalkingSpeed,
	"route_pick_seconds":     services.DefaultPickTime.Seconds(),
	"route_max_bins":         commands.DefaultRouteMaxBins,
	"analytics_schedule":     jobs.DefaultDailyAnalyticsSchedule,
	"analytics_heatmap_days": queries.DefaultHeatmapDays,
	"metrics_enabled":        true,
	"docs_enabled":           true,
}

// LoadConfig reads .env (when present) into the environment, then an optional
// YAML file at path, then WAREHOUSE_* environment overrides.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	var errList []error
	if strings.TrimSpace(c.HTTPPort) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("http_port"))
	}
	if strings.TrimSpace(c.DBHost) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("db_host"))
	}
	if strings.TrimSpace(c.DBName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("db_name"))
	}
	if c.RouteWalkingSpeed <= 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("route_walking_speed", c.RouteWalkingSpeed, "> 0", "-"))
	}
	if c.RoutePickSeconds < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("route_pick_seconds", c.RoutePickSeconds, 0, "-"))
	}
	if c.AnalyticsHeatmapDays < 1 || c.AnalyticsHeatmapDays > analytics.MaxHeatmapDays {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"analytics_heatmap_days", c.AnalyticsHeatmapDays, 1, analytics.MaxHeatmapDays))
	}
	if _, err := c.Level(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// DSN is the libpq keyword/value connection string shared by gorm and goose.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("log_level", err)
	}
	return level, nil
}

// NewLogger builds the JSON logger every component derives its own from.
func NewLogger(c Config) *slog.Logger {
	level, err := c.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
