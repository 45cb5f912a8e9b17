package config

import (
	"errors"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// APIConfig holds request-shaping settings that can change without a restart.
type APIConfig struct {
	Pagination PaginationConfig `mapstructure:"pagination"`
	Bulk       BulkConfig       `mapstructure:"bulk"`
	RateLimit  RateLimitConfig  `mapstructure:"rateLimit"`
}

type PaginationConfig struct {
	DefaultLimit int `mapstructure:"defaultLimit"`
	MaxLimit     int `mapstructure:"maxLimit"`
}

type BulkConfig struct {
	MaxSize int `mapstructure:"maxSize"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"`
	Burst   int     `mapstructure:"burst"`
}

func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Pagination: PaginationConfig{DefaultLimit: 500, MaxLimit: 1000},
		Bulk:       BulkConfig{MaxSize: 1000},
		RateLimit:  RateLimitConfig{Enabled: true, Rate: 20, Burst: 40},
	}
}

type APIConfigHolder struct {
	current atomic.Value // holds APIConfig
}

// NewAPIConfigHolder reads api.yml when present and keeps it reloaded on change.
func NewAPIConfigHolder(log *zap.Logger) (*APIConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("api")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/oilimports")
	v.AddConfigPath(".")

	v.SetEnvPrefix("OILIMPORTS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return newAPIConfigHolder(v, log, true)
}

// NewAPIConfigHolderFromFile loads settings from an explicit file path without watching it.
func NewAPIConfigHolderFromFile(path string) (*APIConfigHolder, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return newAPIConfigHolder(v, zap.NewNop(), false)
}

// NewStaticAPIConfigHolder wraps a fixed config.
func NewStaticAPIConfigHolder(cfg APIConfig) *APIConfigHolder {
	holder := &APIConfigHolder{}
	holder.current.Store(cfg)
	return holder
}

func newAPIConfigHolder(v *viper.Viper, log *zap.Logger, watch bool) (*APIConfigHolder, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("config.api")

	defaults := DefaultAPIConfig()
	v.SetDefault("api.pagination.defaultLimit", defaults.Pagination.DefaultLimit)
	v.SetDefault("api.pagination.maxLimit", defaults.Pagination.MaxLimit)
	v.SetDefault("api.bulk.maxSize", defaults.Bulk.MaxSize)
	v.SetDefault("api.rateLimit.enabled", defaults.RateLimit.Enabled)
	v.SetDefault("api.rateLimit.rate", defaults.RateLimit.Rate)
	v.SetDefault("api.rateLimit.burst", defaults.RateLimit.Burst)

	fileLoaded := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		fileLoaded = false
	}

	var cfg APIConfig
	if err := v.UnmarshalKey("api", &cfg); err != nil {
		return nil, err
	}
	if err := validateAPIConfig(cfg); err != nil {
		return nil, err
	}

	holder := &APIConfigHolder{}
	holder.current.Store(cfg)

	if watch && fileLoaded {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			var updated APIConfig
			if err := v.UnmarshalKey("api", &updated); err != nil {
				log.Warn("reload failed", zap.String("file", e.Name), zap.Error(err))
				return
			}
			if err := validateAPIConfig(updated); err != nil {
				log.Warn("invalid config ignored", zap.String("file", e.Name), zap.Error(err))
				return
			}
			holder.current.Store(updated)
			log.Info("reloaded", zap.String("file", e.Name))
		})
	}

	return holder, nil
}

func (h *APIConfigHolder) Get() APIConfig {
	return h.current.Load().(APIConfig)
}

func validateAPIConfig(cfg APIConfig) error {
	if cfg.Pagination.MaxLimit < 1 {
		return errors.New("api.pagination.maxLimit must be at least 1")
	}
	if cfg.Pagination.DefaultLimit < 1 || cfg.Pagination.DefaultLimit > cfg.Pagination.MaxLimit {
		return errors.New("api.pagination.defaultLimit must be within [1, maxLimit]")
	}
	if cfg.Bulk.MaxSize < 1 {
		return errors.New("api.bulk.maxSize must be at least 1")
	}
	if cfg.RateLimit.Enabled && (cfg.RateLimit.Rate <= 0 || cfg.RateLimit.Burst < 1) {
		return errors.New("api.rateLimit requires a positive rate and burst")
	}
	return nil
}
