package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/medconnect/landing/internal/adapters/env"
	"github.com/medconnect/landing/internal/core"
)

const (
	EnvPrefix   = "MEDCONNECT"
	DefaultName = "medconnect"
	DotEnvFile  = ".env"
)

const (
	KeyServerAddr     = "server.addr"
	KeyServerShutdown = "server.shutdown_timeout"
	KeyRenderMode     = "render.mode"
	KeyCacheTTL       = "cache.ttl"
	KeyExportDir      = "export.dir"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyAssetsDir      = "assets.dir"
	KeyDev            = "dev"
)

type Config struct {
	Dev             bool
	Addr            string
	ShutdownTimeout time.Duration
	Render          core.RenderMode
	CacheTTL        time.Duration
	ExportDir       string
	LogLevel        string
	LogFormat       string
	AssetsDir       string
}

func (c *Config) Mode() core.Mode {
	if c.Dev {
		return core.ModeDev
	}
	return core.ModeProd
}

// Load reads .env (when present), the optional config file and MEDCONNECT_*
// environment variables, in increasing priority. An empty path looks for
// medconnect.{yaml,json,toml} in the working directory.
func Load(path string) (*Config, *viper.Viper, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, nil, err
	}
	return cfg, v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDev, false)
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerShutdown, 10*time.Second)
	v.SetDefault(KeyRenderMode, core.RenderClient.String())
	v.SetDefault(KeyCacheTTL, 5*time.Minute)
	v.SetDefault(KeyExportDir, "dist")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "")
	v.SetDefault(KeyAssetsDir, "internal/assets/static")
}

// FromViper resolves a Config from already populated settings. It is split
// from Load so command flags bound to v take part in the lookup.
func FromViper(v *viper.Viper) (*Config, error) {
	render, err := core.ParseRenderMode(v.GetString(KeyRenderMode))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Dev:             v.GetBool(KeyDev) || env.DetectMode() == core.ModeDev,
		Addr:            v.GetString(KeyServerAddr),
		ShutdownTimeout: v.GetDuration(KeyServerShutdown),
		Render:          render,
		CacheTTL:        v.GetDuration(KeyCacheTTL),
		ExportDir:       v.GetString(KeyExportDir),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		AssetsDir:       v.GetString(KeyAssetsDir),
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if cfg.Dev {
			cfg.LogFormat = "console"
		}
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}

	return cfg, nil
}
