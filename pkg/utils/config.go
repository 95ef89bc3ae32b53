package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

const undefinedValue = "undefined"

const (
	runtimeEnvKey     = "env"
	runtimeRunDateKey = "rundate"
)

type Config struct {
	App     AppConfig
	Runtime RuntimeContext
	Storage StorageConfig
	Ingest  IngestConfig
}

type AppConfig struct {
	Name     string
	Port     string
	Debug    bool
	LogPath  string
	Location *time.Location
}

// RuntimeContext is echoed back in every booking confirmation.
type RuntimeContext struct {
	Env     string
	RunDate string
}

type StorageConfig struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	PathStyle bool
}

type IngestConfig struct {
	Prefix string
}

func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), ".env")
}

func loadConfig(v *viper.Viper, envFile string) (*Config, error) {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "travel-functions")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("S3_PATH_STYLE", false)
	v.SetDefault("INGEST_PREFIX", "raw_data/")
	v.SetDefault(runtimeEnvKey, undefinedValue)
	v.SetDefault(runtimeRunDateKey, undefinedValue)

	// .env is optional, functions only get real env vars
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", envFile, err)
	}

	v.AutomaticEnv()

	// Env and RunDate are mixed case in the process environment, while
	// viper stores keys read from .env lower-cased
	if err := v.BindEnv(runtimeEnvKey, "Env", "ENV"); err != nil {
		return nil, err
	}
	if err := v.BindEnv(runtimeRunDateKey, "RunDate", "RUNDATE"); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(v.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", v.GetString("TIMEZONE"), err)
	}

	config := &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Port:     v.GetString("PORT"),
			Debug:    v.GetBool("DEBUG"),
			LogPath:  v.GetString("LOG_PATH"),
			Location: loc,
		},
		Runtime: RuntimeContext{
			Env:     orUndefined(v.GetString(runtimeEnvKey)),
			RunDate: orUndefined(v.GetString(runtimeRunDateKey)),
		},
		Storage: StorageConfig{
			Region:    v.GetString("AWS_REGION"),
			Endpoint:  v.GetString("S3_ENDPOINT"),
			AccessKey: v.GetString("S3_ACCESS_KEY"),
			SecretKey: v.GetString("S3_SECRET_KEY"),
			PathStyle: v.GetBool("S3_PATH_STYLE"),
		},
		Ingest: IngestConfig{
			Prefix: v.GetString("INGEST_PREFIX"),
		},
	}

	return config, nil
}

func orUndefined(s string) string {
	if s == "" {
		return undefinedValue
	}
	return s
}
