package config

import (
	"go.uber.org/zap"

	"github.com/wekeepgrowing/item-service/pkg/config"
	"github.com/wekeepgrowing/item-service/pkg/logger"
)

// Config holds the item service settings.
type Config struct {
	Service Service
	Server  Server
	Storage Storage
	Log     Log
	Logger  *zap.Logger
}

// Service describes the service itself.
type Service struct {
	Name    string
	Version string
}

// Server holds the HTTP server settings.
type Server struct {
	Port    int
	Timeout int
	Debug   bool
}

// Storage points at the JSON document backing the item store.
type Storage struct {
	File string
}

// Log holds the logger settings.
type Log struct {
	Level  string
	Format string
	Output string
}

// Load reads the service configuration and builds the logger from it.
func Load() (*Config, error) {
	cfg, err := config.Load("item")
	if err != nil {
		return nil, err
	}

	appConfig := &Config{}

	appConfig.Service.Name = cfg.GetString("service.name")
	appConfig.Service.Version = cfg.GetString("service.version")

	appConfig.Server.Port = cfg.GetInt("server.port")
	appConfig.Server.Timeout = cfg.GetInt("server.timeout")
	appConfig.Server.Debug = cfg.GetBool("server.debug")
	if appConfig.Server.Port == 0 {
		appConfig.Server.Port = 8080
	}

	appConfig.Storage.File = cfg.GetString("storage.file")
	if appConfig.Storage.File == "" {
		appConfig.Storage.File = "items.json"
	}

	appConfig.Log.Level = cfg.GetString("log.level")
	appConfig.Log.Format = cfg.GetString("log.format")
	appConfig.Log.Output = cfg.GetString("log.output")

	loggerConfig := logger.Config{
		Level:       appConfig.Log.Level,
		Format:      appConfig.Log.Format,
		Output:      appConfig.Log.Output,
		Development: appConfig.Server.Debug,
	}

	appConfig.Logger, err = logger.NewZapLogger(loggerConfig)
	if err != nil {
		return nil, err
	}

	return appConfig, nil
}
