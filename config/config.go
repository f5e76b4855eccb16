package config

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"sync/atomic"
)

var cfgSingleton atomic.Value

const (
	DevelopmentEnvironment string = "development"

	DefaultHTTPPort        uint32 = 5005
	DefaultDispatchTimeout uint64 = 10
)

type DatabaseConfiguration struct {
	Dsn string `json:"dsn"`
}

type ServerConfiguration struct {
	HTTP struct {
		Port uint32 `json:"port"`
	} `json:"http"`
}

type DispatcherConfiguration struct {
	// TimeoutSeconds bounds every outbound webhook POST. There is no
	// retry: a dispatch that exceeds it is reported as a failure.
	TimeoutSeconds uint64 `json:"timeout_seconds"`
}

type LoggerConfiguration struct {
	Level string `json:"level"`
}

type Configuration struct {
	Environment string                  `json:"environment"`
	Database    DatabaseConfiguration   `json:"database"`
	Server      ServerConfiguration     `json:"server"`
	Dispatcher  DispatcherConfiguration `json:"dispatcher"`
	Logger      LoggerConfiguration     `json:"logger"`
}

// LoadConfig reads the configuration file at p, applies environment
// overrides and stores the result for Get.
func LoadConfig(p string) error {
	c := new(Configuration)

	f, err := os.Open(p)
	if err == nil {
		defer f.Close()

		if err = json.NewDecoder(f).Decode(&c); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if dsn := os.Getenv("RELAY_DB_DSN"); dsn != "" {
		c.Database = DatabaseConfiguration{Dsn: dsn}
	}

	// This enables us deploy to Heroku where the $PORT is provided
	// dynamically.
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		c.Server.HTTP.Port = uint32(port)
	}

	if c.Server.HTTP.Port == 0 {
		c.Server.HTTP.Port = DefaultHTTPPort
	}

	if env := os.Getenv("RELAY_ENV"); env != "" {
		c.Environment = env
	}

	// if it's still empty, set it to development
	if c.Environment == "" {
		c.Environment = DevelopmentEnvironment
	}

	if timeout := os.Getenv("RELAY_DISPATCH_TIMEOUT"); timeout != "" {
		t, err := strconv.ParseUint(timeout, 10, 64)
		if err != nil {
			return err
		}
		c.Dispatcher.TimeoutSeconds = t
	}

	if c.Dispatcher.TimeoutSeconds == 0 {
		c.Dispatcher.TimeoutSeconds = DefaultDispatchTimeout
	}

	if level := os.Getenv("RELAY_LOG_LEVEL"); level != "" {
		c.Logger.Level = level
	}

	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}

	cfgSingleton.Store(c)
	return nil
}

// Get fetches the application configuration. LoadConfig must have been
// called previously for this to work.
func Get() (Configuration, error) {
	c, ok := cfgSingleton.Load().(*Configuration)
	if !ok {
		return Configuration{}, errors.New("call LoadConfig before this function")
	}

	return *c, nil
}

// Override replaces the stored configuration. Used in tests.
func Override(newCfg *Configuration) error {
	cfgSingleton.Store(newCfg)
	return nil
}
