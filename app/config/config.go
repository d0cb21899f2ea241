package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"costuras/app/storage"
	"costuras/app/storage/jsonstore"
	"costuras/app/storage/sqlstore"
)

// Config is the full application configuration.
type Config struct {
	Port    int
	Storage storage.Config
}

// Load reads costuras.yaml from the working directory (optional) and applies
// COSTURAS_* environment overrides, e.g. COSTURAS_STORAGE_BACKEND=sql.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("costuras")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.port", 4567)
	v.SetDefault("storage.backend", storage.BackendJSON)
	v.SetDefault("storage.data_dir", "./data")
	v.SetDefault("storage.driver", storage.DriverSQLite)
	v.SetDefault("storage.dsn", "./costura.db")

	v.SetEnvPrefix("COSTURAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		log.Println("No costuras.yaml found, using defaults and environment")
	} else {
		log.Printf("Loaded configuration from %s", v.ConfigFileUsed())
	}

	cfg := &Config{
		Port: v.GetInt("server.port"),
		Storage: storage.Config{
			Backend: v.GetString("storage.backend"),
			DataDir: v.GetString("storage.data_dir"),
			Driver:  v.GetString("storage.driver"),
			DSN:     v.GetString("storage.dsn"),
		},
	}
	if err := cfg.Storage.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenStore constructs the backend selected by the configuration.
func OpenStore(cfg storage.Config) (storage.Store, error) {
	switch cfg.Backend {
	case storage.BackendJSON:
		log.Printf("Using JSON file storage in %s", cfg.DataDir)
		return jsonstore.Open(cfg.DataDir)
	case storage.BackendSQL:
		log.Printf("Using %s storage at %s", cfg.Driver, cfg.DSN)
		return sqlstore.Open(cfg.Driver, cfg.DSN)
	default:
		return nil, storage.ErrBackendUnknown
	}
}
