// Command migrate applies the relational schema to the configured database
// without starting the web server. Useful for preparing a Postgres database
// before first run; the sqlite backend also applies the schema on open.
package main

import (
	"log"

	"costuras/app/config"
	"costuras/app/storage"
	"costuras/app/storage/sqlstore"
)

func main() {
	log.Println("Applying database schema...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.Storage.Backend != storage.BackendSQL {
		log.Fatal("storage.backend must be \"sql\" to run migrations")
	}

	store, err := sqlstore.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer store.Close()

	log.Printf("Schema applied on %s database", cfg.Storage.Driver)
}
