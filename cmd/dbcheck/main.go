// Command dbcheck connects to the configured relational database and prints
// row counts per table. Handy for checking connectivity and state after
// restoring a backup.
package main

import (
	"fmt"
	"log"

	"costuras/app/config"
	"costuras/app/storage"
	"costuras/app/storage/sqlstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	if cfg.Storage.Backend != storage.BackendSQL {
		log.Fatal("storage.backend must be \"sql\" to check a database")
	}

	store, err := sqlstore.Open(cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer store.Close()

	for _, table := range []string{"clients", "orders", "expenses"} {
		var n int64
		if err := store.DB().QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			log.Fatalf("Count %s failed: %v", table, err)
		}
		fmt.Printf("%-10s %d rows\n", table, n)
	}
}
