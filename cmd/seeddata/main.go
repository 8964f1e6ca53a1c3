// cmd/seeddata/main.go — Escribe el snapshot por defecto (catálogo e
// inventario iniciales) en el archivo SQLite de snapshots.
// Uso: go run ./cmd/seeddata
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/storage"
)

func main() {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "delibross.db"
	}

	store, err := storage.NewSQLiteStore(path, 0)
	if err != nil {
		log.Fatalf("sqlite open error: %v", err)
	}

	snap := model.DefaultSnapshot()
	if err := store.Save(context.Background(), snap); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	fmt.Printf("✅ Snapshot inicial escrito en '%s': %d productos, %d insumos\n",
		path, len(snap.Products), len(snap.Inventory))
}
