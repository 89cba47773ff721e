// Imports glacier outlines from a GeoJSON FeatureCollection (RGI export)
// into the glacier table. Existing ids are skipped so re-runs are safe.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"glacierwatch/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type feature struct {
	ID         string          `json:"id"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties struct {
		GlacierID string   `json:"glacier_id"`
		Name      *string  `json:"name"`
		AreaM2    *float64 `json:"area_m2"`
	} `json:"properties"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run ./cmd/import_glaciers <glaciers.geojson>")
		os.Exit(2)
	}
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DATABASE_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read %s: %v", os.Args[1], err)
	}
	var fc featureCollection
	if err := json.Unmarshal(raw, &fc); err != nil {
		log.Fatalf("failed to parse feature collection: %v", err)
	}
	if fc.Type != "FeatureCollection" {
		log.Fatalf("expected a FeatureCollection, got %q", fc.Type)
	}

	imported, skipped := 0, 0
	for _, f := range fc.Features {
		id := f.Properties.GlacierID
		if id == "" {
			id = f.ID
		}
		if id == "" {
			log.Printf("warning: feature without id skipped")
			skipped++
			continue
		}
		var count int64
		db.Model(&models.Glacier{}).Where("glacier_id = ?", id).Count(&count)
		if count > 0 {
			skipped++
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			g := models.Glacier{
				GlacierID: id,
				Name:      f.Properties.Name,
				Geometry:  "MULTIPOLYGON EMPTY",
				AreaM2:    f.Properties.AreaM2,
				CreatedAt: time.Now(),
			}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
			return tx.Exec(
				"UPDATE glacier SET geometry = ST_Multi(ST_GeomFromGeoJSON(?)) WHERE glacier_id = ?",
				string(f.Geometry), id,
			).Error
		})
		if err != nil {
			log.Printf("warning: failed to import glacier %s: %v", id, err)
			skipped++
			continue
		}
		imported++
	}
	fmt.Printf("imported %d glaciers, skipped %d\n", imported, skipped)
}
