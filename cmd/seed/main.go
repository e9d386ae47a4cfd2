// Seeds the local database with a handful of items whose expiry dates are
// staggered around today, so the notification feed and the dashboard have
// something to show during development.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/scanshelf/scanshelf-backend/internal/config"
	"github.com/scanshelf/scanshelf-backend/internal/db"
	"github.com/scanshelf/scanshelf-backend/internal/expiry"
	"github.com/scanshelf/scanshelf-backend/internal/model"
	"github.com/scanshelf/scanshelf-backend/internal/repository"
)

type sample struct {
	barcode  string
	name     string
	brand    string
	category string
	// daysUntilExpiry offsets the expiry date from today; nil means no
	// expiry tracked.
	daysUntilExpiry *int
}

func days(n int) *int { return &n }

var samples = []sample{
	{"7622210449283", "Milka Alpine Milk Chocolate", "Milka", "Snacks, Sweet snacks, Foods", days(1)},
	{"3017620422003", "Nutella", "Ferrero", "Spreads, Foods", days(5)},
	{"5449000000996", "Coca-Cola", "Coca-Cola", "Carbonated Beverages", days(12)},
	{"4006381333931", "Highlighter Set", "Stabilo", "General Item", nil},
	{"8712100849084", "Yogurt", "Campina", "Dairy, Foods", days(-2)},
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&model.Item{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	itemRepo := repository.NewItemRepository(gdb)

	if total, err := itemRepo.Count(ctx); err != nil {
		return fmt.Errorf("count items: %w", err)
	} else if total > 0 {
		log.Printf("database already has %d items; nothing to do", total)
		return nil
	}

	today := time.Now()
	inserted := 0
	for _, s := range samples {
		item := &model.Item{
			Barcode:  s.barcode,
			Name:     s.name,
			Brand:    s.brand,
			Category: s.category,
		}
		if s.daysUntilExpiry != nil {
			d := today.AddDate(0, 0, *s.daysUntilExpiry).Format(expiry.DateLayout)
			item.ExpiryDate = &d
		}
		if err := itemRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("insert %s: %w", s.name, err)
		}
		inserted++
	}

	log.Printf("seeded %d items into %s", inserted, cfg.DBPath)
	return nil
}
