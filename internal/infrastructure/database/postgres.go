package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cafepos/cafepos-api/internal/config"
	"github.com/cafepos/cafepos-api/internal/domain/entity"
	"github.com/cafepos/cafepos-api/internal/domain/enum"
	"github.com/cafepos/cafepos-api/pkg/utils"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Venue and staff
		&entity.Cafe{},
		&entity.User{},

		// Catalog
		&entity.Category{},
		&entity.Product{},

		// Floor plan and open carts
		&entity.CafeTable{},
		&entity.Cart{},
		&entity.CartItem{},

		// Settled orders
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderTender{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds a demo cafe with staff, menu and tables so the
// system runs end to end on a fresh database
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var count int64
	db.Model(&entity.Cafe{}).Count(&count)
	if count > 0 {
		log.Println("Seed skipped: data already present")
		return nil
	}

	cafe := entity.Cafe{
		Name:  "Demo Cafe",
		Slug:  "demo-cafe",
		Email: "info@demo.cafe",
		Settings: entity.CafeSettings{
			Currency:         "TRY",
			CurrencySymbol:   "₺",
			DecimalSeparator: ",",
			InvoicePrefix:    "DEMO",
		},
	}
	if err := db.Create(&cafe).Error; err != nil {
		return fmt.Errorf("failed to seed cafe: %w", err)
	}

	users := []struct {
		name, email, password, role string
	}{
		{"Patron", "patron@demo.cafe", "patron123", entity.RolePatron},
		{"Kasa", "kasa@demo.cafe", "kasa123", entity.RoleKasa},
		{"Ayşe", "ayse@demo.cafe", "garson123", entity.RoleGarson},
		{"Mehmet", "mehmet@demo.cafe", "garson123", entity.RoleGarson},
	}
	for _, u := range users {
		hashed, err := utils.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := entity.User{
			CafeID:   cafe.ID,
			Name:     u.name,
			Email:    u.email,
			Password: hashed,
			Role:     u.role,
			Active:   true,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Warning: failed to seed user %s: %v", u.email, err)
		}
	}

	categories := map[string]*entity.Category{}
	for _, name := range []string{"Sıcak İçecekler", "Soğuk İçecekler", "Atıştırmalık", "Tatlı"} {
		category := entity.Category{
			CafeID: cafe.ID,
			Name:   name,
			Slug:   utils.Slugify(name),
			Active: true,
		}
		if err := db.Create(&category).Error; err != nil {
			log.Printf("Warning: failed to seed category %s: %v", name, err)
			continue
		}
		categories[name] = &category
	}

	products := []struct {
		name, category string
		price          int64 // cents
	}{
		{"Çay", "Sıcak İçecekler", 1500},
		{"Türk Kahvesi", "Sıcak İçecekler", 4500},
		{"Latte", "Sıcak İçecekler", 6000},
		{"Ayran", "Soğuk İçecekler", 2500},
		{"Limonata", "Soğuk İçecekler", 4000},
		{"Tost", "Atıştırmalık", 7500},
		{"Simit", "Atıştırmalık", 1550},
		{"Cheesecake", "Tatlı", 9000},
		{"Sütlaç", "Tatlı", 5500},
	}
	for _, p := range products {
		product := entity.Product{
			CafeID:    cafe.ID,
			Name:      p.name,
			Slug:      utils.Slugify(p.name),
			Price:     p.price,
			Available: true,
		}
		if category, ok := categories[p.category]; ok {
			product.CategoryID = &category.ID
		}
		if err := db.Create(&product).Error; err != nil {
			log.Printf("Warning: failed to seed product %s: %v", p.name, err)
		}
	}

	tables := []struct {
		number, area string
		capacity     int
	}{
		{"1", entity.AreaSalon, 4},
		{"2", entity.AreaSalon, 4},
		{"3", entity.AreaSalon, 2},
		{"4", entity.AreaBahce, 6},
		{"5", entity.AreaBahce, 4},
		{"6", entity.AreaKat, 8},
	}
	for _, t := range tables {
		table := entity.CafeTable{
			CafeID:      cafe.ID,
			TableNumber: t.number,
			Capacity:    t.capacity,
			Status:      enum.TableAvailable,
			Area:        t.area,
		}
		if err := db.Create(&table).Error; err != nil {
			log.Printf("Warning: failed to seed table %s: %v", t.number, err)
		}
	}

	log.Println("Seed data created")
	return nil
}
