package migration

import (
	"fmt"
	"log"

	"tabletalk-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Table{}); err != nil {
		log.Fatalf("Error migrating table database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Session{}); err != nil {
		log.Fatalf("Error migrating session database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.MenuItem{}); err != nil {
		log.Fatalf("Error migrating menu item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Fatalf("Error migrating order database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.OrderItem{}); err != nil {
		log.Fatalf("Error migrating order item database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}

// Seed populates tables and menu items on an empty database. Both are owned
// by an external admin process afterwards; this only bootstraps a fresh
// install so QR codes resolve.
func Seed(db *gorm.DB) error {
	var tableCount int64
	if err := db.Model(&entities.Table{}).Count(&tableCount).Error; err != nil {
		return err
	}
	if tableCount == 0 {
		tables := []entities.Table{
			{Name: "Table 1 - Window Side", QRCode: "TBL-001"},
			{Name: "Table 2 - Garden View", QRCode: "TBL-002"},
			{Name: "Table 3 - Private Booth", QRCode: "TBL-003"},
			{Name: "Table 4 - Bar Counter", QRCode: "TBL-004"},
			{Name: "Table 5 - Outdoor Terrace", QRCode: "TBL-005"},
			{Name: "Table 6 - Corner Spot", QRCode: "TBL-006"},
			{Name: "Table 7 - Center Hall", QRCode: "TBL-007"},
			{Name: "Table 8 - VIP Room", QRCode: "TBL-008"},
		}
		if err := db.Create(&tables).Error; err != nil {
			return err
		}
	}

	var menuCount int64
	if err := db.Model(&entities.MenuItem{}).Count(&menuCount).Error; err != nil {
		return err
	}
	if menuCount == 0 {
		menuItems := []entities.MenuItem{
			{Name: "Nasi Goreng Spesial", Price: 25000},
			{Name: "Sate Ayam", Price: 30000},
			{Name: "Mie Goreng", Price: 22000},
			{Name: "Gado-Gado", Price: 20000},
			{Name: "Ayam Bakar", Price: 35000},
			{Name: "Es Teh Manis", Price: 8000},
			{Name: "Es Jeruk", Price: 10000},
			{Name: "Jus Alpukat", Price: 15000},
		}
		if err := db.Create(&menuItems).Error; err != nil {
			return err
		}
	}

	fmt.Println("Database seeding complete")
	return nil
}
