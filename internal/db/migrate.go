package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rakibul-dev/teastall/internal/models"
)

// Migrate creates or updates the storefront tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	if err := conn.AutoMigrate(
		&models.Admin{},
		&models.AdminSession{},
		&models.MenuItem{},
		&models.Order{},
		&models.Review{},
		&models.ContactMessage{},
	); err != nil {
		return fmt.Errorf("db: migrate: %w", err)
	}
	return nil
}

// defaultMenuItems is the menu seeded on an empty database.
var defaultMenuItems = []models.MenuItem{
	{Name: "Milk Tea", NameBangla: "দুধ চা", Price: 40, Category: "Signature", Description: "Our famous creamy milk tea with secret spices", Image: "/images/tea-1.png", Available: true},
	{Name: "Black Tea", NameBangla: "রং চা", Price: 20, Category: "Classic", Description: "Strong and aromatic black tea brewed to perfection", Image: "/images/tea-2.png", Available: true},
	{Name: "Lemon Tea", NameBangla: "লেবু চা", Price: 25, Category: "Refreshing", Description: "Zesty and refreshing lemon tea with a hint of ginger", Image: "/images/tea-3.png", Available: true},
	{Name: "Green Tea", NameBangla: "গ্রিন টি", Price: 35, Category: "Healthy", Description: "Pure organic green tea leaves for a healthy boost", Image: "/images/tea-4.png", Available: true},
	{Name: "Masala Chai", NameBangla: "মসলা চা", Price: 50, Category: "Signature", Description: "Rich milk tea infused with cardamom, cloves, and ginger", Image: "/images/tea-1.png", Available: true},
	{Name: "Ginger Tea", NameBangla: "আদা চা", Price: 25, Category: "Classic", Description: "Classic black tea with fresh crushed ginger", Image: "/images/tea-2.png", Available: true},
	{Name: "Iced Lemon Tea", NameBangla: "আইস লেবু চা", Price: 45, Category: "Refreshing", Description: "Chilled lemon tea served with fresh mint leaves", Image: "/images/tea-3.png", Available: true},
	{Name: "Honey Green Tea", NameBangla: "মধু গ্রিন টি", Price: 55, Category: "Healthy", Description: "Green tea sweetened with pure organic honey", Image: "/images/tea-4.png", Available: true},
}

// SeedMenu inserts the default menu when the menu_items table is empty.
func SeedMenu(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	var count int64
	if err := conn.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return fmt.Errorf("db: count menu items: %w", err)
	}
	if count > 0 {
		return nil
	}
	items := make([]models.MenuItem, len(defaultMenuItems))
	copy(items, defaultMenuItems)
	if err := conn.Create(&items).Error; err != nil {
		return fmt.Errorf("db: seed menu: %w", err)
	}
	return nil
}
