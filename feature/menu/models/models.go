package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Menu is the top level of the catalog hierarchy.
type Menu struct {
	ID          string `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description string `gorm:"size:1024" json:"description"`

	Submenus []Submenu `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"-"`
}

// Submenu belongs to exactly one menu and is removed by cascade when the
// menu is deleted.
type Submenu struct {
	ID          string `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description string `gorm:"size:1024" json:"description"`
	MenuID      string `gorm:"type:char(36);index;not null" json:"menu_id"`

	Dishes []Dish `gorm:"foreignKey:SubmenuID;constraint:OnDelete:CASCADE" json:"-"`
}

// Dish belongs to exactly one submenu. Price is the pre-discount price;
// discounted prices live only in the cache overlay.
type Dish struct {
	ID          string          `gorm:"type:char(36);primaryKey" json:"id"`
	Title       string          `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description string          `gorm:"size:1024" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	SubmenuID   string          `gorm:"type:char(36);index;not null" json:"submenu_id"`
}

// BeforeCreate assigns an identifier when the client did not supply one.
func (m *Menu) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (s *Submenu) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (d *Dish) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Menu{}, &Submenu{}, &Dish{})
}
