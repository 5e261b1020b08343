package model

import "github.com/shopspring/decimal"

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
type RestaurantModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(50);not null"`
	Address      string `gorm:"type:varchar(100);not null;default:''"`
	ContactPhone string `gorm:"type:varchar(50);not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Name          string          `gorm:"type:varchar(50);not null"`
	Category      string          `gorm:"type:varchar(50);not null;default:''"`
	Price         decimal.Decimal `gorm:"type:decimal(8,2);not null"`
	SpecialStatus bool            `gorm:"not null;default:false;index"`
	Description   string          `gorm:"type:text;not null;default:''"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// RestaurantMenuItemModel is the GORM-specific struct for the 'restaurant_menu_items' table.
type RestaurantMenuItemModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	RestaurantID int64 `gorm:"not null;uniqueIndex:idx_restaurant_menu_items_pair"`
	ProductID    int64 `gorm:"not null;uniqueIndex:idx_restaurant_menu_items_pair"`
	Availability bool  `gorm:"not null;default:true;index"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantMenuItemModel) TableName() string {
	return "restaurant_menu_items"
}
