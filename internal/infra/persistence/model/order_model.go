package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	FirstName    string     `gorm:"type:varchar(50);not null"`
	LastName     string     `gorm:"type:varchar(50);not null;default:''"`
	PhoneNumber  string     `gorm:"type:varchar(20);not null;index"`
	Address      string     `gorm:"type:varchar(100);not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'unprocessed';index"`
	Payment      string     `gorm:"type:varchar(10);not null;default:'cash'"`
	Comments     string     `gorm:"type:text;not null;default:''"`
	RestaurantID *int64     `gorm:"index"`
	RegisteredAt time.Time  `gorm:"not null;index"`
	ProcessedAt  *time.Time `gorm:"index"`
	DeliveredAt  *time.Time `gorm:"index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
type OrderItemModel struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Quantity  int64           `gorm:"not null"`
	ItemPrice decimal.Decimal `gorm:"type:decimal(8,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
