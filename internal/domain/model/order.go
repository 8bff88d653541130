package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// 注文。pending -> completed の一方向のみ。
type Order struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string      `gorm:"type:uuid;not null;index" json:"ownerId"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"totalAmount"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt   time.Time   `gorm:"not null;index" json:"createdAt"`
}
