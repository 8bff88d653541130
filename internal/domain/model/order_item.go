package model

// 注文明細。注文時点のname/priceを保存する。
type OrderItem struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"-"`
	OrderID string `gorm:"type:uuid;not null;index" json:"-"`
	//明細の順番
	Position   int     `gorm:"not null" json:"-"`
	MenuItemID string  `gorm:"type:uuid;not null;index" json:"menuItemId"`
	Name       string  `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64 `gorm:"not null" json:"price"`
	Quantity   int     `gorm:"not null" json:"quantity"`
}
