package model

import "time"

// メニュー商品。nameはユニーク。
type MenuItem struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Category     string  `gorm:"type:varchar(255);not null;index" json:"category"`
	Price        float64 `gorm:"not null" json:"price"`
	Availability bool    `gorm:"not null" json:"availability"`

	//並び順（store order）に使う
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}
