package model

import "github.com/shopspring/decimal"

// Venta is the takings of one shift at one restaurant.
type Venta struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	Fecha         Fecha           `gorm:"type:date;not null" json:"fecha"`
	Monto         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monto"`
	Turno         *string         `json:"turno"`
	RestauranteID uint            `gorm:"not null" json:"restaurante_id"`
}

func (Venta) TableName() string { return "ventas" }
