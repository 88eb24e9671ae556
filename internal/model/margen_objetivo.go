package model

import "github.com/shopspring/decimal"

// MargenObjetivo is the target margin band for a restaurant, in percent.
type MargenObjetivo struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	RestauranteID uint            `gorm:"not null" json:"restaurante_id"`
	PorcentajeMin decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"porcentaje_min"`
	PorcentajeMax decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"porcentaje_max"`
}

func (MargenObjetivo) TableName() string { return "margenes_objetivo" }
