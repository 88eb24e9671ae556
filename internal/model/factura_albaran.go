package model

import "github.com/shopspring/decimal"

// FacturaAlbaran is a supplier invoice or delivery note.
type FacturaAlbaran struct {
	ID            uint            `gorm:"primaryKey" json:"-"`
	ProveedorID   uint            `gorm:"not null" json:"proveedor_id"`
	RestauranteID uint            `gorm:"not null" json:"restaurante_id"`
	Fecha         Fecha           `gorm:"type:date;not null" json:"fecha"`
	Monto         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monto"`
	Descripcion   *string         `json:"descripcion"`
}

func (FacturaAlbaran) TableName() string { return "facturas_albaranes" }
