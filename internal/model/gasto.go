package model

import "github.com/shopspring/decimal"

type Gasto struct {
	ID             uint            `gorm:"primaryKey" json:"-"`
	Fecha          Fecha           `gorm:"type:date;not null" json:"fecha"`
	Monto          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monto"`
	Categoria      *string         `json:"categoria"`
	ProveedorID    uint            `gorm:"not null" json:"proveedor_id"`
	UsuarioID      uint            `gorm:"not null" json:"usuario_id"`
	RestauranteID  uint            `gorm:"not null" json:"restaurante_id"`
	Nota           *string         `json:"nota"`
	ArchivoAdjunto *string         `json:"archivo_adjunto"`
}

func (Gasto) TableName() string { return "gastos" }
