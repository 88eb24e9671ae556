package dto

import (
	"restogestion/internal/model"

	"github.com/shopspring/decimal"
)

type CrearFacturaRequest struct {
	ProveedorID   uint            `json:"proveedor_id"   validate:"required"`
	RestauranteID uint            `json:"restaurante_id" validate:"required"`
	Fecha         model.Fecha     `json:"fecha"          validate:"required"`
	Monto         decimal.Decimal `json:"monto"          validate:"required"`
	Descripcion   *string         `json:"descripcion"`
}

func (r CrearFacturaRequest) Modelo() model.FacturaAlbaran {
	return model.FacturaAlbaran{
		ProveedorID:   r.ProveedorID,
		RestauranteID: r.RestauranteID,
		Fecha:         r.Fecha,
		Monto:         r.Monto,
		Descripcion:   r.Descripcion,
	}
}

type FacturaResponse struct {
	ID            uint            `json:"id"`
	ProveedorID   uint            `json:"proveedor_id"`
	RestauranteID uint            `json:"restaurante_id"`
	Fecha         model.Fecha     `json:"fecha"`
	Monto         decimal.Decimal `json:"monto"`
	Descripcion   *string         `json:"descripcion"`
}

func NewFacturaResponse(f model.FacturaAlbaran) FacturaResponse {
	return FacturaResponse{
		ID: f.ID, ProveedorID: f.ProveedorID, RestauranteID: f.RestauranteID,
		Fecha: f.Fecha, Monto: f.Monto, Descripcion: f.Descripcion,
	}
}
