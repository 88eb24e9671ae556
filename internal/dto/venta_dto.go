package dto

import (
	"restogestion/internal/model"

	"github.com/shopspring/decimal"
)

type CrearVentaRequest struct {
	Fecha         model.Fecha     `json:"fecha"          validate:"required"`
	Monto         decimal.Decimal `json:"monto"          validate:"required"`
	Turno         *string         `json:"turno"`
	RestauranteID uint            `json:"restaurante_id" validate:"required"`
}

func (r CrearVentaRequest) Modelo() model.Venta {
	return model.Venta{Fecha: r.Fecha, Monto: r.Monto, Turno: r.Turno, RestauranteID: r.RestauranteID}
}

type VentaResponse struct {
	ID            uint            `json:"id"`
	Fecha         model.Fecha     `json:"fecha"`
	Monto         decimal.Decimal `json:"monto"`
	Turno         *string         `json:"turno"`
	RestauranteID uint            `json:"restaurante_id"`
}

func NewVentaResponse(v model.Venta) VentaResponse {
	return VentaResponse{ID: v.ID, Fecha: v.Fecha, Monto: v.Monto, Turno: v.Turno, RestauranteID: v.RestauranteID}
}
