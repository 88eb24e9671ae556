package dto

import (
	"restogestion/internal/model"

	"github.com/shopspring/decimal"
)

type CrearGastoRequest struct {
	Fecha          model.Fecha     `json:"fecha"          validate:"required"`
	Monto          decimal.Decimal `json:"monto"          validate:"required"`
	Categoria      *string         `json:"categoria"`
	ProveedorID    uint            `json:"proveedor_id"   validate:"required"`
	UsuarioID      uint            `json:"usuario_id"     validate:"required"`
	RestauranteID  uint            `json:"restaurante_id" validate:"required"`
	Nota           *string         `json:"nota"`
	ArchivoAdjunto *string         `json:"archivo_adjunto"`
}

func (r CrearGastoRequest) Modelo() model.Gasto {
	return model.Gasto{
		Fecha:          r.Fecha,
		Monto:          r.Monto,
		Categoria:      r.Categoria,
		ProveedorID:    r.ProveedorID,
		UsuarioID:      r.UsuarioID,
		RestauranteID:  r.RestauranteID,
		Nota:           r.Nota,
		ArchivoAdjunto: r.ArchivoAdjunto,
	}
}

type GastoResponse struct {
	ID             uint            `json:"id"`
	Fecha          model.Fecha     `json:"fecha"`
	Monto          decimal.Decimal `json:"monto"`
	Categoria      *string         `json:"categoria"`
	ProveedorID    uint            `json:"proveedor_id"`
	UsuarioID      uint            `json:"usuario_id"`
	RestauranteID  uint            `json:"restaurante_id"`
	Nota           *string         `json:"nota"`
	ArchivoAdjunto *string         `json:"archivo_adjunto"`
}

func NewGastoResponse(g model.Gasto) GastoResponse {
	return GastoResponse{
		ID: g.ID, Fecha: g.Fecha, Monto: g.Monto, Categoria: g.Categoria,
		ProveedorID: g.ProveedorID, UsuarioID: g.UsuarioID, RestauranteID: g.RestauranteID,
		Nota: g.Nota, ArchivoAdjunto: g.ArchivoAdjunto,
	}
}
