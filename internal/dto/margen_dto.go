package dto

import (
	"restogestion/internal/model"

	"github.com/shopspring/decimal"
)

// CrearMargenRequest uses pointers for the percentages: zero is a valid
// target, an absent value is not.
type CrearMargenRequest struct {
	RestauranteID uint             `json:"restaurante_id" validate:"required"`
	PorcentajeMin *decimal.Decimal `json:"porcentaje_min" validate:"required"`
	PorcentajeMax *decimal.Decimal `json:"porcentaje_max" validate:"required"`
}

func (r CrearMargenRequest) Modelo() model.MargenObjetivo {
	return model.MargenObjetivo{
		RestauranteID: r.RestauranteID,
		PorcentajeMin: *r.PorcentajeMin,
		PorcentajeMax: *r.PorcentajeMax,
	}
}

type MargenResponse struct {
	ID            uint            `json:"id"`
	RestauranteID uint            `json:"restaurante_id"`
	PorcentajeMin decimal.Decimal `json:"porcentaje_min"`
	PorcentajeMax decimal.Decimal `json:"porcentaje_max"`
}

func NewMargenResponse(m model.MargenObjetivo) MargenResponse {
	return MargenResponse{ID: m.ID, RestauranteID: m.RestauranteID, PorcentajeMin: m.PorcentajeMin, PorcentajeMax: m.PorcentajeMax}
}
