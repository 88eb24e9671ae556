package dto

import "restogestion/internal/model"

type CrearRestauranteRequest struct {
	Nombre        string  `json:"nombre" validate:"required"`
	Direccion     *string `json:"direccion"`
	EmailContacto *string `json:"email_contacto"`
	Moneda        *string `json:"moneda"`
}

func (r CrearRestauranteRequest) Modelo() model.Restaurante {
	return model.Restaurante{
		Nombre:        r.Nombre,
		Direccion:     r.Direccion,
		EmailContacto: r.EmailContacto,
		Moneda:        r.Moneda,
	}
}

// RestauranteListItem omits moneda, which only the detail view exposes.
type RestauranteListItem struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Direccion     *string `json:"direccion"`
	EmailContacto *string `json:"email_contacto"`
}

type RestauranteResponse struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Direccion     *string `json:"direccion"`
	EmailContacto *string `json:"email_contacto"`
	Moneda        *string `json:"moneda"`
}

func NewRestauranteListItem(r model.Restaurante) RestauranteListItem {
	return RestauranteListItem{ID: r.ID, Nombre: r.Nombre, Direccion: r.Direccion, EmailContacto: r.EmailContacto}
}

func NewRestauranteResponse(r model.Restaurante) RestauranteResponse {
	return RestauranteResponse{
		ID: r.ID, Nombre: r.Nombre, Direccion: r.Direccion,
		EmailContacto: r.EmailContacto, Moneda: r.Moneda,
	}
}
