package dto

import "restogestion/internal/model"

type CrearProveedorRequest struct {
	Nombre        string  `json:"nombre"         validate:"required"`
	Categoria     *string `json:"categoria"`
	RestauranteID uint    `json:"restaurante_id" validate:"required"`
}

func (r CrearProveedorRequest) Modelo() model.Proveedor {
	return model.Proveedor{Nombre: r.Nombre, Categoria: r.Categoria, RestauranteID: r.RestauranteID}
}

type ProveedorResponse struct {
	ID            uint    `json:"id"`
	Nombre        string  `json:"nombre"`
	Categoria     *string `json:"categoria"`
	RestauranteID uint    `json:"restaurante_id"`
}

func NewProveedorResponse(p model.Proveedor) ProveedorResponse {
	return ProveedorResponse{ID: p.ID, Nombre: p.Nombre, Categoria: p.Categoria, RestauranteID: p.RestauranteID}
}
