package dto

import "restogestion/internal/model"

type UsuarioListItem struct {
	ID     uint   `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

type UsuarioResponse struct {
	ID            uint   `json:"id"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Rol           string `json:"rol"`
	RestauranteID *uint  `json:"restaurante_id"`
}

func NewUsuarioListItem(u model.Usuario) UsuarioListItem {
	return UsuarioListItem{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol}
}

func NewUsuarioResponse(u model.Usuario) UsuarioResponse {
	return UsuarioResponse{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol, RestauranteID: u.RestauranteID}
}

func NewPerfilUsuario(u model.Usuario) PerfilUsuario {
	return PerfilUsuario{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: u.Rol, RestauranteID: u.RestauranteID}
}
