package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegistroRequest struct {
	Nombre        string `json:"nombre"   validate:"required"`
	Email         string `json:"email"    validate:"required"`
	Password      string `json:"password" validate:"required"`
	Rol           string `json:"rol"      validate:"required"`
	RestauranteID *uint  `json:"restaurante_id"`
}

type CambiarPasswordRequest struct {
	Actual string `json:"actual" validate:"required"`
	Nueva  string `json:"nueva"  validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PerfilUsuario is the full user representation returned by login and
// /private. It never carries the password hash.
type PerfilUsuario struct {
	ID                uint    `json:"id"`
	Nombre            string  `json:"nombre"`
	Email             string  `json:"email"`
	Rol               string  `json:"rol"`
	RestauranteID     *uint   `json:"restaurante_id"`
	RestauranteNombre *string `json:"restaurante_nombre,omitempty"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        PerfilUsuario `json:"user"`
}

type PrivateResponse struct {
	User PerfilUsuario `json:"user"`
}
