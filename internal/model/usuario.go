package model

// Roles known to the system. The column is free text; only these are
// interpreted by the register flow.
const (
	RolAdmin     = "admin"
	RolChef      = "chef"
	RolEncargado = "encargado"
)

// Usuario stores system users. Chef and encargado accounts are expected to
// carry a RestauranteID; that is enforced at registration only.
type Usuario struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	Nombre        string `gorm:"not null" json:"nombre"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string `gorm:"column:password;not null" json:"-"`
	Rol           string `gorm:"type:varchar(30);not null" json:"rol"`
	RestauranteID *uint  `json:"restaurante_id"`
}

func (Usuario) TableName() string { return "usuarios" }

// RequiereRestaurante reports whether rol must be tied to a restaurant.
func RequiereRestaurante(rol string) bool {
	return rol == RolChef || rol == RolEncargado
}
