package model

// Restaurante is the tenant every other row (except Usuario) belongs to.
type Restaurante struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	Nombre        string  `gorm:"not null" json:"nombre"`
	Direccion     *string `json:"direccion"`
	EmailContacto *string `json:"email_contacto"`
	Moneda        *string `json:"moneda"`
}

func (Restaurante) TableName() string { return "restaurantes" }
