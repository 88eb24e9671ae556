package model

// Proveedor represents a supplier scoped to one restaurant.
type Proveedor struct {
	ID            uint    `gorm:"primaryKey" json:"-"`
	Nombre        string  `gorm:"not null" json:"nombre"`
	Categoria     *string `json:"categoria"`
	RestauranteID uint    `gorm:"not null" json:"restaurante_id"`
}

func (Proveedor) TableName() string { return "proveedores" }
