package models

import "time"

// Company is the profile row for a registered company (tabla empresas).
// LogoURL points at the content store; replacing it deletes the old object.
type Company struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"id_usuario" gorm:"column:id_usuario;uniqueIndex;not null"`
	SectorID    uint      `json:"id_sector" gorm:"column:id_sector;not null"`
	Name        string    `json:"nombre" gorm:"column:nombre;not null;size:200"`
	Address     string    `json:"direccion" gorm:"column:direccion"`
	Phone       string    `json:"telefono" gorm:"column:telefono;uniqueIndex;size:20"`
	Website     string    `json:"sitio_web" gorm:"column:sitio_web;size:255"`
	Description string    `json:"descripcion" gorm:"column:descripcion"`
	LogoURL     string    `json:"logo_url" gorm:"column:logo_url;size:500"`
	Verified    bool      `json:"verificada" gorm:"column:verificada;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	User   *User   `json:"usuario,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Sector *Sector `json:"sector,omitempty" gorm:"foreignKey:SectorID"`
}

func (Company) TableName() string {
	return "empresas"
}
