package models

import "time"

// Coordinator is the profile row for a placement coordinator
// (tabla coordinadores). Exactly one per user with the coordinator role.
type Coordinator struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"id_usuario" gorm:"column:id_usuario;uniqueIndex;not null"`
	FirstNames string    `json:"nombres" gorm:"column:nombres;not null;size:100"`
	LastNames  string    `json:"apellidos" gorm:"column:apellidos;not null;size:100"`
	CareerID   uint      `json:"id_carrera" gorm:"column:id_carrera;not null"`
	Phone      string    `json:"telefono" gorm:"column:telefono;uniqueIndex;size:20"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User   *User   `json:"usuario,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Career *Career `json:"carrera,omitempty" gorm:"foreignKey:CareerID"`
}

func (Coordinator) TableName() string {
	return "coordinadores"
}
