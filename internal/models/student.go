package models

import "time"

// Student is the profile row for an enrolled student (tabla estudiantes).
type Student struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"id_usuario" gorm:"column:id_usuario;uniqueIndex;not null"`
	Carnet     string    `json:"carnet" gorm:"uniqueIndex;not null;size:10"`
	FirstNames string    `json:"nombres" gorm:"column:nombres;not null;size:100"`
	LastNames  string    `json:"apellidos" gorm:"column:apellidos;not null;size:100"`
	CareerID   uint      `json:"id_carrera" gorm:"column:id_carrera;not null"`
	Phone      string    `json:"telefono" gorm:"column:telefono;uniqueIndex;size:20"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	User   *User   `json:"usuario,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Career *Career `json:"carrera,omitempty" gorm:"foreignKey:CareerID"`
}

func (Student) TableName() string {
	return "estudiantes"
}
