package models

import (
	"time"
)

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordinator"
	RoleStudent     Role = "student"
	RoleCompany     Role = "company"
)

// Numeric tags kept for wire/storage compatibility with the SPA
// (id_tipo_usuario: 1=admin, 2=coordinator, 3=student, 4=company).
const (
	roleIDAdmin       = 1
	roleIDCoordinator = 2
	roleIDStudent     = 3
	roleIDCompany     = 4
)

// ID returns the numeric tag stored in usuarios.id_tipo_usuario.
func (r Role) ID() int {
	switch r {
	case RoleAdmin:
		return roleIDAdmin
	case RoleCoordinator:
		return roleIDCoordinator
	case RoleStudent:
		return roleIDStudent
	case RoleCompany:
		return roleIDCompany
	default:
		return 0
	}
}

// RoleFromID maps a stored numeric tag back to the enum. Unknown tags
// come back as ("", false) so callers never dispatch on a bad row.
func RoleFromID(id int) (Role, bool) {
	switch id {
	case roleIDAdmin:
		return RoleAdmin, true
	case roleIDCoordinator:
		return RoleCoordinator, true
	case roleIDStudent:
		return RoleStudent, true
	case roleIDCompany:
		return RoleCompany, true
	default:
		return "", false
	}
}

func (r Role) Valid() bool {
	return r.ID() != 0
}

// User is the authentication identity (tabla usuarios). Entity rows
// (Coordinator, Company, Student) hang off it one-to-one and are removed
// by the FK cascade when the user row is deleted.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"column:password;not null;size:255"`
	RoleID       int       `json:"id_tipo_usuario" gorm:"column:id_tipo_usuario;not null"`
	Active       bool      `json:"estado_usuario" gorm:"column:estado_usuario;default:true"`
	RegisteredAt time.Time `json:"fecha_registro" gorm:"column:fecha_registro"`
}

func (User) TableName() string {
	return "usuarios"
}

// Role returns the typed role for dispatching; invalid rows read as "".
func (u *User) Role() Role {
	r, _ := RoleFromID(u.RoleID)
	return r
}
