package models

import (
	"time"

	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectOpen     ProjectStatus = "abierto"
	ProjectAssigned ProjectStatus = "asignado"
	ProjectClosed   ProjectStatus = "cerrado"
)

// Project is an internship opening published by a company (tabla proyectos).
type Project struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	CompanyID    uint           `json:"id_empresa" gorm:"column:id_empresa;not null"`
	Title        string         `json:"titulo" gorm:"column:titulo;not null;size:200"`
	Description  string         `json:"descripcion" gorm:"column:descripcion"`
	Modality     string         `json:"modalidad" gorm:"column:modalidad;size:50"`
	Capacity     int            `json:"cupos" gorm:"column:cupos;default:1"`
	Requirements datatypes.JSON `json:"requisitos" gorm:"column:requisitos"`
	Status       ProjectStatus  `json:"estado" gorm:"column:estado;default:abierto;size:20"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	Company *Company `json:"empresa,omitempty" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

func (Project) TableName() string {
	return "proyectos"
}
