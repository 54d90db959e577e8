package models

// Career is a seeded lookup row (tabla carreras) referenced by
// coordinators and students.
type Career struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;uniqueIndex;not null;size:150"`
}

func (Career) TableName() string {
	return "carreras"
}

// Sector is a seeded lookup row (tabla sectores_industria) referenced by
// companies.
type Sector struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"nombre" gorm:"column:nombre;uniqueIndex;not null;size:150"`
}

func (Sector) TableName() string {
	return "sectores_industria"
}
