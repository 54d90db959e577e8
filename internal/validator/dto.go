package validator

// Request DTOs. Create requests use value fields with required rules;
// update requests use pointers so absent fields stay untouched (partial
// update semantics).

// CoordinatorCreateRequest registers a coordinator together with its
// account. Admin only.
type CoordinatorCreateRequest struct {
	FirstNames           string `json:"nombres" validate:"required,max=100"`
	LastNames            string `json:"apellidos" validate:"required,max=100"`
	CareerID             uint   `json:"id_carrera" validate:"required"`
	Phone                string `json:"telefono" validate:"omitempty,max=20,sv_phone"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=255"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// CoordinatorUpdateRequest applies a partial update to a coordinator.
type CoordinatorUpdateRequest struct {
	FirstNames *string `json:"nombres" validate:"omitempty,max=100"`
	LastNames  *string `json:"apellidos" validate:"omitempty,max=100"`
	CareerID   *uint   `json:"id_carrera" validate:"omitempty"`
	Phone      *string `json:"telefono" validate:"omitempty,max=20,sv_phone"`
	Password   *string `json:"password" validate:"omitempty,min=8,max=255"`
}

// CompanyCreateRequest is the open self-registration payload.
type CompanyCreateRequest struct {
	SectorID             uint   `json:"id_sector" validate:"required"`
	Name                 string `json:"nombre" validate:"required,max=200"`
	Address              string `json:"direccion" validate:"omitempty"`
	Phone                string `json:"telefono" validate:"omitempty,max=20,sv_phone"`
	Website              string `json:"sitio_web" validate:"omitempty,max=255"`
	Description          string `json:"descripcion" validate:"omitempty"`
	LogoURL              string `json:"logo_url" validate:"required,data_url"`
	Verified             *bool  `json:"verificada"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=255"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=8,max=255,eqfield=Password"`
}

// CompanyUpdateRequest applies a partial update to a company. A present
// logo_url replaces the stored image.
type CompanyUpdateRequest struct {
	SectorID    *uint   `json:"id_sector" validate:"omitempty"`
	Name        *string `json:"nombre" validate:"omitempty,max=200"`
	Address     *string `json:"direccion" validate:"omitempty"`
	Phone       *string `json:"telefono" validate:"omitempty,max=20,sv_phone"`
	Website     *string `json:"sitio_web" validate:"omitempty,max=255"`
	Description *string `json:"descripcion" validate:"omitempty"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,data_url"`
	Verified    *bool   `json:"verificada"`
}

// StudentCreateRequest registers a student together with its account.
type StudentCreateRequest struct {
	Carnet               string `json:"carnet" validate:"required,max=10"`
	FirstNames           string `json:"nombres" validate:"required,max=100"`
	LastNames            string `json:"apellidos" validate:"required,max=100"`
	CareerID             uint   `json:"id_carrera" validate:"required"`
	Phone                string `json:"telefono" validate:"omitempty,max=20,sv_phone"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=8,max=255"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// StudentUpdateRequest applies a partial update to a student.
type StudentUpdateRequest struct {
	FirstNames *string `json:"nombres" validate:"omitempty,max=100"`
	LastNames  *string `json:"apellidos" validate:"omitempty,max=100"`
	CareerID   *uint   `json:"id_carrera" validate:"omitempty"`
	Phone      *string `json:"telefono" validate:"omitempty,max=20,sv_phone"`
	Password   *string `json:"password" validate:"omitempty,min=8,max=255"`
}

// ProjectCreateRequest publishes an internship opening for the calling
// company.
type ProjectCreateRequest struct {
	Title        string   `json:"titulo" validate:"required,max=200"`
	Description  string   `json:"descripcion" validate:"omitempty"`
	Modality     string   `json:"modalidad" validate:"omitempty,oneof=presencial remoto mixto"`
	Capacity     int      `json:"cupos" validate:"omitempty,gt=0"`
	Requirements []string `json:"requisitos" validate:"omitempty,dive,max=200"`
}

// ProjectUpdateRequest applies a partial update to a project.
type ProjectUpdateRequest struct {
	Title        *string  `json:"titulo" validate:"omitempty,max=200"`
	Description  *string  `json:"descripcion" validate:"omitempty"`
	Modality     *string  `json:"modalidad" validate:"omitempty,oneof=presencial remoto mixto"`
	Capacity     *int     `json:"cupos" validate:"omitempty,gt=0"`
	Requirements []string `json:"requisitos" validate:"omitempty,dive,max=200"`
	Status       *string  `json:"estado" validate:"omitempty,oneof=abierto asignado cerrado"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
