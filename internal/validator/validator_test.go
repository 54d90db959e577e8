package validator

import (
	"strings"
	"testing"
)

func TestValidateCoordinatorCreate(t *testing.T) {
	v := New()

	t.Run("valid payload has no errors", func(t *testing.T) {
		req := CoordinatorCreateRequest{
			FirstNames:           "Ana María",
			LastNames:            "Pérez",
			CareerID:             3,
			Phone:                "71234567",
			Email:                "ana.perez@ues.edu.sv",
			Password:             "secreto123",
			PasswordConfirmation: "secreto123",
		}
		if errs := v.Validate(req); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("missing required fields are all reported", func(t *testing.T) {
		errs := v.Validate(CoordinatorCreateRequest{})
		m := errs.FieldMap()

		for _, field := range []string{"nombres", "apellidos", "id_carrera", "email", "password", "password_confirmation"} {
			if len(m[field]) == 0 {
				t.Errorf("expected an error for field %q, map: %v", field, m)
			}
		}
		if len(m["telefono"]) != 0 {
			t.Errorf("optional telefono must not error when absent: %v", m["telefono"])
		}
	})

	t.Run("required message is the Spanish template", func(t *testing.T) {
		errs := v.Validate(CoordinatorCreateRequest{})
		m := errs.FieldMap()
		if got := m["nombres"][0]; got != "El campo nombres es obligatorio" {
			t.Errorf("nombres message = %q", got)
		}
		if got := m["email"][0]; got != "El campo correo electrónico es obligatorio" {
			t.Errorf("email message = %q", got)
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		req := CoordinatorCreateRequest{
			FirstNames:           "Ana",
			LastNames:            "Pérez",
			CareerID:             3,
			Email:                "ana@ues.edu.sv",
			Password:             "secreto123",
			PasswordConfirmation: "otracosa123",
		}
		m := v.Validate(req).FieldMap()
		if got := m["password_confirmation"]; len(got) == 0 || got[0] != "Las contraseñas no coinciden" {
			t.Errorf("password_confirmation errors = %v", got)
		}
	})

	t.Run("max length violation", func(t *testing.T) {
		req := CoordinatorCreateRequest{
			FirstNames:           strings.Repeat("a", 101),
			LastNames:            "Pérez",
			CareerID:             3,
			Email:                "ana@ues.edu.sv",
			Password:             "secreto123",
			PasswordConfirmation: "secreto123",
		}
		m := v.Validate(req).FieldMap()
		if got := m["nombres"]; len(got) == 0 || got[0] != "El campo nombres debe tener un máximo de 100 caracteres" {
			t.Errorf("nombres errors = %v", got)
		}
	})

	t.Run("validation does not mutate input", func(t *testing.T) {
		req := CoordinatorCreateRequest{FirstNames: "Ana"}
		copyBefore := req
		v.Validate(req)
		if req != copyBefore {
			t.Error("Validate mutated the request")
		}
	})
}

func TestSvPhoneRule(t *testing.T) {
	v := New()

	valid := []string{"71234567", "7123-4567", "+503 71234567", "+50371234567", "+503 7123-4567"}
	for _, phone := range valid {
		req := CoordinatorUpdateRequest{Phone: &phone}
		if errs := v.Validate(req); len(errs) != 0 {
			t.Errorf("phone %q rejected: %v", phone, errs)
		}
	}

	invalid := []string{"1234", "712345678a", "+44 71234567", "7123--4567"}
	for _, phone := range invalid {
		req := CoordinatorUpdateRequest{Phone: &phone}
		if errs := v.Validate(req); len(errs) == 0 {
			t.Errorf("phone %q accepted, want rejection", phone)
		}
	}
}

func TestDataURLRule(t *testing.T) {
	v := New()

	valid := []string{
		"data:image/png;base64,iVBORw0KGgo=",
		"data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=",
	}
	for _, in := range valid {
		req := CompanyUpdateRequest{LogoURL: &in}
		if errs := v.Validate(req); len(errs) != 0 {
			t.Errorf("logo %q rejected: %v", in, errs)
		}
	}

	invalid := []string{"http://example.com/logo.png", "image/png;base64,AAAA", "data:image/png,AAAA"}
	for _, in := range invalid {
		req := CompanyUpdateRequest{LogoURL: &in}
		if errs := v.Validate(req); len(errs) == 0 {
			t.Errorf("logo %q accepted, want rejection", in)
		}
	}
}

func TestFieldMapCollectsAcrossFields(t *testing.T) {
	v := New()
	req := CompanyCreateRequest{
		Name:  strings.Repeat("x", 201),
		Email: "no-es-correo",
	}
	m := v.Validate(req).FieldMap()

	// Errors from distinct fields must all be present; one failing field
	// must not short-circuit the rest.
	for _, field := range []string{"id_sector", "nombre", "logo_url", "email", "password"} {
		if len(m[field]) == 0 {
			t.Errorf("expected error for %q, map: %v", field, m)
		}
	}
}
