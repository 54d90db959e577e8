// Package authz classifies (actor, operation, resource owner) into
// allow/deny. It never mutates state and never talks to the database;
// ownership is resolved by the caller and passed in.
package authz

import (
	"github.com/UES-FIA-2024/placement-service/internal/models"
)

// Actor is the authenticated caller of the current request, established
// once by the auth middleware and passed explicitly into every service
// call. A zero Actor means an unauthenticated caller.
type Actor struct {
	UserID uint
	Role   models.Role
}

// DenialMessage is what every denied caller sees, with HTTP 200, so
// unauthorized actors cannot distinguish a forbidden route from a
// nonexistent one. The API originally answered "No tienes permisos para
// realizar esta acción"; that text was retired on purpose when the
// obfuscation policy was adopted and must not come back.
const DenialMessage = "Ruta no encontrada en este servidor"

type Operation string

const (
	OpCoordinatorList   Operation = "coordinator.list"
	OpCoordinatorGet    Operation = "coordinator.get"
	OpCoordinatorCreate Operation = "coordinator.create"
	OpCoordinatorUpdate Operation = "coordinator.update"
	OpCoordinatorDelete Operation = "coordinator.delete"

	OpCompanyList   Operation = "company.list"
	OpCompanyGet    Operation = "company.get"
	OpCompanyCreate Operation = "company.create"
	OpCompanyUpdate Operation = "company.update"
	OpCompanyDelete Operation = "company.delete"

	OpStudentList   Operation = "student.list"
	OpStudentGet    Operation = "student.get"
	OpStudentCreate Operation = "student.create"
	OpStudentUpdate Operation = "student.update"
	OpStudentDelete Operation = "student.delete"

	OpProjectList   Operation = "project.list"
	OpProjectGet    Operation = "project.get"
	OpProjectCreate Operation = "project.create"
	OpProjectUpdate Operation = "project.update"
	OpProjectDelete Operation = "project.delete"

	OpUserList Operation = "user.list"
)

// policy is one row of the authorization table. An operation is allowed
// when the actor's role is listed, or owner is set and the actor's user id
// matches the target's owning user id. open skips every check (company
// self-registration).
type policy struct {
	roles []models.Role
	owner bool
	open  bool
}

var policies = map[Operation]policy{
	OpCoordinatorList:   {roles: []models.Role{models.RoleAdmin}},
	OpCoordinatorGet:    {roles: []models.Role{models.RoleAdmin}},
	OpCoordinatorCreate: {roles: []models.Role{models.RoleAdmin}},
	OpCoordinatorUpdate: {roles: []models.Role{models.RoleAdmin}, owner: true},
	OpCoordinatorDelete: {roles: []models.Role{models.RoleAdmin}, owner: true},

	OpCompanyList:   {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator}},
	OpCompanyGet:    {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator}, owner: true},
	OpCompanyCreate: {open: true},
	OpCompanyUpdate: {owner: true},
	OpCompanyDelete: {roles: []models.Role{models.RoleAdmin}, owner: true},

	OpStudentList:   {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator}},
	OpStudentGet:    {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator}, owner: true},
	OpStudentCreate: {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator}},
	OpStudentUpdate: {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator}, owner: true},
	OpStudentDelete: {roles: []models.Role{models.RoleAdmin}, owner: true},

	OpProjectList:   {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator, models.RoleStudent, models.RoleCompany}},
	OpProjectGet:    {roles: []models.Role{models.RoleAdmin, models.RoleCoordinator, models.RoleStudent, models.RoleCompany}},
	OpProjectCreate: {roles: []models.Role{models.RoleCompany}},
	OpProjectUpdate: {roles: []models.Role{models.RoleAdmin}, owner: true},
	OpProjectDelete: {roles: []models.Role{models.RoleAdmin}, owner: true},

	OpUserList: {roles: []models.Role{models.RoleAdmin}},
}

// Allow reports whether the actor may perform op against a resource owned
// by ownerID. ownerID is the owning user id (zero when the operation has
// no single target, e.g. list/create).
func Allow(actor Actor, op Operation, ownerID uint) bool {
	p, ok := policies[op]
	if !ok {
		return false
	}
	if p.open {
		return true
	}
	for _, r := range p.roles {
		if actor.Role == r {
			return true
		}
	}
	if p.owner && actor.UserID != 0 && actor.UserID == ownerID {
		return true
	}
	return false
}
