package entity

import "time"

// Role rol de un usuario dentro del POS. Se persiste como enum en PostgreSQL,
// por lo que nunca debe existir una cuenta con un rol fuera de este conjunto.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleCashier   Role = "cashier"
	RoleInventory Role = "inventory"
)

// DefaultRole rol asignado en el registro abierto cuando no se indica uno.
const DefaultRole = RoleCashier

// ValidRoles conjunto cerrado de roles aceptados.
var ValidRoles = []Role{RoleAdmin, RoleManager, RoleCashier, RoleInventory}

// Valid indica si el rol pertenece al conjunto cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCashier, RoleInventory:
		return true
	}
	return false
}

// User representa una cuenta del sistema POS.
// PasswordHash es un hash bcrypt; nunca se expone fuera de la capa de aplicación.
type User struct {
	ID           int64
	Email        string // almacenado en minúsculas; unicidad case-insensitive
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
