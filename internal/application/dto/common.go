package dto

import "github.com/jhoicas/pos-admin-api/internal/domain/entity"

// Caller identidad y rol del solicitante, extraídos del claim del token.
// Se pasa explícitamente a los casos de uso: ninguna operación lee estado
// de sesión implícito, lo que permite probarlos sin stack de auth.
type Caller struct {
	ID   int64
	Role entity.Role
}

// IsAdmin indica si el solicitante tiene rol admin.
func (c Caller) IsAdmin() bool {
	return c.Role == entity.RoleAdmin
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
