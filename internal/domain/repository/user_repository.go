package repository

import "github.com/jhoicas/pos-admin-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create persiste el usuario y asigna el ID generado por la base de datos.
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// GetByEmail busca por email sin distinguir mayúsculas/minúsculas.
	GetByEmail(email string) (*entity.User, error)
	// EmailExists indica si el email ya pertenece a otra cuenta.
	// excludeID > 0 excluye esa cuenta de la comparación (para updates).
	EmailExists(email string, excludeID int64) (bool, error)
	List() ([]*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
}
