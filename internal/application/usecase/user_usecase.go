package usecase

import (
	"context"

	"github.com/jhoicas/bitacora-api/internal/application/dto"
	"github.com/jhoicas/bitacora-api/internal/domain"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita acoplar la aplicación a pgx.
type TxRunner interface {
	Run(ctx context.Context, fn func(users repository.UserRepository, logs repository.WorkLogRepository) error) error
}

// UserUseCase administración de cuentas (operaciones solo ADMIN).
type UserUseCase struct {
	repo repository.UserRepository
	tx   TxRunner
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia y el runner transaccional.
func NewUserUseCase(repo repository.UserRepository, tx TxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, tx: tx}
}

// List devuelve todas las cuentas (sin password hash), más recientes primero.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Role:      u.Role,
			CreatedAt: u.CreatedAt,
		})
	}
	return out, nil
}

// Delete elimina una cuenta y sus bitácoras en una sola transacción.
// Regla de dominio: una cuenta ADMIN nunca se elimina, sin importar quién lo pida.
// Si el id no existe es un no-op exitoso (delete idempotente).
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if user.Role == entity.RoleAdmin {
		return domain.ErrAdminNotDeletable
	}
	return uc.tx.Run(ctx, func(users repository.UserRepository, logs repository.WorkLogRepository) error {
		if err := logs.DeleteByUser(id); err != nil {
			return err
		}
		return users.Delete(id)
	})
}
