package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "ADMIN"
	RoleWorker = "WORKER"
)

// ValidRole indica si s es uno de los roles del sistema.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleWorker
}

// User representa una cuenta del sistema. Las cuentas ADMIN nunca se eliminan.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, WORKER
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
