// seed crea la cuenta de administrador inicial si no existe todavía.
//
// Uso: go run ./cmd/seed
// Credenciales por defecto: admin / admin123 (cambiar la contraseña tras el primer login).
// Lee la misma configuración de DB que el servidor (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bitacora-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	existing, err := repo.GetByUsername(adminUsername)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Consultar admin: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Println("La cuenta de administrador ya existe.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     adminUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cuenta de administrador creada: %s / %s\n", adminUsername, adminPassword)
}
