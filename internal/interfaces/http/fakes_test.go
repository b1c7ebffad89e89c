package http_test

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/bitacora-api/internal/domain"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/domain/repository"
)

// Repos en memoria para probar handlers sin PostgreSQL.
// Replican el contrato de los adaptadores reales: Get* devuelve (nil, nil) si no hay
// fila, Create mapea duplicado a ErrUsernameAlreadyExists y Upsert es sobrescritura
// por (user_id, date).

type memUserRepo struct {
	mu     sync.Mutex
	users  []*entity.User
	writes int // mutaciones aplicadas (para verificar que login nunca escribe)
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{} }

func (r *memUserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	cp := *user
	r.users = append(r.users, &cp)
	r.writes++
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			r.writes++
			return nil
		}
	}
	return nil
}

type memWorkLogRepo struct {
	mu   sync.Mutex
	logs []*entity.WorkLog
}

func newMemWorkLogRepo() *memWorkLogRepo { return &memWorkLogRepo{} }

func (r *memWorkLogRepo) Upsert(log *entity.WorkLog) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.UserID == log.UserID && l.Date == log.Date {
			l.Description = log.Description
			l.PlanForTomorrow = log.PlanForTomorrow
			l.UpdatedAt = log.UpdatedAt
			// la fila existente conserva id y created_at, igual que el RETURNING real
			log.ID = l.ID
			log.CreatedAt = l.CreatedAt
			return false, nil
		}
	}
	cp := *log
	r.logs = append(r.logs, &cp)
	return true, nil
}

func (r *memWorkLogRepo) List(filter repository.WorkLogFilter) ([]*entity.WorkLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.WorkLog
	for _, l := range r.logs {
		if filter.Date != "" && l.Date != filter.Date {
			continue
		}
		if filter.UserID != "" && l.UserID != filter.UserID {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memWorkLogRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.logs {
		if l.ID == id {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memWorkLogRepo) DeleteByUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

// memTxRunner ejecuta el callback directamente sobre los repos en memoria.
type memTxRunner struct {
	users *memUserRepo
	logs  *memWorkLogRepo
}

func (t *memTxRunner) Run(_ context.Context, fn func(users repository.UserRepository, logs repository.WorkLogRepository) error) error {
	return fn(t.users, t.logs)
}
