package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/domain/repository"
)

var _ repository.WorkLogRepository = (*WorkLogRepo)(nil)

// WorkLogRepo implementación del puerto WorkLogRepository sobre PostgreSQL (usable con pool o tx).
type WorkLogRepo struct {
	q Querier
}

// NewWorkLogRepository construye el adaptador de persistencia para bitácoras. Pasar pool o tx (Querier).
func NewWorkLogRepository(q Querier) *WorkLogRepo {
	return &WorkLogRepo{q: q}
}

// Upsert inserta o sobrescribe la bitácora de (user_id, date) en una sola sentencia.
// El constraint único uq_work_logs_user_date serializa envíos concurrentes del mismo día;
// created se lee de xmax = 0 (fila recién insertada) sobre la fila devuelta.
// La fila existente conserva su id y created_at, que se copian de vuelta a la entidad.
func (r *WorkLogRepo) Upsert(log *entity.WorkLog) (bool, error) {
	query := `
		INSERT INTO work_logs (id, user_id, date, description, plan_for_tomorrow, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT uq_work_logs_user_date DO UPDATE
		SET description = EXCLUDED.description,
		    plan_for_tomorrow = EXCLUDED.plan_for_tomorrow,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at, (xmax = 0)`
	var created bool
	err := r.q.QueryRow(context.Background(), query,
		log.ID, log.UserID, log.Date, log.Description, log.PlanForTomorrow, log.CreatedAt, log.UpdatedAt,
	).Scan(&log.ID, &log.CreatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("upsert work log: %w", err)
	}
	return created, nil
}

// List devuelve bitácoras según filtro, ordenadas por creación descendente.
func (r *WorkLogRepo) List(filter repository.WorkLogFilter) ([]*entity.WorkLog, error) {
	query := `
		SELECT id, user_id, date, description, plan_for_tomorrow, created_at, updated_at
		FROM work_logs WHERE 1=1`
	var args []any
	pos := 1
	if filter.Date != "" {
		query += fmt.Sprintf(" AND date = $%d", pos)
		args = append(args, filter.Date)
		pos++
	}
	if filter.UserID != "" {
		query += fmt.Sprintf(" AND user_id = $%d", pos)
		args = append(args, filter.UserID)
		pos++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list work logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.WorkLog
	for rows.Next() {
		var l entity.WorkLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Date, &l.Description, &l.PlanForTomorrow, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Delete elimina una bitácora por ID. No falla si el id no existe.
func (r *WorkLogRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work log: %w", err)
	}
	return nil
}

// DeleteByUser elimina todas las bitácoras de un usuario (cascada al eliminar la cuenta).
func (r *WorkLogRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM work_logs WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete work logs by user: %w", err)
	}
	return nil
}
