package repository

import "github.com/jhoicas/bitacora-api/internal/domain/entity"

// WorkLogFilter filtros opcionales para listar bitácoras; campo vacío = sin filtro.
type WorkLogFilter struct {
	Date   string
	UserID string
}

// WorkLogRepository define el puerto de persistencia para WorkLog (DIP).
type WorkLogRepository interface {
	// Upsert inserta la bitácora o, si ya existe una para (UserID, Date), la sobrescribe.
	// Devuelve created=true si la fila fue creada. La entidad queda con el ID y
	// CreatedAt de la fila persistida (la existente conserva los suyos).
	Upsert(log *entity.WorkLog) (created bool, err error)
	List(filter WorkLogFilter) ([]*entity.WorkLog, error)
	Delete(id string) error
	DeleteByUser(userID string) error
}
