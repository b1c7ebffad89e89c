package worklog

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/bitacora-api/internal/application/dto"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/domain/repository"
)

// WorkLogUseCase casos de uso de bitácoras: upsert diario, listado con scoping por rol y borrado.
type WorkLogUseCase struct {
	logRepo  repository.WorkLogRepository
	userRepo repository.UserRepository
}

// NewWorkLogUseCase construye el caso de uso.
func NewWorkLogUseCase(logRepo repository.WorkLogRepository, userRepo repository.UserRepository) *WorkLogUseCase {
	return &WorkLogUseCase{logRepo: logRepo, userRepo: userRepo}
}

// Today devuelve el día calendario actual normalizado "YYYY-MM-DD".
// Siempre en UTC: cambiar la zona movería las fechas observables cerca de medianoche.
func Today() string {
	return time.Now().UTC().Format(entity.DateLayout)
}

// SubmitToday crea o sobrescribe la bitácora del usuario para el día de hoy.
// Devuelve created=true si es el primer envío del día (la capa HTTP responde 201 vs 200).
// El upsert es una sola sentencia atómica; dos envíos concurrentes nunca duplican fila.
func (uc *WorkLogUseCase) SubmitToday(userID string, in dto.SubmitWorkLogRequest) (*dto.WorkLogResponse, bool, error) {
	now := time.Now()
	log := &entity.WorkLog{
		ID:              uuid.New().String(),
		UserID:          userID,
		Date:            Today(),
		Description:     in.Description,
		PlanForTomorrow: in.PlanForTomorrow,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	created, err := uc.logRepo.Upsert(log)
	if err != nil {
		return nil, false, err
	}
	return uc.toResponse(log, nil), created, nil
}

// List devuelve bitácoras ordenadas por creación descendente, enriquecidas con el
// username del dueño. Regla de autorización (no mera conveniencia): si el caller no
// es ADMIN, el filtro de usuario se sustituye por su propio ID, ignorando el pedido.
func (uc *WorkLogUseCase) List(callerID, callerRole string, in dto.ListWorkLogsRequest) ([]dto.WorkLogResponse, error) {
	filter := repository.WorkLogFilter{Date: in.Date, UserID: in.UserID}
	if callerRole != entity.RoleAdmin {
		filter.UserID = callerID
	}
	logs, err := uc.logRepo.List(filter)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.WorkLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, *uc.toResponse(l, names))
	}
	return out, nil
}

// Delete elimina una bitácora por ID (solo ADMIN, gate en la capa HTTP).
// Idempotente: un id inexistente no es error.
func (uc *WorkLogUseCase) Delete(id string) error {
	return uc.logRepo.Delete(id)
}

// toResponse convierte la entidad y resuelve el username del dueño.
// names cachea resoluciones dentro de un mismo listado; nil lo desactiva.
func (uc *WorkLogUseCase) toResponse(l *entity.WorkLog, names map[string]string) *dto.WorkLogResponse {
	username, ok := "", false
	if names != nil {
		username, ok = names[l.UserID]
	}
	if !ok {
		if u, err := uc.userRepo.GetByID(l.UserID); err == nil && u != nil {
			username = u.Username
		}
		if names != nil {
			names[l.UserID] = username
		}
	}
	return &dto.WorkLogResponse{
		ID:              l.ID,
		UserID:          l.UserID,
		Username:        username,
		Date:            l.Date,
		Description:     l.Description,
		PlanForTomorrow: l.PlanForTomorrow,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
