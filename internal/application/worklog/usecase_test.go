package worklog_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bitacora-api/internal/application/dto"
	"github.com/jhoicas/bitacora-api/internal/application/worklog"
	"github.com/jhoicas/bitacora-api/internal/domain"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/domain/repository"
)

// fakeLogRepo repo de bitácoras en memoria con upsert por (user_id, date).
type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*entity.WorkLog
}

func (r *fakeLogRepo) Upsert(log *entity.WorkLog) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.logs {
		if l.UserID == log.UserID && l.Date == log.Date {
			l.Description = log.Description
			l.PlanForTomorrow = log.PlanForTomorrow
			l.UpdatedAt = log.UpdatedAt
			log.ID = l.ID
			log.CreatedAt = l.CreatedAt
			return false, nil
		}
	}
	cp := *log
	r.logs = append(r.logs, &cp)
	return true, nil
}

func (r *fakeLogRepo) List(filter repository.WorkLogFilter) ([]*entity.WorkLog, error) {
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
	return out, nil
}

func (r *fakeLogRepo) Delete(id string) error {
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

func (r *fakeLogRepo) DeleteByUser(userID string) error {
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

// fakeUserDir directorio de usuarios solo lectura (GetByID para enriquecer username).
type fakeUserDir struct {
	byID map[string]*entity.User
}

func (d *fakeUserDir) Create(*entity.User) error { return nil }
func (d *fakeUserDir) GetByID(id string) (*entity.User, error) {
	if u, ok := d.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}
func (d *fakeUserDir) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (d *fakeUserDir) List() ([]*entity.User, error)              { return nil, nil }
func (d *fakeUserDir) Delete(string) error                        { return nil }

func newUserDir(users ...*entity.User) *fakeUserDir {
	d := &fakeUserDir{byID: map[string]*entity.User{}}
	for _, u := range users {
		d.byID[u.ID] = u
	}
	return d
}

func newWorker(username string) *entity.User {
	return &entity.User{ID: uuid.New().String(), Username: username, Role: entity.RoleWorker}
}

func TestSubmitToday_SobrescribeSinDuplicar(t *testing.T) {
	bob := newWorker("bob")
	logRepo := &fakeLogRepo{}
	uc := worklog.NewWorkLogUseCase(logRepo, newUserDir(bob))

	first, created, err := uc.SubmitToday(bob.ID, dto.SubmitWorkLogRequest{
		Description: "did X", PlanForTomorrow: "do Y",
	})
	require.NoError(t, err)
	assert.True(t, created, "el primer envío del día crea")
	assert.Equal(t, worklog.Today(), first.Date)
	assert.Equal(t, "bob", first.Username)

	second, created, err := uc.SubmitToday(bob.ID, dto.SubmitWorkLogRequest{
		Description: "did X and Z", PlanForTomorrow: "do W",
	})
	require.NoError(t, err)
	assert.False(t, created, "el segundo envío del día sobrescribe")
	assert.Equal(t, first.ID, second.ID, "la fila conserva su id")
	assert.Equal(t, first.CreatedAt, second.CreatedAt, "la fila conserva su created_at")

	all, err := logRepo.List(repository.WorkLogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "did X and Z", all[0].Description)
	assert.Equal(t, "do W", all[0].PlanForTomorrow)
}

func TestList_WorkerIgnoraFiltroAjeno(t *testing.T) {
	bob, carol := newWorker("bob"), newWorker("carol")
	logRepo := &fakeLogRepo{}
	uc := worklog.NewWorkLogUseCase(logRepo, newUserDir(bob, carol))

	_, _, err := uc.SubmitToday(bob.ID, dto.SubmitWorkLogRequest{Description: "b", PlanForTomorrow: "b2"})
	require.NoError(t, err)
	_, _, err = uc.SubmitToday(carol.ID, dto.SubmitWorkLogRequest{Description: "c", PlanForTomorrow: "c2"})
	require.NoError(t, err)

	out, err := uc.List(bob.ID, entity.RoleWorker, dto.ListWorkLogsRequest{UserID: carol.ID})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, bob.ID, out[0].UserID, "un WORKER solo puede listar lo suyo")
}

func TestList_AdminRespetaFiltros(t *testing.T) {
	bob, carol := newWorker("bob"), newWorker("carol")
	admin := &entity.User{ID: uuid.New().String(), Username: "alice", Role: entity.RoleAdmin}
	logRepo := &fakeLogRepo{}
	uc := worklog.NewWorkLogUseCase(logRepo, newUserDir(bob, carol, admin))

	_, _, err := uc.SubmitToday(bob.ID, dto.SubmitWorkLogRequest{Description: "b", PlanForTomorrow: "b2"})
	require.NoError(t, err)
	_, _, err = uc.SubmitToday(carol.ID, dto.SubmitWorkLogRequest{Description: "c", PlanForTomorrow: "c2"})
	require.NoError(t, err)

	all, err := uc.List(admin.ID, entity.RoleAdmin, dto.ListWorkLogsRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	soloCarol, err := uc.List(admin.ID, entity.RoleAdmin, dto.ListWorkLogsRequest{UserID: carol.ID})
	require.NoError(t, err)
	require.Len(t, soloCarol, 1)
	assert.Equal(t, "carol", soloCarol[0].Username)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte diario
// ──────────────────────────────────────────────────────────────────────────────

// captureGenerator registra lo que recibe y devuelve bytes fijos.
type captureGenerator struct {
	date    string
	entries []worklog.ReportEntry
}

func (g *captureGenerator) GenerateDailyReport(_ context.Context, date string, entries []worklog.ReportEntry) ([]byte, error) {
	g.date = date
	g.entries = entries
	return []byte("%PDF-fake"), nil
}

func TestDailyReport_FechaVaciaUsaHoy(t *testing.T) {
	bob := newWorker("bob")
	logRepo := &fakeLogRepo{}
	gen := &captureGenerator{}
	uc := worklog.NewReportUseCase(logRepo, newUserDir(bob), gen)

	wlUC := worklog.NewWorkLogUseCase(logRepo, newUserDir(bob))
	_, _, err := wlUC.SubmitToday(bob.ID, dto.SubmitWorkLogRequest{Description: "d", PlanForTomorrow: "p"})
	require.NoError(t, err)

	pdf, filename, err := uc.DailyReport(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, worklog.Today(), gen.date)
	assert.Equal(t, "Activity_Journal_"+worklog.Today()+".pdf", filename)
	assert.NotEmpty(t, pdf)
	require.Len(t, gen.entries, 1)
	assert.Equal(t, "bob", gen.entries[0].Username)
}

func TestDailyReport_FechaInvalida(t *testing.T) {
	uc := worklog.NewReportUseCase(&fakeLogRepo{}, newUserDir(), &captureGenerator{})

	for _, bad := range []string{"31-12-2025", "2025/12/31", "hoy", "2025-13-01"} {
		_, _, err := uc.DailyReport(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha %q", bad)
	}
}

func TestDailyReport_DiaSinBitacoras(t *testing.T) {
	gen := &captureGenerator{}
	uc := worklog.NewReportUseCase(&fakeLogRepo{}, newUserDir(), gen)

	pdf, _, err := uc.DailyReport(context.Background(), "2025-01-15")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf, "un día vacío sigue produciendo PDF")
	assert.Empty(t, gen.entries)
}

func TestDailyReport_UsuarioDesconocidoUsaFallback(t *testing.T) {
	logRepo := &fakeLogRepo{}
	now := time.Now()
	_, err := logRepo.Upsert(&entity.WorkLog{
		ID: uuid.New().String(), UserID: "huerfano", Date: "2025-01-15",
		Description: "d", PlanForTomorrow: "p", CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	gen := &captureGenerator{}
	uc := worklog.NewReportUseCase(logRepo, newUserDir(), gen)

	_, _, err = uc.DailyReport(context.Background(), "2025-01-15")
	require.NoError(t, err)
	require.Len(t, gen.entries, 1)
	assert.Equal(t, "—", gen.entries[0].Username)
}
