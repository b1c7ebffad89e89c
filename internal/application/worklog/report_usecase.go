package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bitacora-api/internal/domain"
	"github.com/jhoicas/bitacora-api/internal/domain/entity"
	"github.com/jhoicas/bitacora-api/internal/domain/repository"
)

// ReportUseCase genera el PDF "Work Activity Journal" de un día (solo ADMIN).
type ReportUseCase struct {
	logRepo   repository.WorkLogRepository
	userRepo  repository.UserRepository
	generator ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(logRepo repository.WorkLogRepository, userRepo repository.UserRepository, generator ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{logRepo: logRepo, userRepo: userRepo, generator: generator}
}

// DailyReport arma el reporte del día indicado ("" = hoy) con una sección por bitácora.
//
// Retorna:
//   - (pdfBytes, filename, nil)   si todo sale bien.
//   - domain.ErrInvalidInput      si la fecha no tiene formato YYYY-MM-DD.
//
// Un día sin bitácoras sigue siendo un PDF válido (solo cabecera).
func (uc *ReportUseCase) DailyReport(ctx context.Context, date string) (pdfBytes []byte, filename string, err error) {
	if date == "" {
		date = Today()
	}
	if _, perr := time.Parse(entity.DateLayout, date); perr != nil {
		return nil, "", fmt.Errorf("%w: fecha %q, se espera YYYY-MM-DD", domain.ErrInvalidInput, date)
	}

	logs, err := uc.logRepo.List(repository.WorkLogFilter{Date: date})
	if err != nil {
		return nil, "", fmt.Errorf("report: listar bitácoras: %w", err)
	}

	names := map[string]string{}
	entries := make([]ReportEntry, 0, len(logs))
	for _, l := range logs {
		username, ok := names[l.UserID]
		if !ok {
			username = "—"
			if u, uerr := uc.userRepo.GetByID(l.UserID); uerr == nil && u != nil {
				username = u.Username
			}
			names[l.UserID] = username
		}
		entries = append(entries, ReportEntry{
			Username:        username,
			Description:     l.Description,
			PlanForTomorrow: l.PlanForTomorrow,
		})
	}

	pdfBytes, err = uc.generator.GenerateDailyReport(ctx, date, entries)
	if err != nil {
		return nil, "", fmt.Errorf("report: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("Activity_Journal_%s.pdf", date), nil
}
