package worklog

import "context"

// ReportEntry una sección del reporte diario: dueño + contenido de su bitácora.
type ReportEntry struct {
	Username        string
	Description     string
	PlanForTomorrow string
}

// ReportPDFGenerator puerto de generación del PDF "Work Activity Journal".
// Lo implementa pdf.MarotoReportGenerator.
type ReportPDFGenerator interface {
	GenerateDailyReport(ctx context.Context, date string, entries []ReportEntry) ([]byte, error)
}
