package pdf

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bitacora-api/internal/application/worklog"
)

func TestGenerateDailyReport_ProduceBytesPDF(t *testing.T) {
	gen := NewMarotoReportGenerator()

	entries := []worklog.ReportEntry{
		{Username: "bob", Description: "terminé el módulo de usuarios", PlanForTomorrow: "empezar reportes"},
		{Username: "carol", Description: "revisión de código\npruebas de integración", PlanForTomorrow: "deploy"},
	}
	out, err := gen.GenerateDailyReport(context.Background(), "2025-01-15", entries)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "los bytes deben empezar con la firma PDF")
}

func TestGenerateDailyReport_SinEntradas(t *testing.T) {
	gen := NewMarotoReportGenerator()

	out, err := gen.GenerateDailyReport(context.Background(), "2025-01-15", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "un día vacío sigue siendo un PDF válido")
}

func TestWrapText(t *testing.T) {
	// texto corto: una sola línea tal cual
	assert.Equal(t, []string{"hola mundo"}, wrapText("hola mundo", 20))

	// vacío: siempre al menos una línea
	assert.Equal(t, []string{""}, wrapText("", 20))

	// corta en espacios sin exceder el ancho
	long := strings.Repeat("palabra ", 30)
	for _, ln := range wrapText(long, 40) {
		assert.LessOrEqual(t, len(ln), 40)
		assert.NotEmpty(t, ln)
	}

	// respeta los saltos de línea del usuario
	got := wrapText("línea uno\nlínea dos", 80)
	assert.Equal(t, []string{"línea uno", "línea dos"}, got)

	// una palabra más larga que el ancho queda en su propia línea
	got = wrapText("corta palabramuylargaquedesborda corta", 10)
	assert.Contains(t, got, "palabramuylargaquedesborda")
}
