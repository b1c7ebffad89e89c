package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bitacora-api/internal/application/dto"
	"github.com/jhoicas/bitacora-api/internal/application/worklog"
	"github.com/jhoicas/bitacora-api/internal/domain"
)

// WorkLogHandler maneja las peticiones HTTP de bitácoras (protegido).
type WorkLogHandler struct {
	uc       *worklog.WorkLogUseCase
	reportUC *worklog.ReportUseCase
}

// NewWorkLogHandler construye el handler.
func NewWorkLogHandler(uc *worklog.WorkLogUseCase, reportUC *worklog.ReportUseCase) *WorkLogHandler {
	return &WorkLogHandler{uc: uc, reportUC: reportUC}
}

// Submit godoc
// @Summary      Enviar la bitácora de hoy (crea o sobrescribe)
// @Tags         work-logs
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitWorkLogRequest  true  "description, planForTomorrow"
// @Success      200   {object}  dto.WorkLogResponse  "sobrescrita"
// @Success      201   {object}  dto.WorkLogResponse  "creada"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/work-logs [post]
func (h *WorkLogHandler) Submit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.SubmitWorkLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Description == "" || in.PlanForTomorrow == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "description y planForTomorrow son requeridos"})
	}
	log, created, err := h.uc.SubmitToday(userID, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(log)
}

// List godoc
// @Summary      Listar bitácoras (no-admin: solo las propias)
// @Tags         work-logs
// @Produce      json
// @Param        date     query  string  false  "día calendario YYYY-MM-DD"
// @Param        user_id  query  string  false  "filtro por dueño (solo ADMIN)"
// @Success      200  {array}   dto.WorkLogResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/work-logs [get]
func (h *WorkLogHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	in := dto.ListWorkLogsRequest{
		Date:   c.Query("date"),
		UserID: c.Query("user_id"),
	}
	logs, err := h.uc.List(userID, GetRole(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(logs)
}

// Delete godoc
// @Summary      Eliminar una bitácora
// @Tags         work-logs
// @Produce      json
// @Param        id   path      string  true  "ID de la bitácora"
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/work-logs/{id} [delete]
func (h *WorkLogHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "bitácora eliminada"})
}

// Report godoc
// @Summary      Descargar el PDF "Work Activity Journal" de un día
// @Tags         work-logs
// @Produce      application/pdf
// @Param        date  query  string  false  "día calendario YYYY-MM-DD (por defecto hoy)"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/work-logs/report [get]
func (h *WorkLogHandler) Report(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reportUC.DailyReport(c.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
