package report

import (
	"fmt"
	"net/http"

	"hr-ledger/internal/shared/apperror"
	"hr-ledger/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Monthly(c *gin.Context) {
	month := c.Param("month")

	resp, err := h.service.Monthly(c.Request.Context(), month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Export streams the month's transactions as an attachment named
// Salary_<month>.csv or Salary_<month>.xlsx.
func (h *Handler) Export(c *gin.Context) {
	month := c.Param("month")
	format := c.DefaultQuery("format", "csv")

	var (
		data        []byte
		err         error
		contentType string
		filename    string
	)

	switch format {
	case "csv":
		data, err = h.service.ExportCSV(c.Request.Context(), month)
		contentType = contentTypeCSV
		filename = fmt.Sprintf("Salary_%s.csv", month)
	case "xlsx":
		data, err = h.service.ExportWorkbook(c.Request.Context(), month)
		contentType = contentTypeXLSX
		filename = fmt.Sprintf("Salary_%s.xlsx", month)
	default:
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"format must be csv or xlsx", nil)
		return
	}

	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}
