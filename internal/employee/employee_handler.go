package employee

import (
	"net/http"

	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/contextutil"
	"go-employees/internal/shared/flash"
	"go-employees/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	flash   *flash.Store
	logger  *zap.Logger
}

func NewHandler(service Service, flashStore *flash.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, flash: flashStore, logger: l}
}

func (h *Handler) log(c *gin.Context) *zap.Logger {
	return contextutil.GetNamedLogger(c.Request.Context(), "employee.handler", h.logger)
}

func (h *Handler) logFailure(c *gin.Context, err error) apperror.HTTPError {
	httpErr := apperror.ToHTTP(err)
	h.log(c).Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	return httpErr
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := h.logFailure(c, err)
	response.ErrorPage(c, httpErr.Status)
}

func (h *Handler) writeAPIError(c *gin.Context, err error) {
	httpErr := h.logFailure(c, err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Index renders every employee ordered by id.
func (h *Handler) Index(c *gin.Context) {
	empls, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "index.html", gin.H{
		"Title":     "Employees",
		"Employees": empls,
		"Flash":     h.flash.Pop(c),
	})
}

// New renders the creation form with departments, roles and candidate
// managers.
func (h *Handler) New(c *gin.Context) {
	opts, err := h.service.FormOptions(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "employee_form.html", gin.H{
		"Title":       "New employee",
		"Departments": opts.Departments,
		"Roles":       opts.Roles,
		"Managers":    opts.Managers,
		"Flash":       h.flash.Pop(c),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.flash.Set(c, flash.KindSuccess, "Employee created"); err != nil {
		h.log(c).Error("set flash failed", zap.Error(err))
	}
	h.log(c).Info("http create employee", zap.Uint("employee_id", resp.ID))
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Show(c *gin.Context) {
	detail, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Page(c, http.StatusOK, "employee_detail.html", gin.H{
		"Title":    detail.FullName,
		"Employee": detail,
		"Flash":    h.flash.Pop(c),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.flash.Set(c, flash.KindWarning, "Employee deleted"); err != nil {
		h.log(c).Error("set flash failed", zap.Error(err))
	}
	h.log(c).Info("http delete employee", zap.String("employee_id", id))
	c.Redirect(http.StatusFound, "/")
}

// APIList serves the flat JSON listing.
func (h *Handler) APIList(c *gin.Context) {
	summaries, err := h.service.ListSummaries(c.Request.Context())
	if err != nil {
		h.writeAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, summaries)
}

func (h *Handler) Export(c *gin.Context) {
	summaries, err := h.service.ListSummaries(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Status(http.StatusOK)
	if err := WriteWorkbook(c.Writer, summaries); err != nil {
		h.log(c).Error("write employee workbook failed", zap.Error(err))
	}
}
