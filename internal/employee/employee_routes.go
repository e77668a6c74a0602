package employee

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the employee pages and API. writeGuards run before
// every state-changing handler.
func RegisterRoutes(
	r gin.IRoutes,
	handler *Handler,
	writeGuards ...gin.HandlerFunc,
) {
	guarded := func(h gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(writeGuards)+1)
		chain = append(chain, writeGuards...)
		return append(chain, h)
	}

	r.GET("/", handler.Index)
	r.GET("/employee/new", handler.New)
	r.POST("/employee/new", guarded(handler.Create)...)
	r.GET("/employee/:id", handler.Show)
	r.POST("/employee/:id/delete", guarded(handler.Delete)...)

	r.GET("/api/employees", handler.APIList)
	r.GET("/employees/export.xlsx", handler.Export)
}
