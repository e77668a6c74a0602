package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ApiError struct {
	Ok    bool `json:"ok"`
	Error any  `json:"error"`
}

// Error writes the JSON error envelope used by the /api routes.
func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiError{
		Ok: false,
		Error: map[string]interface{}{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}

// Page renders an HTML template from the engine's template set.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	c.HTML(status, name, data)
}

// ErrorPage renders the generic error view. The cause is never shown to the
// client; callers log it.
func ErrorPage(c *gin.Context, status int) {
	title := http.StatusText(status)
	if title == "" {
		title = "Error"
	}
	c.HTML(status, "error.html", gin.H{
		"Title":  title,
		"Status": status,
	})
}
