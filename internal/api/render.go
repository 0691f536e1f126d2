package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerfair/internal/api/middleware"
	"careerfair/internal/store"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template data keys the pages read field-scoped messages from.
const (
	insertErrField = store.FieldInsert
	searchErrField = store.FieldSearch
)

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// renderFlowError routes a flow failure either back into the originating form
// as a field-scoped message, or to the generic error page when the failure is
// not recoverable. An infrastructure error is never rendered as an empty
// success.
func renderFlowError(c *gin.Context, formTemplate, field string, data gin.H, err error) {
	fe := store.AsFlowError(err)
	if !fe.Recoverable() {
		middleware.LoggerFromContext(c).Error("request failed", slog.Any("error", err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Internal error. Please try again later.",
		})
		return
	}
	if data == nil {
		data = gin.H{}
	}
	if fe.Field != "" {
		field = fe.Field
	}
	data[field] = fe.Message
	c.HTML(http.StatusOK, formTemplate, data)
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
