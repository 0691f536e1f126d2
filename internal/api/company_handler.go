package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerfair/internal/database"
	"careerfair/internal/store"
)

// CompanyHandler serves the company form, insert and home view.
type CompanyHandler struct {
	store *store.Store
}

func NewCompanyHandler(s *store.Store) *CompanyHandler {
	return &CompanyHandler{store: s}
}

func (h *CompanyHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "company.html", gin.H{})
}

// Create inserts a company. An overlong description surfaces as a data error
// message, distinct from integrity failures.
func (h *CompanyHandler) Create(c *gin.Context) {
	company := database.Company{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
	}
	if err := h.store.CreateCompany(c.Request.Context(), company); err != nil {
		renderFlowError(c, "company.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "company.html", gin.H{})
}

// Find runs the company aggregation flow keyed by name.
func (h *CompanyHandler) Find(c *gin.Context) {
	views, err := h.store.CompanyHome(c.Request.Context(), c.Query("name"))
	if err != nil {
		renderFlowError(c, "company.html", searchErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "company_home.html", gin.H{"Companies": views})
}
