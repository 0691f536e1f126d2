package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerfair/internal/database"
	"careerfair/internal/store"
)

// RecruiterHandler serves the recruiter form (with company picker), insert
// and home view.
type RecruiterHandler struct {
	store *store.Store
}

func NewRecruiterHandler(s *store.Store) *RecruiterHandler {
	return &RecruiterHandler{store: s}
}

func (h *RecruiterHandler) ShowForm(c *gin.Context) {
	companies, err := h.store.ListCompanies(c.Request.Context())
	if err != nil {
		renderFlowError(c, "recruiter.html", searchErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "recruiter.html", gin.H{"Companies": companies})
}

// Create inserts a recruiter after checking the referenced company exists.
func (h *RecruiterHandler) Create(c *gin.Context) {
	companyID, err := parseID(c.PostForm("company_id"))
	if err != nil {
		renderFlowError(c, "recruiter.html", insertErrField, nil,
			store.ValidationError("Company id invalid. Company not exists."))
		return
	}
	recruiter := database.Recruiter{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Phone:     c.PostForm("phone"),
		Email:     c.PostForm("email"),
		Title:     c.PostForm("title"),
		CompanyID: companyID,
	}
	if err := h.store.CreateRecruiter(c.Request.Context(), recruiter); err != nil {
		renderFlowError(c, "recruiter.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "recruiter.html", gin.H{})
}

// Find runs the recruiter aggregation flow keyed by first and last name.
func (h *RecruiterHandler) Find(c *gin.Context) {
	views, err := h.store.RecruiterHome(c.Request.Context(), c.Query("first_name"), c.Query("last_name"))
	if err != nil {
		renderFlowError(c, "recruiter.html", searchErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "recruiter_home.html", gin.H{"Recruiters": views})
}
