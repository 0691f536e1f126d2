package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careerfair/internal/database"
	"careerfair/internal/store"
)

// CandidateHandler serves the candidate form, insert and home view.
type CandidateHandler struct {
	store *store.Store
}

func NewCandidateHandler(s *store.Store) *CandidateHandler {
	return &CandidateHandler{store: s}
}

func (h *CandidateHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "candidate.html", gin.H{})
}

// Create inserts a candidate from the registration form. A duplicate email or
// missing name renders back into the form.
func (h *CandidateHandler) Create(c *gin.Context) {
	candidate := database.Candidate{
		FirstName: c.PostForm("first_name"),
		LastName:  c.PostForm("last_name"),
		Phone:     c.PostForm("phone"),
		Email:     c.PostForm("email"),
	}
	if err := h.store.CreateCandidate(c.Request.Context(), candidate); err != nil {
		renderFlowError(c, "candidate.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "candidate.html", gin.H{})
}

// Find runs the candidate aggregation flow keyed by email.
func (h *CandidateHandler) Find(c *gin.Context) {
	view, err := h.store.CandidateHome(c.Request.Context(), c.Query("email"))
	if err != nil {
		renderFlowError(c, "candidate.html", searchErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "candidate_home.html", gin.H{"View": view})
}
