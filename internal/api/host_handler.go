package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"careerfair/internal/database"
	"careerfair/internal/store"
)

// HostHandler serves the host form and the event-centered flows: event
// registration, company invites and event deletion all return the refreshed
// host view.
type HostHandler struct {
	store *store.Store
}

func NewHostHandler(s *store.Store) *HostHandler {
	return &HostHandler{store: s}
}

func (h *HostHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "host.html", gin.H{})
}

func (h *HostHandler) Create(c *gin.Context) {
	host := database.Host{
		FirstName:    c.PostForm("first_name"),
		LastName:     c.PostForm("last_name"),
		Organization: c.PostForm("organization"),
	}
	if err := h.store.CreateHost(c.Request.Context(), host); err != nil {
		renderFlowError(c, "host.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "host.html", gin.H{})
}

// Find runs the host aggregation flow keyed by first and last name.
func (h *HostHandler) Find(c *gin.Context) {
	views, err := h.store.HostHome(c.Request.Context(), c.Query("first_name"), c.Query("last_name"))
	if err != nil {
		renderFlowError(c, "host.html", searchErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "host_home.html", gin.H{"Hosts": views})
}

// RegisterEvent inserts an event plus its Organizes link and re-renders the
// host view.
func (h *HostHandler) RegisterEvent(c *gin.Context) {
	hostID, err := parseID(c.PostForm("host_id"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Register event failed. Host id invalid."))
		return
	}
	capacity, err := strconv.Atoi(c.PostForm("capacity"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Register event failed. Capacity must be a number."))
		return
	}
	budget, err := strconv.Atoi(c.PostForm("budget"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Register event failed. Budget must be a number."))
		return
	}

	input := store.EventInput{
		Date:        c.PostForm("date"),
		Time:        c.PostForm("time"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Capacity:    capacity,
		Budget:      budget,
	}
	views, err := h.store.RegisterEvent(c.Request.Context(), hostID, input)
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "host_home.html", gin.H{"Hosts": views})
}

// Invite links a company to an event after explicit existence checks.
func (h *HostHandler) Invite(c *gin.Context) {
	hostID, err := parseID(c.PostForm("host_id"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Invite failed. Host id invalid."))
		return
	}
	companyID, err := parseID(c.PostForm("company_id"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Invite failed. Company id invalid. Company not exists."))
		return
	}
	eventID, err := parseID(c.PostForm("event_id"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Invite failed. Event id invalid. Event not exists."))
		return
	}

	views, err := h.store.InviteCompany(c.Request.Context(), hostID, companyID, eventID)
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "host_home.html", gin.H{"Hosts": views})
}

// DeleteEvent removes an event and its association rows, then re-renders the
// host view.
func (h *HostHandler) DeleteEvent(c *gin.Context) {
	eventID, err := parseID(c.Query("event_id"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Delete failed. Event id invalid. Event not exists."))
		return
	}
	hostID, err := parseID(c.Query("host_id"))
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil,
			store.ValidationError("Delete failed. Host id invalid."))
		return
	}

	views, err := h.store.DeleteEvent(c.Request.Context(), eventID, hostID)
	if err != nil {
		renderFlowError(c, "host.html", insertErrField, nil, err)
		return
	}
	c.HTML(http.StatusOK, "host_home.html", gin.H{"Hosts": views})
}
