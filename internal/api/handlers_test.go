package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"careerfair/internal/database"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "careerfair.db")), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(loadTemplates())
	RegisterRoutes(router, db)
	return router, db
}

func getPage(t *testing.T, router *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func postForm(t *testing.T, router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginAlwaysUnauthorized(t *testing.T) {
	router, _ := newTestRouter(t)

	w := getPage(t, router, "/login")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	w = getPage(t, router, "/login?user=admin&password=admin")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status with params = %d, want 401", w.Code)
	}
}

func TestCreateCandidateEmptyNameRendersFieldError(t *testing.T) {
	router, db := newTestRouter(t)

	w := postForm(t, router, "/candidate", url.Values{
		"first_name": {""},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (error renders in the form)", w.Code)
	}
	if !strings.Contains(w.Body.String(), "First name and last name should be not null.") {
		t.Errorf("body missing validation message: %s", w.Body.String())
	}
	var n int64
	db.Model(&database.Candidate{}).Count(&n)
	if n != 0 {
		t.Errorf("candidate rows = %d, want 0", n)
	}
}

func TestCreateCandidateDuplicateEmailRendersFieldError(t *testing.T) {
	router, db := newTestRouter(t)

	form := url.Values{
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
	}
	if w := postForm(t, router, "/candidate", form); w.Code != http.StatusOK {
		t.Fatalf("first insert status = %d", w.Code)
	}
	w := postForm(t, router, "/candidate", form)
	if w.Code != http.StatusOK {
		t.Fatalf("second insert status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Email should be unique") {
		t.Errorf("body missing uniqueness message: %s", w.Body.String())
	}
	var n int64
	db.Model(&database.Candidate{}).Count(&n)
	if n != 1 {
		t.Errorf("candidate rows = %d, want 1", n)
	}
}

func TestEventRegistrationReturnsHostViewWithBudget(t *testing.T) {
	router, db := newTestRouter(t)

	host := database.Host{FirstName: "Hank", LastName: "Host", Organization: "CS Club"}
	if err := db.Create(&host).Error; err != nil {
		t.Fatalf("seed host: %v", err)
	}

	w := postForm(t, router, "/event", url.Values{
		"host_id":     {strconv.Itoa(int(host.ID))},
		"date":        {"2026-10-01"},
		"time":        {"10:00"},
		"description": {"Autumn fair"},
		"location":    {"Main hall"},
		"capacity":    {"200"},
		"budget":      {"5500"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Autumn fair") {
		t.Errorf("host view missing event description: %s", body)
	}
	if !strings.Contains(body, "5500") {
		t.Errorf("host view missing budget: %s", body)
	}
}

func TestDeleteNonexistentEvent(t *testing.T) {
	router, db := newTestRouter(t)

	host := database.Host{FirstName: "Hank", LastName: "Host"}
	if err := db.Create(&host).Error; err != nil {
		t.Fatalf("seed host: %v", err)
	}
	event := database.Event{Date: "2026-10-01", Description: "survives"}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	w := getPage(t, router, "/deleteEvent?event_id=9999&host_id="+strconv.Itoa(int(host.ID)))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Delete failed. Event id invalid. Event not exists.") {
		t.Errorf("body missing delete error: %s", w.Body.String())
	}
	var n int64
	db.Model(&database.Event{}).Count(&n)
	if n != 1 {
		t.Errorf("event rows = %d, want 1", n)
	}
}

func TestRecruiterRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	if w := postForm(t, router, "/company", url.Values{
		"name":        {"Acme"},
		"description": {"rockets"},
		"location":    {"Moon"},
	}); w.Code != http.StatusOK {
		t.Fatalf("create company status = %d", w.Code)
	}

	if w := postForm(t, router, "/recruiter", url.Values{
		"first_name": {"Rita"},
		"last_name":  {"Recruiter"},
		"phone":      {"555-0100"},
		"email":      {"rita@acme.example"},
		"title":      {"Lead"},
		"company_id": {"1"},
	}); w.Code != http.StatusOK {
		t.Fatalf("create recruiter status = %d", w.Code)
	}

	w := getPage(t, router, "/findRecruiter?first_name=Rita&last_name=Recruiter")
	if w.Code != http.StatusOK {
		t.Fatalf("find recruiter status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Rita Recruiter") {
		t.Errorf("body missing recruiter name: %s", body)
	}
	if !strings.Contains(body, "Acme") {
		t.Errorf("body missing nested company name: %s", body)
	}
}

func TestFindCandidateNoResult(t *testing.T) {
	router, _ := newTestRouter(t)

	w := getPage(t, router, "/findCandidate?email=nobody@example.com")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No result found.") {
		t.Errorf("body missing no-result message: %s", w.Body.String())
	}
}

func TestIndexListsCandidateNames(t *testing.T) {
	router, db := newTestRouter(t)

	if err := db.Create(&database.Candidate{FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com"}).Error; err != nil {
		t.Fatalf("seed candidate: %v", err)
	}

	w := getPage(t, router, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Grace Hopper") {
		t.Errorf("body missing candidate name: %s", w.Body.String())
	}
}

func TestStoreFailureRendersErrorPage(t *testing.T) {
	router, db := newTestRouter(t)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	w := getPage(t, router, "/findCandidate?email=ada@example.com")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Something went wrong") {
		t.Errorf("body missing error page heading: %s", body)
	}
	if strings.Contains(body, "No result found.") {
		t.Errorf("dead store must not render as an empty lookup: %s", body)
	}
}

func TestInviteMissingCompany(t *testing.T) {
	router, db := newTestRouter(t)

	host := database.Host{FirstName: "Hank", LastName: "Host"}
	if err := db.Create(&host).Error; err != nil {
		t.Fatalf("seed host: %v", err)
	}

	w := postForm(t, router, "/invite", url.Values{
		"host_id":    {strconv.Itoa(int(host.ID))},
		"company_id": {"77"},
		"event_id":   {"1"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invite failed. Company id invalid. Company not exists.") {
		t.Errorf("body missing invite error: %s", w.Body.String())
	}
}
