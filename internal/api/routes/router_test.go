package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/technova-labs/portal-go/internal/api/handlers"
	"github.com/technova-labs/portal-go/internal/api/middleware"
	"github.com/technova-labs/portal-go/internal/api/routes"
	"github.com/technova-labs/portal-go/internal/application"
	"github.com/technova-labs/portal-go/internal/config"
	"github.com/technova-labs/portal-go/internal/delivery"
	"github.com/technova-labs/portal-go/internal/repository"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = "test-secret"
	config.Issuer = "test"
	middleware.Init()
	handlers.InitValidation()

	repos := repository.New()
	services := application.New(repos, delivery.Noop{}, zap.NewNop())

	r := gin.New()
	routes.RegisterRoutes(r, services)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func contactPayload(email string) map[string]any {
	return map[string]any{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     email,
		"phone":     "+1 555 010 0199",
		"service":   "Cloud Migration",
		"message":   "We need help moving to AWS.",
	}
}

func registerUser(t *testing.T, r *gin.Engine, username string) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"username": username,
		"password": "password123",
		"email":    username + "@test.com",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var u struct {
		ID uint `json:"id"`
	}
	decode(t, w, &u)
	return u.ID
}

func TestContactSubmission_AppearsNewestFirst(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/contact", contactPayload("first@acme.com"), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var ack struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	decode(t, w, &ack)
	assert.True(t, ack.Success)
	assert.Equal(t, uint(1), ack.ID)

	w = doJSON(t, r, http.MethodPost, "/api/contact", contactPayload("second@acme.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/inquiries", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Type  string `json:"type"`
	}
	decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "second@acme.com", list[0].Email)
	assert.Equal(t, "contact", list[0].Type)
}

func TestContactSubmission_InvalidEmail(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/contact", contactPayload("not-an-email"), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
	}
	decode(t, w, &resp)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Errors, "email")
}

func TestQuoteSubmission_TaggedAsQuote(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/quote", contactPayload("jane@acme.com"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/inquiries", nil, nil)
	var list []struct {
		Type string `json:"type"`
	}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "quote", list[0].Type)
}

func TestMarkInquiryRead(t *testing.T) {
	r := setupRouter()

	doJSON(t, r, http.MethodPost, "/api/contact", contactPayload("jane@acme.com"), nil)

	w := doJSON(t, r, http.MethodPatch, "/api/inquiries/1/read", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var q struct {
		IsRead bool `json:"is_read"`
	}
	decode(t, w, &q)
	assert.True(t, q.IsRead)

	w = doJSON(t, r, http.MethodPatch, "/api/inquiries/99/read", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConsultationLifecycle(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/consultation", map[string]any{
		"name":          "Jane Doe",
		"email":         "jane@acme.com",
		"phone":         "+1 555 010 0199",
		"service":       "Security Audit",
		"preferredDate": "2026-09-15",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPatch, "/api/consultations/1/status", map[string]any{"status": "confirmed"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var b struct {
		Status string `json:"status"`
	}
	decode(t, w, &b)
	assert.Equal(t, "confirmed", b.Status)

	w = doJSON(t, r, http.MethodPatch, "/api/consultations/1/status", map[string]any{"status": "archived"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProject_UnknownID(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/projects/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectComments_InternalFlag(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/project-comments", map[string]any{
		"projectId":  1,
		"userId":     1,
		"content":    "Internal note for the delivery team.",
		"isInternal": true,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/project-comments/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		Content    string `json:"content"`
		IsInternal bool   `json:"is_internal"`
	}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsInternal)
}

func TestProjects_FilteredByClient(t *testing.T) {
	r := setupRouter()

	clientA := registerUser(t, r, "client-a")
	clientB := registerUser(t, r, "client-b")

	for _, c := range []uint{clientA, clientB} {
		w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
			"name":        fmt.Sprintf("Project %d", c),
			"description": "Engagement",
			"client_id":   c,
			"budget":      10000,
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/projects?clientId=%d", clientA), nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		ClientID uint `json:"client_id"`
	}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, clientA, list[0].ClientID)
}

func TestPortalProjects_ScopedToSession(t *testing.T) {
	r := setupRouter()

	clientA := registerUser(t, r, "client-a")
	clientB := registerUser(t, r, "client-b")

	for _, c := range []uint{clientA, clientB} {
		w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
			"name":        fmt.Sprintf("Project %d", c),
			"description": "Engagement",
			"client_id":   c,
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// no token
	w := doJSON(t, r, http.MethodGet, "/api/portal/projects", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", map[string]any{
		"username": "client-a",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	decode(t, w, &login)
	require.NotEmpty(t, login.Token)

	w = doJSON(t, r, http.MethodGet, "/api/portal/projects", nil, map[string]string{
		"Authorization": "Bearer " + login.Token,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		ClientID uint `json:"client_id"`
	}
	decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, clientA, list[0].ClientID)
}

func TestTasksAndTimeEntries_FilteredByProject(t *testing.T) {
	r := setupRouter()

	client := registerUser(t, r, "client-a")

	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, "/api/projects", map[string]any{
			"name":        fmt.Sprintf("P%d", i+1),
			"description": "Engagement",
			"client_id":   client,
		}, nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodPost, "/api/tasks", map[string]any{
		"project_id":  1,
		"title":       "Kickoff",
		"description": "Schedule the kickoff call",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/tasks", map[string]any{
		"project_id":  2,
		"title":       "Audit",
		"description": "Review infrastructure",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/tasks?projectId=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []struct {
		Title string `json:"title"`
	}
	decode(t, w, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Kickoff", tasks[0].Title)

	w = doJSON(t, r, http.MethodPost, "/api/time-entries", map[string]any{
		"project_id":  1,
		"user_id":     client,
		"description": "Kickoff prep",
		"hours":       2.5,
		"date":        "2026-08-28",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/time-entries?projectId=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var entries []struct {
		Hours float64 `json:"hours"`
	}
	decode(t, w, &entries)
	require.Len(t, entries, 1)
	assert.Equal(t, 2.5, entries[0].Hours)

	// task on a project that does not exist
	w = doJSON(t, r, http.MethodPost, "/api/tasks", map[string]any{
		"project_id":  99,
		"title":       "Ghost",
		"description": "No project",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	r := setupRouter()

	registerUser(t, r, "alice")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", map[string]any{
		"username": "alice",
		"password": "password123",
		"email":    "other@test.com",
	}, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHealthz(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
