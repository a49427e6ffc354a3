package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baajeelectronics/baaje-golang/internal/auth"
	"github.com/baajeelectronics/baaje-golang/internal/database"
	"github.com/baajeelectronics/baaje-golang/internal/handlers"
	"github.com/baajeelectronics/baaje-golang/internal/routes"
	"github.com/baajeelectronics/baaje-golang/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

type testApp struct {
	router *gin.Engine
	app    *handlers.Handlers
	db     *sql.DB
}

// newTestApp wires the real router over a seeded in-memory database.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One connection only: every connection to :memory: is its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	app := &handlers.Handlers{
		Store:  store.New(db),
		Tokens: auth.NewTokenService(testSecret),
	}
	policy := &auth.FixedEmailPolicy{DB: db, Email: auth.AdminEmail}

	return &testApp{
		router: routes.SetupRouter(app, policy),
		app:    app,
		db:     db,
	}
}

// do performs one request against the router. A non-empty token goes into
// the Authorization header; a non-nil body is sent as JSON.
func (ta *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ta.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

// signup creates a fresh account and returns its token.
func (ta *testApp) signup(t *testing.T, email, password, name string) string {
	t.Helper()
	w := ta.do(t, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email": email, "password": password, "name": name,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// adminToken logs in through the fixed-credential admin path.
func (ta *testApp) adminToken(t *testing.T) string {
	t.Helper()
	w := ta.do(t, http.MethodPost, "/api/admin/login", "", gin.H{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
