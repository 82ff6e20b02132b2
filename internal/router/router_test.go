package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-credential-auth/config"
	"github.com/oksasatya/go-credential-auth/internal/container"
	"github.com/oksasatya/go-credential-auth/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memDB answers the two statements the user repository issues.
type memDB struct {
	mu    sync.Mutex
	users map[string]string
}

type memRow struct {
	email, hash string
	found       bool
}

func (r memRow) Scan(dest ...any) error {
	if !r.found {
		return pgx.ErrNoRows
	}
	*dest[0].(*string) = "id-" + r.email
	*dest[1].(*string) = r.email
	*dest[2].(*string) = r.hash
	*dest[3].(*time.Time) = time.Now()
	return nil
}

func (m *memDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	email := args[0].(string)
	if _, ok := m.users[email]; ok {
		return pgconn.NewCommandTag("INSERT 0 0"), nil
	}
	m.users[email] = args[1].(string)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (m *memDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()
	email := args[0].(string)
	hash, ok := m.users[email]
	return memRow{email: email, hash: hash, found: ok}
}

func (m *memDB) Ping(context.Context) error { return nil }

func newTestEngine(t *testing.T, debug bool) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		AppName:             "credential-auth",
		AuthSecret:          "test-secret",
		TokenTTL:            time.Hour,
		PasswordHashCost:    config.MinPasswordHashCost,
		DebugMetricsEnabled: debug,
	}
	c, err := container.New(cfg, helpers.NewNopLogger(), &memDB{users: map[string]string{}})
	require.NoError(t, err)

	engine := gin.New()
	reg := NewRegistry(engine)
	reg.Use(func(c *gin.Context) {
		c.Header("X-Test-Middleware", "1")
		c.Next()
	})
	InitModules(reg, c)
	reg.RegisterAll()
	return engine
}

func post(engine http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestInitModules_RegisterThenLogin(t *testing.T) {
	engine := newTestEngine(t, false)

	w := post(engine, "/api/register", `{"email":"a@x.com","password":"hunter2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Test-Middleware"))

	w = post(engine, "/api/register", `{"email":"a@x.com","password":"anything"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = post(engine, "/api/login", `{"email":"a@x.com","password":"hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	issuer, err := helpers.NewJWTIssuer("test-secret", time.Hour, "credential-auth")
	require.NoError(t, err)
	claims, err := issuer.Parse(body.Data.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	wrong := post(engine, "/api/login", `{"email":"a@x.com","password":"wrong"}`)
	unknown := post(engine, "/api/login", `{"email":"nobody@x.com","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
}

func TestInitModules_Health(t *testing.T) {
	engine := newTestEngine(t, false)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitModules_DebugVarsToggle(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		engine := newTestEngine(t, enabled)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/debug/vars", nil))
		if enabled {
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), `"auth"`)
		} else {
			assert.Equal(t, http.StatusNotFound, w.Code)
		}
	}
}

func TestRegistry_BasePathAndIdempotentRegister(t *testing.T) {
	engine := gin.New()
	reg := NewRegistryWithBase(engine, "/v1")
	reg.Add(ModuleFunc(func(rg *gin.RouterGroup) {
		rg.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	}))
	reg.RegisterAll()
	assert.NotPanics(t, reg.RegisterAll)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
