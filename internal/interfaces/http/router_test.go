package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/config"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/database"
	"github.com/shopfloor-inc/shopfloor/internal/infrastructure/migration"
	sharedConfig "github.com/shopfloor-inc/shopfloor/internal/shared/config"
	"github.com/shopfloor-inc/shopfloor/internal/shared/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dbCfg := &sharedConfig.DatabaseConfig{Driver: sharedConfig.DriverSQLite, Path: ":memory:"}
	gormDB, err := database.Open(dbCfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(gormDB) })

	log := logger.NewDiscard()
	require.NoError(t, migration.NewGooseStrategy(dbCfg.Driver, log).Migrate(gormDB))

	router, err := NewRouter(gormDB, log)
	require.NoError(t, err)
	router.SetupRoutes(&config.Config{})

	return router.GetEngine()
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestRouter_AssignmentLifecycle(t *testing.T) {
	engine := setupTestRouter(t)

	w := do(t, engine, http.MethodPost, "/mechanics/", `{"name":"Jo","email":"jo@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"name":"Jo","email":"jo@x.com","tickets":[]}`, w.Body.String())

	w = do(t, engine, http.MethodPost, "/service-tickets/", `{"description":"brake repair"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"description":"brake repair","status":"open","mechanics":[]}`, w.Body.String())

	w = do(t, engine, http.MethodPut, "/service-tickets/1/assign-mechanic/1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []any{float64(1)}, decode(t, w)["mechanics"])

	// assigning twice keeps a single assignment
	w = do(t, engine, http.MethodPut, "/service-tickets/1/assign-mechanic/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(1)}, decode(t, w)["mechanics"])

	w = do(t, engine, http.MethodGet, "/mechanics/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(1)}, decode(t, w)["tickets"])

	w = do(t, engine, http.MethodPut, "/service-tickets/1/remove-mechanic/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["mechanics"])

	// removing again is not an error
	w = do(t, engine, http.MethodPut, "/service-tickets/1/remove-mechanic/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodPut, "/service-tickets/1/assign-mechanic/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodDelete, "/mechanics/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Mechanic 1 is deleted successfully."}`, w.Body.String())

	w = do(t, engine, http.MethodGet, "/mechanics/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Mechanic not found."}`, w.Body.String())

	// the ticket survives and no longer lists the deleted mechanic
	w = do(t, engine, http.MethodGet, "/service-tickets/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, decode(t, w)["mechanics"])
}

func TestRouter_MechanicErrors(t *testing.T) {
	engine := setupTestRouter(t)

	w := do(t, engine, http.MethodPost, "/mechanics/", `{"name":"Jo"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"email":["Missing data for required field."]}`, w.Body.String())

	w = do(t, engine, http.MethodPost, "/mechanics/", `{"name":"Jo","email":"jo@x.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, engine, http.MethodPost, "/mechanics/", `{"name":"Al","email":"jo@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"email":["Email already registered."]}`, w.Body.String())

	w = do(t, engine, http.MethodPut, "/mechanics/1", `{"name":"Joanne"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, engine, http.MethodPut, "/mechanics/1", `{"name":"Joanne","email":"jo@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Joanne", decode(t, w)["name"])

	w = do(t, engine, http.MethodPut, "/mechanics/42", `{"name":"Joanne","email":"jo@x.com"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, engine, http.MethodPut, "/mechanics/99", `{}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Mechanic not found."}`, w.Body.String())

	w = do(t, engine, http.MethodPost, "/mechanics/", `{"name":"   ","email":"al@x.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"name":["Missing data for required field."]}`, w.Body.String())

	w = do(t, engine, http.MethodGet, "/mechanics/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, engine, http.MethodDelete, "/mechanics/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, engine, http.MethodGet, "/mechanics/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Joanne","email":"jo@x.com","tickets":[]}]`, w.Body.String())
}

func TestRouter_ServiceTicketErrors(t *testing.T) {
	engine := setupTestRouter(t)

	w := do(t, engine, http.MethodPut, "/service-tickets/1/assign-mechanic/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Service ticket not found."}`, w.Body.String())

	w = do(t, engine, http.MethodPost, "/service-tickets/", `{"description":"oil change","status":"waiting"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, engine, http.MethodPut, "/service-tickets/1/assign-mechanic/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Mechanic not found."}`, w.Body.String())

	w = do(t, engine, http.MethodPut, "/service-tickets/1", `{"description":"oil and filter"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"description":"oil and filter","status":"waiting","mechanics":[]}`, w.Body.String())

	w = do(t, engine, http.MethodPut, "/service-tickets/99", `{"status":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Service ticket not found."}`, w.Body.String())

	w = do(t, engine, http.MethodPost, "/service-tickets/", `{"description":" \t "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"description":["Missing data for required field."]}`, w.Body.String())

	w = do(t, engine, http.MethodPost, "/service-tickets/", `["not","an","object"]`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"_schema":["Invalid input type."]}`, w.Body.String())

	w = do(t, engine, http.MethodDelete, "/service-tickets/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Service ticket 1 is deleted successfully."}`, w.Body.String())

	w = do(t, engine, http.MethodGet, "/service-tickets/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_Health(t *testing.T) {
	engine := setupTestRouter(t)

	w := do(t, engine, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
