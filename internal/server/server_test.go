package server_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dealerstack/dealertax-api/internal/config"
	"github.com/dealerstack/dealertax-api/internal/logger"
	"github.com/dealerstack/dealertax-api/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

var (
	serverOnce sync.Once
	testServer *server.Server
)

// sharedServer builds the server once per process: metrics registration in
// the default prometheus registry cannot run twice.
func sharedServer() *server.Server {
	serverOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		logger.InitLogger("test")
		testServer = server.New(config.Load())
	})
	return testServer
}

func get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	sharedServer().Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthRoute(t *testing.T) {
	w := get("/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestMetricsRoute(t *testing.T) {
	assert.Equal(t, http.StatusOK, get("/metrics").Code)
}

func TestSwaggerSpecServed(t *testing.T) {
	w := get("/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/tax/calculate"`)
}
