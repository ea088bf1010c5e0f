package shared

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/phonestore-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func TestRespondWithJSON(t *testing.T) {
	t.Run("writes body and headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		RespondWithJSON(rr, req, http.StatusOK, map[string]int{"n": 1})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.Equal(t, `{"n":1}`, rr.Body.String())
	})

	t.Run("encode failure", func(t *testing.T) {
		_, _ = logger.SetupTestLogger(t)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		RespondWithJSON(rr, req, http.StatusOK, math.Inf(1))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusInternalServerError, "Database query failed")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, `{"error":"Database query failed"}`, rr.Body.String())
}

func TestRespondWithMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	RespondWithMessage(rr, req, http.StatusNotFound, "Product not found")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, `{"message":"Product not found"}`, rr.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		logBuf, _ := logger.SetupTestLogger(t)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req = req.WithContext(SetTraceID(req.Context()))
		rr := httptest.NewRecorder()

		RespondWithErrorAndLog(rr, req, http.StatusInternalServerError, "Database query failed",
			errors.New("pq: SELECT * FROM products failed on 192.168.1.10:5432"))

		assert.Equal(t, `{"error":"Database query failed"}`, rr.Body.String())
		logger.AssertLogContains(t, logBuf, GetTraceID(req.Context()))
		logger.AssertLogContains(t, logBuf, `"level":"ERROR"`)
		logger.AssertLogNotContains(t, logBuf, "192.168.1.10")
		logger.AssertLogNotContains(t, logBuf, "FROM products")
	})

	t.Run("message body", func(t *testing.T) {
		_, _ = logger.SetupTestLogger(t)

		req := httptest.NewRequest(http.MethodGet, "/api/products/x", nil)
		rr := httptest.NewRecorder()

		RespondWithErrorAndLog(rr, req, http.StatusNotFound, "Product not found", nil, AsMessage())

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, `{"message":"Product not found"}`, rr.Body.String())
	})
}
