package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/mediabox/service/internal/logger"
	"github.com/mediabox/service/internal/middleware"
)

func TestLoggerRecordsStatus(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, logging.DEBUG)

	h := chiMiddleware.RequestID(middleware.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.Header.Set(chiMiddleware.RequestIDHeader, "req-42")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, buf.String(), "[INFO] request_id=req-42 POST /upload 201")
}

func TestLoggerDefaultsToOK(t *testing.T) {
	var buf bytes.Buffer
	h := middleware.Logger(logger.New(&buf, logging.DEBUG))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Contains(t, buf.String(), "GET /health 200")
}

func TestLoggerWarnsOnServerError(t *testing.T) {
	var buf bytes.Buffer
	h := middleware.Logger(logger.New(&buf, logging.DEBUG))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/files", nil))
	assert.Contains(t, buf.String(), "[WARNING]")
	assert.Contains(t, buf.String(), "GET /files 500")
}
