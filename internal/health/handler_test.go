package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediabox/service/internal/health"
)

func TestCheck(t *testing.T) {
	rr := httptest.NewRecorder()
	health.Check(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"healthy","message":"API is running"}`, rr.Body.String())
}
