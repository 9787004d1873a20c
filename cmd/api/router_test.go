package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediabox/service/internal/logger"
	"github.com/mediabox/service/internal/media"
	"github.com/mediabox/service/internal/storage"
)

// downStore behaves like a backend that cannot be reached.
type downStore struct{}

func (downStore) Upload(context.Context, string, io.Reader, int64, string) error {
	return errors.New("connection refused")
}

func (downStore) List(context.Context, string) ([]storage.Object, error) {
	return nil, errors.New("connection refused")
}

func (downStore) SignedURL(context.Context, string, time.Duration) (string, error) {
	return "", errors.New("connection refused")
}

// emptyStore is a reachable backend with nothing in it.
type emptyStore struct{ downStore }

func (emptyStore) List(context.Context, string) ([]storage.Object, error) {
	return nil, nil
}

func testRouter(store storage.Storage) http.Handler {
	log := logger.Discard()
	svc := media.NewService(store, media.Options{MaxFileSize: 100 << 20, SignedURLTTL: time.Hour}, log)
	return newRouter(log, media.NewHandler(svc, log))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHealthIgnoresBackend(t *testing.T) {
	rr := serve(testRouter(downStore{}), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy","message":"API is running"}`, rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("Content-Type"))
}

func TestFilesOnEmptyBackend(t *testing.T) {
	rr := serve(testRouter(emptyStore{}), httptest.NewRequest(http.MethodGet, "/files", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"files":[]}`, rr.Body.String())
}

func TestFilesBackendDown(t *testing.T) {
	rr := serve(testRouter(downStore{}), httptest.NewRequest(http.MethodGet, "/files", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to list files"}`, rr.Body.String())
}

func TestUploadBackendDown(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "a.jpg")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("jpeg"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rr := serve(testRouter(downStore{}), req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Failed to upload file"}`, rr.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	rr := serve(testRouter(emptyStore{}), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"resource not found"}`, rr.Body.String())
}

func TestWrongMethod(t *testing.T) {
	rr := serve(testRouter(emptyStore{}), httptest.NewRequest(http.MethodGet, "/upload", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"method not allowed"}`, rr.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/upload", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rr := serve(testRouter(emptyStore{}), req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDoc(t *testing.T) {
	rr := serve(testRouter(emptyStore{}), httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"title": "MediaBox API"`)
	assert.Contains(t, rr.Body.String(), `"/upload"`)
}
