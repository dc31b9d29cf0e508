package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmgilman/go/httperrors/config"
	"github.com/jmgilman/go/httperrors/errors"
	"github.com/jmgilman/go/httperrors/logging/loggingtest"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg config.Config) (*httptest.Server, *loggingtest.Recorder) {
	t.Helper()

	rec := loggingtest.NewRecorder()
	a, err := newApp(cfg, rec)
	require.NoError(t, err)

	srv := httptest.NewServer(a.routes())
	t.Cleanup(srv.Close)
	return srv, rec
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var sb strings.Builder
	_, err = io.Copy(&sb, resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, sb.String()
}

func TestGetOrder_NotFound(t *testing.T) {
	srv, rec := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodGet, "/orders/42", "")

	require.Equal(t, http.StatusNotFound, status)
	require.JSONEq(t, `{"errorType":"Server","error":{"message":"Not Found","code":"NOT_FOUND","name":"BaseError"}}`, body)

	entries := rec.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, errors.SeverityInfo, entries[0].Severity)
	require.Equal(t, `order "42" not found`, entries[0].Message)
}

func TestGetOrder_Conflict(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodGet, "/orders/locked", "")

	require.Equal(t, http.StatusConflict, status)
	require.Contains(t, body, `"code":"CONFLICT"`)
	require.NotContains(t, body, "checkout")
}

func TestGetOrder_UnmappedCode(t *testing.T) {
	srv, rec := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodGet, "/orders/legacy", "")

	require.Equal(t, http.StatusInternalServerError, status)
	require.JSONEq(t, `{"errorType":"Server","error":{"message":"Internal Server Error","code":"E_LEGACY_ORDER","name":"BaseError"}}`, body)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, errors.SeverityWarn, entries[0].Severity)
	require.Equal(t, "no HTTP mapping for error code", entries[0].Message)
}

func TestGetOrder_MappingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	require.NoError(t, os.WriteFile(path, []byte("E_LEGACY_ORDER:\n  statusCode: 410\n  responseMessage: Order archived\n"), 0o600))

	srv, _ := newTestServer(t, config.Config{MappingFile: path})

	status, body := do(t, srv, http.MethodGet, "/orders/legacy", "")

	require.Equal(t, http.StatusGone, status)
	require.Contains(t, body, `"message":"Order archived"`)
}

func TestGetOrder_Unknown(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodGet, "/orders/broken", "")

	require.Equal(t, http.StatusInternalServerError, status)
	require.JSONEq(t, `{"errorType":"Server","error":{"message":"An Expected error occurred.","code":"UNKNOWN_ERROR","name":"unknown"}}`, body)
}

func TestCreateOrder(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodPost, "/orders", `{"sku":"ABC-1234","quantity":2}`)

	require.Equal(t, http.StatusCreated, status)
	require.JSONEq(t, `{"sku":"ABC-1234","quantity":2,"priority":"normal"}`, body)
}

func TestCreateOrder_Invalid(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodPost, "/orders", `{"sku":"abc","quantity":0}`)

	require.Equal(t, http.StatusBadRequest, status)
	require.Contains(t, body, `"errorType":"InputValidation"`)
	require.Contains(t, body, `"field":"sku"`)
	require.Contains(t, body, `"field":"quantity"`)
}

func TestRoutes_Fallbacks(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{})

	status, body := do(t, srv, http.MethodGet, "/panic", "")
	require.Equal(t, http.StatusInternalServerError, status)
	require.Contains(t, body, `"code":"UNKNOWN_ERROR"`)

	status, body = do(t, srv, http.MethodGet, "/nowhere", "")
	require.Equal(t, http.StatusNotFound, status)
	require.Contains(t, body, `"code":"ROUTE_NOT_FOUND"`)

	status, body = do(t, srv, http.MethodDelete, "/healthz", "")
	require.Equal(t, http.StatusMethodNotAllowed, status)
	require.Contains(t, body, `"code":"METHOD_NOT_ALLOWED"`)

	status, _ = do(t, srv, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, status)
}

func TestNewApp_BadMappingFile(t *testing.T) {
	_, err := newApp(config.Config{MappingFile: filepath.Join(t.TempDir(), "missing.yaml")}, loggingtest.NewRecorder())
	require.Error(t, err)
	require.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}
