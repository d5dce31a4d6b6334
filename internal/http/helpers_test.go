package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"roomdesk-backend-go/internal/config"
	"roomdesk-backend-go/internal/services"
	"roomdesk-backend-go/internal/store"
)

func newTestServer(st store.Store) *Server {
	cfg := config.Config{
		JWTSecret:        "test-secret",
		JWTIssuer:        "roomdesk-test",
		AccessTTLSeconds: 3600,
		ActiveWindowDays: 7,
	}
	return NewServer(st, cfg, services.NewSignageHub())
}

// doJSON runs a request through the full router so URL params and routing are
// exercised, and returns the recorder.
func doJSON(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func newAuthedRequest(t *testing.T, method, target, token string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, &bytes.Buffer{})
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), dest))
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	decodeBody(t, rr, &resp)
	return resp.Error
}
