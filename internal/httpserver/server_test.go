package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"linear-discord-relay/internal/middleware"
	pkgLog "linear-discord-relay/pkg/log"
	pkgResponse "linear-discord-relay/pkg/response"
)

type stubWebhookHandler struct{ called bool }

func (s *stubWebhookHandler) HandleLinearWebhook(c *gin.Context) {
	s.called = true
	pkgResponse.OK(c, "Notification sent")
}

func newTestServer(t *testing.T) (*HTTPServer, *stubWebhookHandler) {
	t.Helper()
	stub := &stubWebhookHandler{}
	srv, err := New(pkgLog.NewNop(), Config{
		Logger:         pkgLog.NewNop(),
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "development",
		WebhookHandler: stub,
	})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("failed to map handlers: %v", err)
	}
	return srv, stub
}

func TestMethodGate(t *testing.T) {
	srv, stub := newTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/webhook/linear", nil)
		srv.gin.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", method, w.Code)
		}
		var resp pkgResponse.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: unmarshal envelope: %v", method, err)
		}
		if resp.Success {
			t.Errorf("%s: expected success false", method)
		}
	}

	if stub.called {
		t.Errorf("webhook handler must not run for non-POST methods")
	}
}

func TestWebhookRouteDispatches(t *testing.T) {
	srv, stub := newTestServer(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/linear", nil)
	srv.gin.ServeHTTP(w, req)

	if !stub.called {
		t.Errorf("expected webhook handler to be called")
	}
	if got := w.Header().Get(middleware.HeaderRequestID); got == "" {
		t.Errorf("expected request id header on response")
	}
}

func TestHealthRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		srv.gin.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

func TestValidation(t *testing.T) {
	_, err := New(pkgLog.NewNop(), Config{
		Logger: pkgLog.NewNop(),
		Mode:   gin.TestMode,
		Port:   8080,
	})
	if err == nil {
		t.Errorf("expected error when webhook handler is missing")
	}
}
