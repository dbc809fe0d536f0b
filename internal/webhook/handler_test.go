package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"linear-discord-relay/internal/relay"
	pkgLog "linear-discord-relay/pkg/log"
	pkgResponse "linear-discord-relay/pkg/response"
)

// fakeUseCase records Process calls and returns a canned result.
type fakeUseCase struct {
	out    relay.ProcessOutput
	err    error
	inputs []relay.ProcessInput
}

func (f *fakeUseCase) Process(_ context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	f.inputs = append(f.inputs, input)
	return f.out, f.err
}

func newTestRouter(uc relay.UseCase, devMode bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(uc, SecurityConfig{
		AllowedIPs:      []string{"35.231.147.226", "35.243.134.228"},
		RateLimitPerMin: 6000,
	}, devMode, pkgLog.NewNop())

	r := gin.New()
	r.POST("/webhook/linear", h.HandleLinearWebhook)
	return r
}

const credQuery = "webhookId=hook-id&webhookToken=hook-token&linearToken=lin_api_test"

func doRequest(r *gin.Engine, query, body, sourceIP string) *httptest.ResponseRecorder {
	url := "/webhook/linear"
	if query != "" {
		url += "?" + query
	}
	req := httptest.NewRequest(http.MethodPost, url, strings.NewReader(body))
	if sourceIP != "" {
		req.Header.Set("X-Forwarded-For", sourceIP)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) pkgResponse.Resp {
	t.Helper()
	var resp pkgResponse.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return resp
}

func TestHandleLinearWebhook(t *testing.T) {
	t.Run("Untrusted IP Rejected", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc, false)

		w := doRequest(r, credQuery, issueCreateBody, "203.0.113.9")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if resp := decodeEnvelope(t, w); resp.Success {
			t.Errorf("expected success false")
		}
		if len(uc.inputs) != 0 {
			t.Errorf("usecase must not run for rejected sources")
		}
	})

	t.Run("Development Mode Skips IP Check", func(t *testing.T) {
		uc := &fakeUseCase{out: relay.ProcessOutput{Message: "Notification sent"}}
		r := newTestRouter(uc, true)

		w := doRequest(r, credQuery, issueCreateBody, "203.0.113.9")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 in dev mode, got %d: %s", w.Code, w.Body.String())
		}
		if len(uc.inputs) != 1 {
			t.Errorf("expected usecase to run")
		}
	})

	t.Run("Missing Credentials Lists Every Field", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc, false)

		w := doRequest(r, "", issueCreateBody, "35.231.147.226")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		issues, ok := resp.Error.([]interface{})
		if !ok || len(issues) != 3 {
			t.Errorf("expected 3 field issues, got %v", resp.Error)
		}
	})

	t.Run("Partial Credentials Still Rejected", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc, false)

		w := doRequest(r, "webhookId=hook-id", issueCreateBody, "35.231.147.226")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		issues, _ := resp.Error.([]interface{})
		if len(issues) != 2 {
			t.Errorf("expected 2 field issues, got %v", resp.Error)
		}
	})

	t.Run("Unsupported Event Acknowledged As Skipped", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc, false)

		body := `{"action":"remove","type":"Issue","url":"x","data":{}}`
		w := doRequest(r, credQuery, body, "35.231.147.226")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if !resp.Success || resp.Message != pkgResponse.MessageSkipped {
			t.Errorf("expected skipped envelope, got %+v", resp)
		}
		if resp.Error != nil {
			t.Errorf("expected nil error, got %v", resp.Error)
		}
		if len(uc.inputs) != 0 {
			t.Errorf("skipped events must not reach the usecase")
		}
	})

	t.Run("Invalid Payload Fields", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc, false)

		body := `{"action":"create","type":"Issue","data":{}}`
		w := doRequest(r, credQuery, body, "35.231.147.226")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Relay Failure Returns Generic 500", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("linear API error 401: token expired")}
		r := newTestRouter(uc, false)

		w := doRequest(r, credQuery, issueCreateBody, "35.231.147.226")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Error != pkgResponse.DefaultErrorMessage {
			t.Errorf("internal failure must not leak details, got %v", resp.Error)
		}
	})

	t.Run("Skipped Recipe", func(t *testing.T) {
		uc := &fakeUseCase{out: relay.ProcessOutput{Skipped: true, Message: "update does not touch status"}}
		r := newTestRouter(uc, false)

		w := doRequest(r, credQuery, issueCreateBody, "35.231.147.226")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if resp := decodeEnvelope(t, w); resp.Message != pkgResponse.MessageSkipped {
			t.Errorf("expected skipped message, got %v", resp.Message)
		}
	})

	t.Run("Successful Relay", func(t *testing.T) {
		uc := &fakeUseCase{out: relay.ProcessOutput{Message: "Notification sent"}}
		r := newTestRouter(uc, false)

		w := doRequest(r, credQuery, issueCreateBody, "35.231.147.226")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		resp := decodeEnvelope(t, w)
		if !resp.Success || resp.Message != "Notification sent" {
			t.Errorf("unexpected envelope: %+v", resp)
		}

		input := uc.inputs[0]
		if input.Credentials.WebhookID != "hook-id" || input.Credentials.LinearToken != "lin_api_test" {
			t.Errorf("credentials not threaded through: %+v", input.Credentials)
		}
		if input.Event.Issue == nil || input.Event.Issue.CreatorID != "creator-1" {
			t.Errorf("event not threaded through: %+v", input.Event)
		}
	})

	t.Run("Rate Limit Exceeded", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		h := NewHandler(&fakeUseCase{}, SecurityConfig{
			AllowedIPs:      []string{"35.231.147.226"},
			RateLimitPerMin: 10, // burst of 1
		}, false, pkgLog.NewNop())
		r := gin.New()
		r.POST("/webhook/linear", h.HandleLinearWebhook)

		first := doRequest(r, credQuery, issueCreateBody, "35.231.147.226")
		if first.Code == http.StatusTooManyRequests {
			t.Fatalf("first request must not be limited")
		}
		second := doRequest(r, credQuery, issueCreateBody, "35.231.147.226")
		if second.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", second.Code)
		}
	})
}
