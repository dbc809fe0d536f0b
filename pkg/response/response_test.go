package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"linear-discord-relay/pkg/response"
)

func TestResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	decode := func(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
		t.Helper()
		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		return resp
	}

	t.Run("OK", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.OK(c, "Notification sent")

		if w.Code != http.StatusOK {
			t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
		}
		resp := decode(t, w)
		if !resp.Success {
			t.Errorf("expected success true")
		}
		if resp.Message != "Notification sent" {
			t.Errorf("unexpected message: %v", resp.Message)
		}
		if resp.Error != nil {
			t.Errorf("expected nil error, got %v", resp.Error)
		}
	})

	t.Run("Skipped", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Skipped(c)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		resp := decode(t, w)
		if !resp.Success || resp.Message != response.MessageSkipped {
			t.Errorf("unexpected skipped envelope: %+v", resp)
		}
	})

	t.Run("ValidationError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.ValidationError(c, []string{"webhookId is required", "linearToken is required"})

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		resp := decode(t, w)
		if resp.Success {
			t.Errorf("expected success false")
		}
		issues, ok := resp.Error.([]interface{})
		if !ok || len(issues) != 2 {
			t.Errorf("expected 2 field issues, got %v", resp.Error)
		}
	})

	t.Run("Forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.Forbidden(c)

		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
		if decode(t, w).Success {
			t.Errorf("expected success false")
		}
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.MethodNotAllowed(c)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", w.Code)
		}
	})

	t.Run("InternalError", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		response.InternalError(c)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
		resp := decode(t, w)
		if resp.Error != response.DefaultErrorMessage {
			t.Errorf("expected generic error message, got %v", resp.Error)
		}
	})
}
