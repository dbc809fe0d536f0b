package webhook

import (
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"linear-discord-relay/internal/relay"
	pkgResponse "linear-discord-relay/pkg/response"
)

// HandleLinearWebhook processes one Linear webhook delivery end to end:
// source gate, credential extraction, payload classification, relay.
// @Summary     Relay a Linear webhook event
// @Description Validates a Linear webhook delivery and forwards a formatted notification to the configured Discord webhook.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       webhookId    query string true "Discord webhook id"
// @Param       webhookToken query string true "Discord webhook token"
// @Param       linearToken  query string true "Linear API token"
// @Success     200 {object} response.Resp "Notification sent or event skipped"
// @Failure     400 {object} response.Resp "Missing credentials or invalid payload fields"
// @Failure     403 {object} response.Resp "Source IP not allow-listed"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Enrichment or dispatch failure"
// @Router      /webhook/linear [POST]
func (h *Handler) HandleLinearWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	// Gate by forwarded IP, skipped entirely in development mode.
	if !h.devMode {
		if err := h.security.ValidateIPAddress(c.Request); err != nil {
			h.l.Warnf(ctx, "webhook: rejected source: %v", err)
			pkgResponse.Forbidden(c)
			return
		}
	}

	if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	var creds credentialsQuery
	if err := c.ShouldBindQuery(&creds); err != nil {
		pkgResponse.ValidationError(c, queryIssues(err))
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.InternalError(c)
		return
	}

	event, err := h.parser.Parse(body)
	if err != nil {
		var payloadErr *PayloadError
		switch {
		case errors.Is(err, ErrUnsupportedEvent):
			h.l.Infof(ctx, "webhook: unsupported event shape, acknowledging")
			pkgResponse.Skipped(c)
		case errors.As(err, &payloadErr):
			pkgResponse.ValidationError(c, payloadErr.Issues)
		default:
			h.l.Errorf(ctx, "webhook: parse failed: %v", err)
			pkgResponse.InternalError(c)
		}
		return
	}

	out, err := h.relayUC.Process(ctx, relay.ProcessInput{
		Event: *event,
		Credentials: relay.Credentials{
			WebhookID:    creds.WebhookID,
			WebhookToken: creds.WebhookToken,
			LinearToken:  creds.LinearToken,
		},
	})
	if err != nil {
		h.l.Errorf(ctx, "webhook: relay failed for %s/%s: %v", event.Entity, event.Action, err)
		pkgResponse.InternalError(c)
		return
	}

	if out.Skipped {
		h.l.Infof(ctx, "webhook: %s/%s skipped: %s", event.Entity, event.Action, out.Message)
		pkgResponse.Skipped(c)
		return
	}

	h.l.Infof(ctx, "webhook: relayed %s/%s", event.Entity, event.Action)
	pkgResponse.OK(c, out.Message)
}

// queryFieldNames maps struct fields back to their query parameter names
// for readable validation issues.
var queryFieldNames = map[string]string{
	"WebhookID":    "webhookId",
	"WebhookToken": "webhookToken",
	"LinearToken":  "linearToken",
}

// queryIssues flattens a binding error into one issue per field.
func queryIssues(err error) []string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return []string{err.Error()}
	}

	issues := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		name := queryFieldNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		issues = append(issues, fmt.Sprintf("%s is required", name))
	}
	return issues
}
