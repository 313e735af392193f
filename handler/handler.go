// Package handler exposes the chat use case as an API Gateway proxy Lambda.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"

	"finance-assistant/internal/usecase"
)

const (
	correlationHeader    = "X-Correlation-Id"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

type ChatUseCase interface {
	Respond(ctx context.Context, in usecase.RespondInput) (usecase.RespondOutput, error)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId"`
	Persona   string `json:"persona,omitempty"`
}

type chatResponse struct {
	Reply     string `json:"reply"`
	SessionID string `json:"sessionId"`
	Intent    string `json:"intent"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Handler struct {
	uc     ChatUseCase
	logger *slog.Logger
}

func NewHandler(uc ChatUseCase, logger *slog.Logger) (*Handler, error) {
	if uc == nil {
		return nil, errors.New("handler: use case must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{uc: uc, logger: logger}, nil
}

// Handle serves POST /chat.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	logger := h.logger.With("correlation_id", correlationID)

	if req.HTTPMethod != "" && req.HTTPMethod != http.MethodPost {
		return respond(http.StatusMethodNotAllowed, correlationID, errorResponse{
			Error:   codeMethodNotAllowed,
			Message: "only POST is supported",
		}), nil
	}

	var body chatRequest
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		logger.Info("rejected malformed request body", "err", err)
		return respond(http.StatusBadRequest, correlationID, errorResponse{
			Error:   string(usecase.ErrorInvalidInput),
			Message: "request body must be a JSON object",
		}), nil
	}

	out, err := h.uc.Respond(ctx, usecase.RespondInput{
		Message:   body.Message,
		SessionID: body.SessionID,
		Persona:   body.Persona,
	})
	if err != nil {
		status, resp := mapError(err)
		if status >= http.StatusInternalServerError {
			logger.Error("chat request failed", "err", err)
		} else {
			logger.Info("chat request rejected", "err", err)
		}
		return respond(status, correlationID, resp), nil
	}

	logger.Info("chat request served", "session_id", out.SessionID, "intent", out.Intent)
	return respond(http.StatusOK, correlationID, chatResponse{
		Reply:     out.Reply,
		SessionID: out.SessionID,
		Intent:    string(out.Intent),
	}), nil
}

func mapError(err error) (int, errorResponse) {
	var ucErr *usecase.Error
	if !errors.As(err, &ucErr) {
		return http.StatusInternalServerError, errorResponse{
			Error:   string(usecase.ErrorInternal),
			Message: "internal error",
		}
	}
	switch ucErr.Code {
	case usecase.ErrorInvalidInput:
		return http.StatusBadRequest, errorResponse{Error: string(ucErr.Code), Message: ucErr.Reason}
	default:
		return http.StatusInternalServerError, errorResponse{Error: string(usecase.ErrorInternal), Message: "internal error"}
	}
}

func respond(status int, correlationID string, body any) events.APIGatewayProxyResponse {
	raw, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		raw = []byte(`{"error":"INTERNAL_ERROR","message":"internal error"}`)
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(raw),
	}
}

// headerValue looks up a header case-insensitively; API Gateway forwards
// client casing as-is.
func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
