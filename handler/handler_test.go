package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/require"

	"finance-assistant/internal/domain"
	"finance-assistant/internal/usecase"
)

type stubUseCase struct {
	out usecase.RespondOutput
	err error
	in  usecase.RespondInput
}

func (s *stubUseCase) Respond(_ context.Context, in usecase.RespondInput) (usecase.RespondOutput, error) {
	s.in = in
	return s.out, s.err
}

func makeEvent(body string) events.APIGatewayProxyRequest {
	return events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/chat",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func parseBody[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func mustNewHandler(t *testing.T, uc ChatUseCase) *Handler {
	t.Helper()
	h, err := NewHandler(uc, nil)
	require.NoError(t, err)
	return h
}

func TestNewHandler_ValidatesDependency(t *testing.T) {
	_, err := NewHandler(nil, nil)
	require.Error(t, err)
}

func TestHandle_HappyPath(t *testing.T) {
	uc := &stubUseCase{out: usecase.RespondOutput{Reply: "Hi there!", SessionID: "s-1", Intent: domain.IntentGreeting}}
	h := mustNewHandler(t, uc)

	resp, err := h.Handle(context.Background(), makeEvent(`{"message":"hello","sessionId":"s-1","persona":"expert"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, usecase.RespondInput{Message: "hello", SessionID: "s-1", Persona: "expert"}, uc.in)

	out := parseBody[chatResponse](t, resp.Body)
	require.Equal(t, "Hi there!", out.Reply)
	require.Equal(t, "s-1", out.SessionID)
	require.Equal(t, "greeting", out.Intent)
	require.NotEmpty(t, resp.Headers["X-Correlation-Id"])
	require.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &stubUseCase{}
	h := mustNewHandler(t, uc)

	resp, err := h.Handle(context.Background(), makeEvent(`not-json`))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := parseBody[errorResponse](t, resp.Body)
	require.Equal(t, string(usecase.ErrorInvalidInput), out.Error)
	require.Empty(t, uc.in.Message, "use case must not be called")
}

func TestHandle_RejectsOtherMethods(t *testing.T) {
	h := mustNewHandler(t, &stubUseCase{})
	event := makeEvent(`{"message":"hello"}`)
	event.HTTPMethod = http.MethodGet

	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	require.Equal(t, codeMethodNotAllowed, parseBody[errorResponse](t, resp.Body).Error)
}

func TestHandle_MapsUseCaseErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{name: "invalid input", err: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: usecase.ReasonEmptyMessage}, status: http.StatusBadRequest, code: string(usecase.ErrorInvalidInput), message: "empty_message"},
		{name: "internal", err: &usecase.Error{Code: usecase.ErrorInternal, Reason: usecase.ReasonSession, Err: errors.New("throttled")}, status: http.StatusInternalServerError, code: string(usecase.ErrorInternal), message: "internal error"},
		{name: "unknown code", err: &usecase.Error{Code: "SOMETHING_NEW"}, status: http.StatusInternalServerError, code: string(usecase.ErrorInternal), message: "internal error"},
		{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, code: string(usecase.ErrorInternal), message: "internal error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := mustNewHandler(t, &stubUseCase{err: tc.err})

			resp, err := h.Handle(context.Background(), makeEvent(`{"message":"hello"}`))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)

			out := parseBody[errorResponse](t, resp.Body)
			require.Equal(t, tc.code, out.Error)
			require.Equal(t, tc.message, out.Message)
			require.NotContains(t, resp.Body, "throttled")
		})
	}
}

func TestHandle_UsesProvidedCorrelationID_CaseInsensitive(t *testing.T) {
	uc := &stubUseCase{out: usecase.RespondOutput{Reply: "ok", SessionID: "s-1"}}
	h := mustNewHandler(t, uc)

	event := makeEvent(`{"message":"hello"}`)
	event.Headers["x-correlation-id"] = "corr-123"
	resp, err := h.Handle(context.Background(), event)
	require.NoError(t, err)
	require.Equal(t, "corr-123", resp.Headers["X-Correlation-Id"])
}
