package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"app error", NewAppError(fiber.StatusBadRequest, "Job title is required", nil, nil), 400, "Job title is required"},
		{"hidden 5xx", NewAppError(fiber.StatusInternalServerError, "db password leaked", nil, nil), 500, "internal server error"},
		{"exposed failure", NewFailureError(errors.New("pdf broken")), 500, "Something went wrong: pdf broken"},
		{"fiber 404", fiber.ErrNotFound, 404, "Not Found"},
		{"plain error", errors.New("boom"), 500, "internal server error"},
		{"empty message", NewAppError(fiber.StatusRequestEntityTooLarge, "", nil, nil), 413, "request entity too large"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, msg, _ := normalizeError(c.err)
			assert.Equal(t, c.status, status)
			assert.Equal(t, c.message, msg)
		})
	}
}

func TestErrorMiddleware_RecoversPanics(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/panic", func(fiber.Ctx) error { panic("nil map") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "internal server error", body.Message)
}

func TestAccessLog_SetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewAccessLogMiddleware(nil).Middleware())
	app.Get("/", func(c fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewAppError(400, "bad", nil, cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bad: cause", err.Error())
}
