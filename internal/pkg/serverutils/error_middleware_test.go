package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"restaurant-pos-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(nopLogger{}))

	app.Get("/validation", func(ctx *fiber.Ctx) error {
		return apperror.Validation("name must be at least 6 characters")
	})
	app.Get("/not-found", func(ctx *fiber.Ctx) error {
		return apperror.NotFound("product not found")
	})
	app.Get("/conflict", func(ctx *fiber.Ctx) error {
		return apperror.Conflict("this table is already open")
	})
	app.Get("/boom", func(ctx *fiber.Ctx) error {
		return errors.New("connection reset")
	})
	app.Get("/things/:id", func(ctx *fiber.Ctx) error {
		if _, err := ParseIDParam(ctx, "id"); err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	return app
}

func TestErrorMiddlewareStatusMapping(t *testing.T) {
	app := newTestApp()

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/validation", fiber.StatusBadRequest, "name must be at least 6 characters"},
		{"/not-found", fiber.StatusNotFound, "product not found"},
		{"/conflict", fiber.StatusConflict, "this table is already open"},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, tc.message, body.Message)
	}
}

func TestErrorMiddlewareUnexpectedError(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// internals are never leaked, only a correlation id
	assert.Equal(t, "internal server error", body.Message)
	assert.NotEmpty(t, body.ErrorId)
}

func TestNonNumericIDParam(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/things/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "id must be a number", body.Message)

	resp, err = app.Test(httptest.NewRequest("GET", "/things/7", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
