package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
}

func newDecodeApp() *fiber.App {
	app := fiber.New()
	app.Post("/", func(ctx *fiber.Ctx) error {
		req, err := DecodeBody[sample](ctx)
		if err != nil {
			return ctx.SendString("error:" + err.Error())
		}
		if req == nil {
			return ctx.SendString("nil")
		}
		return ctx.SendString("name:" + req.Name)
	})
	return app
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty", body: "", want: "nil"},
		{name: "whitespace", body: "  \n", want: "nil"},
		{name: "json null", body: "null", want: "nil"},
		{name: "object", body: `{"name":"ada"}`, want: "name:ada"},
		{name: "malformed", body: `{"name":`, want: "error:request body is malformed"},
	}

	app := newDecodeApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			resp, err := app.Test(req)
			require.NoError(t, err)

			got, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware(logger.NewNopLogger()))
	app.Get("/panic", func(*fiber.Ctx) error { panic("boom") })
	app.Get("/teapot", func(*fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	tests := []struct {
		path    string
		code    int
		message string
	}{
		{path: "/panic", code: fiber.StatusInternalServerError, message: "internal failure"},
		{path: "/teapot", code: fiber.StatusTeapot, message: "short and stout"},
		{path: "/missing", code: fiber.StatusNotFound, message: "Cannot GET /missing"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.code, resp.StatusCode)

			var body BaseResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
