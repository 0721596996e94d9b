package serverutils

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var ErrMalformedBody = errors.New("request body is malformed")

// DecodeBody parses a JSON body into a new T. An empty body yields nil so
// the service can report the request as absent.
func DecodeBody[T any](ctx *fiber.Ctx) (*T, error) {
	body := bytes.TrimSpace(ctx.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}

	var req T
	if err := ctx.App().Config().JSONDecoder(body, &req); err != nil {
		return nil, ErrMalformedBody
	}
	return &req, nil
}
