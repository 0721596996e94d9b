package controller

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	Greeting(ctx *fiber.Ctx) error
	Mock(ctx *fiber.Ctx) error
	Prompt(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	ClearHistory(ctx *fiber.Ctx) error
}

type promptController struct {
	service service.IPromptService
}

func NewPromptController(service service.IPromptService) IPromptController {
	return &promptController{service: service}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/buffer-memory")
	h.Get("", c.Greeting)
	h.Post("/mock", c.Mock)
	h.Post("/prompt", c.Prompt)
	h.Get("/session/:session_id", c.GetHistory)
	h.Delete("/session/:session_id", c.ClearHistory)
}

func (c *promptController) Greeting(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.GreetingResponse{Message: "Default response from buffer memory"})
}

func (c *promptController) Mock(ctx *fiber.Ctx) error {
	req, err := serverutils.DecodeBody[dto.PromptRequest](ctx)
	if err != nil {
		return ctx.JSON(malformedPrompt(err))
	}
	return ctx.JSON(c.service.Mock(req))
}

func (c *promptController) Prompt(ctx *fiber.Ctx) error {
	req, err := serverutils.DecodeBody[dto.PromptRequest](ctx)
	if err != nil {
		return ctx.JSON(malformedPrompt(err))
	}
	return ctx.JSON(c.service.Prompt(ctx.UserContext(), req))
}

func (c *promptController) GetHistory(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.GetHistory(ctx.UserContext(), ctx.Params("session_id")))
}

func (c *promptController) ClearHistory(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.ClearHistory(ctx.UserContext(), ctx.Params("session_id")))
}

func malformedPrompt(err error) *dto.PromptResponse {
	res := &dto.PromptResponse{}
	res.SetInvalid(err.Error())
	return res
}
