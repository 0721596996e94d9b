package controller

import (
	"ai-assistant-be/internal/dto"
	"ai-assistant-be/internal/pkg/serverutils"
	"ai-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAiMessageController interface {
	RegisterRoutes(r fiber.Router)
	Greeting(ctx *fiber.Ctx) error
	Mock(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	GetBySession(ctx *fiber.Ctx) error
}

type aiMessageController struct {
	service service.IAiMessageService
}

func NewAiMessageController(service service.IAiMessageService) IAiMessageController {
	return &aiMessageController{service: service}
}

func (c *aiMessageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/message")
	h.Get("", c.Greeting)
	h.Post("", c.Create)
	h.Post("/mock", c.Mock)
	h.Get("/session/:session_id", c.GetBySession)
	h.Get("/:message_id", c.Show)
}

func (c *aiMessageController) Greeting(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.GreetingResponse{Message: "Default response from ai message"})
}

func (c *aiMessageController) Mock(ctx *fiber.Ctx) error {
	req, err := serverutils.DecodeBody[dto.AiMessageRequest](ctx)
	if err != nil {
		return ctx.JSON(invalidMessage(err.Error()))
	}
	return ctx.JSON(c.service.Mock(req))
}

func (c *aiMessageController) Create(ctx *fiber.Ctx) error {
	req, err := serverutils.DecodeBody[dto.AiMessageRequest](ctx)
	if err != nil {
		return ctx.JSON(invalidMessage(err.Error()))
	}
	return ctx.JSON(c.service.Create(ctx.UserContext(), req))
}

func (c *aiMessageController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("message_id"))
	if err != nil {
		return ctx.JSON(invalidMessage("message_id is not a valid uuid"))
	}
	return ctx.JSON(c.service.GetById(ctx.UserContext(), id))
}

func (c *aiMessageController) GetBySession(ctx *fiber.Ctx) error {
	sessionId, err := uuid.Parse(ctx.Params("session_id"))
	if err != nil {
		res := &dto.AiMessageListResponse{Items: []*dto.AiMessageItem{}}
		res.SetInvalid("session_id is not a valid uuid")
		return ctx.JSON(res)
	}

	limit := ctx.QueryInt("limit", 0)
	offset := ctx.QueryInt("offset", 0)

	return ctx.JSON(c.service.GetBySession(ctx.UserContext(), sessionId, limit, offset))
}

func invalidMessage(reason string) *dto.AiMessageResponse {
	res := &dto.AiMessageResponse{}
	res.SetInvalid(reason)
	return res
}
