package controller

import (
	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/serverutils"
	"disaster-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
}

// chatController exposes the public Q&A surface: embedded chat widgets
// call it without authentication.
type chatController struct {
	chatService   service.IChatService
	answerService service.IAnswerService
}

func NewChatController(chatService service.IChatService, answerService service.IAnswerService) IChatController {
	return &chatController{
		chatService:   chatService,
		answerService: answerService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Chat)
	h.Post("ask", c.Ask)
}

// Chat handles one multi-turn conversation message.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Chat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

// Ask answers a single question; without a chatbot_id the latest trained
// tenant answers (the daily warning corpus in default deployments).
func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.answerService.Ask(ctx.Context(), req.ChatbotId, req.Question)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
