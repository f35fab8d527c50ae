package controller

import (
	"disaster-chatbot-be/internal/pkg/serverutils"
	"disaster-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWarningController interface {
	RegisterRoutes(r fiber.Router)
	GenerateWarnings(ctx *fiber.Ctx) error
}

type warningController struct {
	ingestService service.IIngestService
}

func NewWarningController(ingestService service.IIngestService) IWarningController {
	return &warningController{ingestService: ingestService}
}

func (c *warningController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/warning/v1")
	h.Post("generate-warnings", c.GenerateWarnings)
}

func (c *warningController) GenerateWarnings(ctx *fiber.Ctx) error {
	res, err := c.ingestService.IngestWarnings(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse(res.Message, res))
}
