package controller

import (
	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/serverutils"
	"disaster-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPlannerController interface {
	RegisterRoutes(r fiber.Router)
	GenerateEOP(ctx *fiber.Ctx) error
	GenerateTasks(ctx *fiber.Ctx) error
}

type plannerController struct {
	eopService  service.IEOPService
	taskService service.ITaskService
}

func NewPlannerController(eopService service.IEOPService, taskService service.ITaskService) IPlannerController {
	return &plannerController{
		eopService:  eopService,
		taskService: taskService,
	}
}

func (c *plannerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Post("generate-eop", c.GenerateEOP)
	h.Post("generate-tasks", c.GenerateTasks)
}

func (c *plannerController) GenerateEOP(ctx *fiber.Ctx) error {
	var req dto.EOPGenerationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eopService.GenerateEOP(ctx.Context(), req.FloodData, req.ResourceData, req.Location)
	if err != nil {
		return err
	}
	if res.Status == dto.StatusError {
		return ctx.Status(fiber.StatusInternalServerError).JSON(res)
	}

	return ctx.JSON(res)
}

func (c *plannerController) GenerateTasks(ctx *fiber.Ctx) error {
	var req dto.TaskGenerationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.taskService.GenerateTasks(ctx.Context(), req.EmergencyOperationsPlan, req.FloodData, req.ResourceData)
	if err != nil {
		return err
	}
	if res.Status == dto.StatusError {
		return ctx.Status(fiber.StatusInternalServerError).JSON(res)
	}

	return ctx.JSON(res)
}
