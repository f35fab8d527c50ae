package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"disaster-chatbot-be/internal/dto"
	"disaster-chatbot-be/internal/pkg/serverutils"
	"disaster-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Train(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
	uploadTempDir  string
}

func NewChatbotController(chatbotService service.IChatbotService, uploadTempDir string) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
		uploadTempDir:  uploadTempDir,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.Index)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/train", c.Train)
}

func ownerID(ctx *fiber.Ctx) uuid.UUID {
	ownerStr, _ := ctx.Locals("user_id").(string)
	id, _ := uuid.Parse(ownerStr)
	return id
}

func (c *chatbotController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateChatbotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Create(ctx.Context(), ownerID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create chatbot", res))
}

func (c *chatbotController) Index(ctx *fiber.Ctx) error {
	offset := ctx.QueryInt("skip", 0)
	limit := ctx.QueryInt("limit", 100)

	res, err := c.chatbotService.GetAllByOwner(ctx.Context(), ownerID(ctx), offset, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list chatbots", res))
}

func (c *chatbotController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chatbot id")
	}

	res, err := c.chatbotService.Show(ctx.Context(), ownerID(ctx), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chatbot", res))
}

func (c *chatbotController) Update(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chatbot id")
	}

	var req dto.UpdateChatbotRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Update(ctx.Context(), ownerID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update chatbot", res))
}

func (c *chatbotController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chatbot id")
	}

	if err := c.chatbotService.Delete(ctx.Context(), ownerID(ctx), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Chatbot deleted successfully", &dto.MessageResponse{
		Message: "Chatbot deleted successfully",
	}))
}

// Train accepts multipart uploads, stages them under the temp dir, infers
// each file's corpus kind from its extension and hands the batch to the
// service. Staged files are removed when the call finishes either way.
func (c *chatbotController) Train(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid chatbot id")
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "multipart form with files is required")
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "at least one file is required")
	}

	if err := os.MkdirAll(c.uploadTempDir, 0o755); err != nil {
		return err
	}

	files := make([]dto.UploadedFile, 0, len(fileHeaders))
	defer func() {
		for _, f := range files {
			os.Remove(f.Path)
		}
	}()

	for i, fh := range fileHeaders {
		path := filepath.Join(c.uploadTempDir, fmt.Sprintf("%s-%d-%s", id, i, filepath.Base(fh.Filename)))
		if err := ctx.SaveFile(fh, path); err != nil {
			return err
		}
		files = append(files, dto.UploadedFile{
			Path: path,
			Kind: inferKind(fh.Filename),
		})
	}

	res, err := c.chatbotService.Train(ctx.Context(), ownerID(ctx), id, files)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success train chatbot", res))
}

func inferKind(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return "csv"
	case ".pdf":
		return "pdf"
	default:
		return "text"
	}
}
