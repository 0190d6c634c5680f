package controller

import (
	"echoverse-be/internal/dto"
	"echoverse-be/internal/pkg/serverutils"
	"echoverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IInsightController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	MarkAsRead(ctx *fiber.Ctx) error
}

type insightController struct {
	insightService   service.IInsightService
	dashboardService service.IDashboardService
}

func NewInsightController(insightService service.IInsightService, dashboardService service.IDashboardService) IInsightController {
	return &insightController{
		insightService:   insightService,
		dashboardService: dashboardService,
	}
}

func (c *insightController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insights")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Patch(":id/read", c.MarkAsRead)
}

func (c *insightController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateInsightRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	c.dashboardService.Invalidate(userId)

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success generate insight", res))
}

func (c *insightController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid insight ID"))
	}

	res, err := c.insightService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show insight", res))
}

func (c *insightController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ListInsightsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.insightService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list insights", res))
}

func (c *insightController) MarkAsRead(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid insight ID"))
	}

	if err := c.insightService.MarkAsRead(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Insight marked as read", nil))
}
