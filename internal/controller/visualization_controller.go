package controller

import (
	"echoverse-be/internal/dto"
	"echoverse-be/internal/pkg/serverutils"
	"echoverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IVisualizationController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	Latest(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type visualizationController struct {
	visualizationService service.IVisualizationService
	dashboardService     service.IDashboardService
}

func NewVisualizationController(visualizationService service.IVisualizationService, dashboardService service.IDashboardService) IVisualizationController {
	return &visualizationController{
		visualizationService: visualizationService,
		dashboardService:     dashboardService,
	}
}

func (c *visualizationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/visualizations")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/generate", c.Generate)
	h.Get("/latest", c.Latest)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

func (c *visualizationController) Generate(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GenerateVisualizationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.visualizationService.Generate(ctx.Context(), userId, &req)
	if err != nil {
		if err.Error() == "no analyzed entries in this period" {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ErrorResponse(422, err.Error()))
		}
		if err.Error() == "unsupported visualization type" {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return err
	}

	c.dashboardService.Invalidate(userId)

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success generate visualization", res))
}

func (c *visualizationController) Latest(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	vizType := ctx.Query("type", "")

	res, err := c.visualizationService.Latest(ctx.Context(), userId, vizType)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "No visualization found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Latest visualization", res))
}

func (c *visualizationController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.visualizationService.List(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list visualizations", res))
}

func (c *visualizationController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid visualization ID"))
	}

	if err := c.visualizationService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	c.dashboardService.Invalidate(userId)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete visualization", nil))
}
