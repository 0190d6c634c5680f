package controller

import (
	"echoverse-be/internal/dto"
	"echoverse-be/internal/pkg/serverutils"
	"echoverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IEntryController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Reanalyze(ctx *fiber.Ctx) error
}

type entryController struct {
	entryService     service.IEntryService
	dashboardService service.IDashboardService
}

func NewEntryController(entryService service.IEntryService, dashboardService service.IDashboardService) IEntryController {
	return &entryController{
		entryService:     entryService,
		dashboardService: dashboardService,
	}
}

func (c *entryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/entries")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/search", c.Search)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Post(":id/reanalyze", c.Reanalyze)
	h.Delete(":id", c.Delete)
}

func (c *entryController) Create(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	c.dashboardService.Invalidate(userId)

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create entry", res))
}

func (c *entryController) Show(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid entry ID"))
	}

	res, err := c.entryService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show entry", res))
}

func (c *entryController) List(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.ListEntriesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list entries", res))
}

func (c *entryController) Update(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid entry ID"))
	}

	var req dto.UpdateEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	c.dashboardService.Invalidate(userId)

	return ctx.JSON(serverutils.SuccessResponse("Success update entry", res))
}

func (c *entryController) Delete(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid entry ID"))
	}

	if err := c.entryService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	c.dashboardService.Invalidate(userId)

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete entry", nil))
}

func (c *entryController) Search(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SearchEntriesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.entryService.Search(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search entries", res))
}

func (c *entryController) Reanalyze(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid entry ID"))
	}

	res, err := c.entryService.Reanalyze(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Entry queued for analysis", res))
}
