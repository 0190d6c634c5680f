package controller

import (
	"echoverse-be/internal/pkg/serverutils"
	"echoverse-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	GetDashboard(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service service.IDashboardService
}

func NewDashboardController(service service.IDashboardService) IDashboardController {
	return &dashboardController{service: service}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetDashboard)
}

func (c *dashboardController) GetDashboard(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetDashboard(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}
