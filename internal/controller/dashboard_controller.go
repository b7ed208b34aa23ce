// FILE: internal/controller/dashboard_controller.go
package controller

import (
	"errors"

	"stembills-dashboard/internal/constant"
	"stembills-dashboard/internal/pkg/serverutils"
	"stembills-dashboard/internal/service"
	"stembills-dashboard/internal/web"
	"stembills-dashboard/pkg/dash"

	"github.com/gofiber/fiber/v2"
)

const scriptPath = "/assets/dashboard.js"

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Script(ctx *fiber.Ctx) error
	Layout(ctx *fiber.Ctx) error
	Dependencies(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type dashboardController struct {
	service    service.IDashboardService
	title      string
	echartsURL string
}

func NewDashboardController(service service.IDashboardService, title string) IDashboardController {
	return &dashboardController{
		service:    service,
		title:      title,
		echartsURL: web.DefaultEChartsURL,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Get(scriptPath, c.Script)
	r.Get("/_dash-layout", c.Layout)
	r.Get("/_dash-dependencies", c.Dependencies)
	r.Post("/_dash-update-component", c.Update)
}

func (c *dashboardController) Index(ctx *fiber.Ctx) error {
	ctx.Type("html", "utf-8")
	return web.RenderIndex(ctx, web.PageData{
		Title:      c.title,
		Background: constant.DashboardBackground,
		EChartsURL: c.echartsURL,
		ScriptPath: scriptPath,
	})
}

func (c *dashboardController) Script(ctx *fiber.Ctx) error {
	js, err := web.Script()
	if err != nil {
		return err
	}
	ctx.Type("js", "utf-8")
	return ctx.Send(js)
}

func (c *dashboardController) Layout(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Layout())
}

func (c *dashboardController) Dependencies(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.Dependencies())
}

func (c *dashboardController) Update(ctx *fiber.Ctx) error {
	var req dash.UpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "malformed update request"))
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), req)
	if err != nil {
		switch {
		case errors.Is(err, dash.ErrCallbackNotFound), errors.Is(err, dash.ErrInvalidOutput):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, dash.ErrMissingInput):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(res)
}
