package controller

import (
	"swimtrack-be/internal/pkg/serverutils"
	"swimtrack-be/internal/service"
	internalWS "swimtrack-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ISelectionController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Snapshot(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	ClearSelected(ctx *fiber.Ctx) error
	ClearSuperSelected(ctx *fiber.Ctx) error
	ClearAll(ctx *fiber.Ctx) error
}

type selectionController struct {
	service service.ISelectionService
	hub     *internalWS.Hub
}

func NewSelectionController(service service.ISelectionService, hub *internalWS.Hub) ISelectionController {
	return &selectionController{service: service, hub: hub}
}

// RegisterRoutes exposes reads publicly; every mutation goes through auth.
func (c *selectionController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/selection/v1")
	h.Get("", c.Snapshot)
	h.Get("/ws", c.upgrade, websocket.New(func(conn *websocket.Conn) {
		internalWS.ServeWs(c.hub, conn)
	}))
	h.Post("/:kind/:id/toggle", auth, c.Toggle)
	h.Delete("/:kind/super", auth, c.ClearSuperSelected)
	h.Delete("/:kind", auth, c.ClearSelected)
	h.Delete("", auth, c.ClearAll)
}

func (c *selectionController) upgrade(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (c *selectionController) Snapshot(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get selection", c.service.Snapshot(ctx.UserContext())))
}

func (c *selectionController) Toggle(ctx *fiber.Ctx) error {
	res, err := c.service.Toggle(ctx.UserContext(), ctx.Params("kind"), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle selection", res))
}

func (c *selectionController) ClearSelected(ctx *fiber.Ctx) error {
	res, err := c.service.ClearSelected(ctx.UserContext(), ctx.Params("kind"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear selection", res))
}

func (c *selectionController) ClearSuperSelected(ctx *fiber.Ctx) error {
	res, err := c.service.ClearSuperSelected(ctx.UserContext(), ctx.Params("kind"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success clear super selection", res))
}

func (c *selectionController) ClearAll(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success clear all selections", c.service.ClearAll(ctx.UserContext())))
}
