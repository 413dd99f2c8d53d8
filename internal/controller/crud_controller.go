package controller

import (
	"swimtrack-be/internal/pkg/serverutils"
	"swimtrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICrudController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

// crudController serves /{path}/v1 for one record kind. label is the
// singular noun used in response messages.
type crudController[Req any, Res any] struct {
	service service.CrudService[Req, Res]
	path    string
	label   string
}

func newCrudController[Req any, Res any](svc service.CrudService[Req, Res], path, label string) ICrudController {
	return &crudController[Req, Res]{service: svc, path: path, label: label}
}

func (c *crudController[Req, Res]) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/" + c.path + "/v1")
	h.Get("", c.GetAll)
	h.Get(":id", c.Show)
	h.Post("", auth, c.Create)
	h.Put(":id", auth, c.Update)
	h.Delete(":id", auth, c.Delete)
}

func (c *crudController[Req, Res]) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.List(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all "+c.path, res))
}

func (c *crudController[Req, Res]) Show(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show "+c.label, res))
}

func (c *crudController[Req, Res]) Create(ctx *fiber.Ctx) error {
	var req Req
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create "+c.label, res))
}

func (c *crudController[Req, Res]) Update(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req Req
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update "+c.label, res))
}

func (c *crudController[Req, Res]) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete "+c.label, nil))
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return id, nil
}
