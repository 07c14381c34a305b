package controller

import (
	"exposurelog-be/internal/dto"
	"exposurelog-be/internal/pkg/apperror"
	"exposurelog-be/internal/pkg/serverutils"
	"exposurelog-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMessageController interface {
	RegisterRoutes(r fiber.Router)
	Add(ctx *fiber.Ctx) error
	Find(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Edit(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type messageController struct {
	messageService service.IMessageService
}

func NewMessageController(messageService service.IMessageService) IMessageController {
	return &messageController{
		messageService: messageService,
	}
}

func (c *messageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/messages")
	h.Post("", c.Add)
	h.Get("", c.Find)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Edit)
	h.Delete(":id", c.Delete)
}

func (c *messageController) Add(ctx *fiber.Ctx) error {
	var req dto.AddMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.BadRequest("invalid request body: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messageService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add message", res))
}

func (c *messageController) Find(ctx *fiber.Ctx) error {
	req := dto.NewFindMessagesRequest()
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.BadRequest("invalid query parameters: %v", err)
	}

	res, err := c.messageService.Find(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success find messages", res))
}

func (c *messageController) Show(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	res, err := c.messageService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show message", res))
}

func (c *messageController) Edit(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	var req dto.EditMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.BadRequest("invalid request body: %v", err)
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.messageService.Edit(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success edit message", res))
}

func (c *messageController) Delete(ctx *fiber.Ctx) error {
	id, err := parseID(ctx)
	if err != nil {
		return err
	}

	if err := c.messageService.Invalidate(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

func parseID(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.BadRequest("invalid message id %q", ctx.Params("id"))
	}
	return id, nil
}
