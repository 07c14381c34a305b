package controller

import (
	"exposurelog-be/internal/dto"
	"exposurelog-be/internal/pkg/apperror"
	"exposurelog-be/internal/pkg/serverutils"
	"exposurelog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IExposureController interface {
	RegisterRoutes(r fiber.Router)
	Find(ctx *fiber.Ctx) error
}

type exposureController struct {
	exposureService service.IExposureService
}

func NewExposureController(exposureService service.IExposureService) IExposureController {
	return &exposureController{
		exposureService: exposureService,
	}
}

func (c *exposureController) RegisterRoutes(r fiber.Router) {
	r.Get("/exposures", c.Find)
}

func (c *exposureController) Find(ctx *fiber.Ctx) error {
	req := dto.NewFindExposuresRequest()
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.BadRequest("invalid query parameters: %v", err)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.exposureService.Find(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success find exposures", res))
}
