package controller

import (
	"exposurelog-be/internal/pkg/serverutils"
	"exposurelog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConfigurationController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Instruments(ctx *fiber.Ctx) error
}

type configurationController struct {
	configurationService service.IConfigurationService
}

func NewConfigurationController(configurationService service.IConfigurationService) IConfigurationController {
	return &configurationController{
		configurationService: configurationService,
	}
}

func (c *configurationController) RegisterRoutes(r fiber.Router) {
	r.Get("/configuration", c.Show)
	r.Get("/instruments", c.Instruments)
}

func (c *configurationController) Show(ctx *fiber.Ctx) error {
	res := c.configurationService.GetConfiguration()
	return ctx.JSON(serverutils.SuccessResponse("Success show configuration", res))
}

func (c *configurationController) Instruments(ctx *fiber.Ctx) error {
	res, err := c.configurationService.GetInstruments(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show instruments", res))
}
