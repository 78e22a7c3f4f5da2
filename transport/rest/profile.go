package rest

import (
	"github.com/buzkaaclicker/social"
	"github.com/gofiber/fiber/v2"
)

type ProfileController struct {
	Store social.ProfileStore
}

func (c *ProfileController) InstallTo(app *fiber.App) {
	app.Get("/profiles", c.serveProfiles)
	app.Get("/profiles/:id", c.serveProfile)
	app.Post("/profiles", c.serveCreate)
	app.Patch("/profiles/:id", c.serveChange)
	app.Delete("/profiles/:id", c.serveDelete)
}

func (c *ProfileController) serveProfiles(ctx *fiber.Ctx) error {
	profiles, err := c.Store.FindMany(ctx.Context())
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "find profiles")
	}
	return ctx.JSON(profiles)
}

func (c *ProfileController) serveProfile(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	profile, err := c.Store.ById(ctx.Context(), id)
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "get profile")
	}
	return ctx.JSON(profile)
}

func (c *ProfileController) serveCreate(ctx *fiber.Ctx) error {
	var body createProfileBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	profile, err := c.Store.Create(ctx.Context(), social.Profile{
		Avatar:       body.Avatar,
		Sex:          body.Sex,
		Birthday:     *body.Birthday,
		Country:      body.Country,
		Street:       body.Street,
		City:         body.City,
		MemberTypeId: body.MemberTypeId,
		UserId:       body.UserId,
	})
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "create profile")
	}
	return ctx.Status(fiber.StatusCreated).JSON(profile)
}

func (c *ProfileController) serveChange(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	var body changeProfileBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	profile, err := c.Store.Change(ctx.Context(), id, social.ProfileChange(body))
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "change profile")
	}
	return ctx.JSON(profile)
}

func (c *ProfileController) serveDelete(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	profile, err := c.Store.Delete(ctx.Context(), id)
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "delete profile")
	}
	return ctx.JSON(profile)
}
