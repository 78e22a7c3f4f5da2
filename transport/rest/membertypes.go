package rest

import (
	"github.com/buzkaaclicker/social"
	"github.com/gofiber/fiber/v2"
)

// MemberTypeController serves the member type catalog. Member type ids are
// names like "basic", so they are not checked for uuid format.
type MemberTypeController struct {
	Store social.MemberTypeStore
}

func (c *MemberTypeController) InstallTo(app *fiber.App) {
	app.Get("/member-types", c.serveMemberTypes)
	app.Get("/member-types/:id", c.serveMemberType)
	app.Patch("/member-types/:id", c.serveChange)
}

func (c *MemberTypeController) serveMemberTypes(ctx *fiber.Ctx) error {
	types, err := c.Store.FindMany(ctx.Context())
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "find member types")
	}
	return ctx.JSON(types)
}

func (c *MemberTypeController) serveMemberType(ctx *fiber.Ctx) error {
	memberType, err := c.Store.ById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "get member type")
	}
	return ctx.JSON(memberType)
}

func (c *MemberTypeController) serveChange(ctx *fiber.Ctx) error {
	var body changeMemberTypeBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	memberType, err := c.Store.Change(ctx.Context(), ctx.Params("id"), social.MemberTypeChange(body))
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "change member type")
	}
	return ctx.JSON(memberType)
}
