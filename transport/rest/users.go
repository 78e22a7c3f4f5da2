package rest

import (
	"github.com/buzkaaclicker/social"
	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store social.UserStore
}

func (c *UserController) InstallTo(app *fiber.App) {
	app.Get("/users", c.serveUsers)
	app.Get("/users/:id", c.serveUser)
	app.Post("/users", c.serveCreate)
	app.Patch("/users/:id", c.serveChange)
	app.Delete("/users/:id", c.serveDelete)
	app.Post("/users/:id/subscribeTo", c.serveSubscribeTo)
	app.Post("/users/:id/unsubscribeFrom", c.serveUnsubscribeFrom)
}

func (c *UserController) serveUsers(ctx *fiber.Ctx) error {
	users, err := c.Store.FindMany(ctx.Context())
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "find users")
	}
	return ctx.JSON(users)
}

func (c *UserController) serveUser(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	user, err := c.Store.ById(ctx.Context(), id)
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "get user")
	}
	return ctx.JSON(user)
}

func (c *UserController) serveCreate(ctx *fiber.Ctx) error {
	var body createUserBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	user, err := c.Store.Create(ctx.Context(), social.User{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
	})
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "create user")
	}
	return ctx.Status(fiber.StatusCreated).JSON(user)
}

func (c *UserController) serveChange(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	var body changeUserBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	user, err := c.Store.Change(ctx.Context(), id, social.UserChange(body))
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "change user")
	}
	return ctx.JSON(user)
}

func (c *UserController) serveDelete(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	user, err := c.Store.Delete(ctx.Context(), id)
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "delete user")
	}
	requestLog(ctx).WithField("user_id", id).Infoln("Deleted user with posts, profile and subscriptions.")
	return ctx.JSON(user)
}

func (c *UserController) serveSubscribeTo(ctx *fiber.Ctx) error {
	followerId, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	var body subscriptionBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	target, err := c.Store.SubscribeTo(ctx.Context(), followerId, body.UserId)
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "subscribe")
	}
	requestLog(ctx).
		WithField("user_id", followerId).
		WithField("target_id", target.Id).
		WithField("subscribers", len(target.SubscribedToUserIds)).
		Debugln("Subscribed.")
	return ctx.JSON(target)
}

func (c *UserController) serveUnsubscribeFrom(ctx *fiber.Ctx) error {
	followerId, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	var body subscriptionBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	target, err := c.Store.UnsubscribeFrom(ctx.Context(), followerId, body.UserId)
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "unsubscribe")
	}
	requestLog(ctx).
		WithField("user_id", followerId).
		WithField("target_id", target.Id).
		WithField("subscribers", len(target.SubscribedToUserIds)).
		Debugln("Unsubscribed.")
	return ctx.JSON(target)
}
