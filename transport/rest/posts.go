package rest

import (
	"github.com/buzkaaclicker/social"
	"github.com/gofiber/fiber/v2"
)

type PostController struct {
	Store social.PostStore
}

func (c *PostController) InstallTo(app *fiber.App) {
	app.Get("/posts", c.servePosts)
	app.Get("/posts/:id", c.servePost)
	app.Post("/posts", c.serveCreate)
	app.Patch("/posts/:id", c.serveChange)
	app.Delete("/posts/:id", c.serveDelete)
}

func (c *PostController) servePosts(ctx *fiber.Ctx) error {
	posts, err := c.Store.FindMany(ctx.Context())
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "find posts")
	}
	return ctx.JSON(posts)
}

func (c *PostController) servePost(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	post, err := c.Store.ById(ctx.Context(), id)
	if err != nil {
		return storeError(err, fiber.StatusNotFound, "get post")
	}
	return ctx.JSON(post)
}

func (c *PostController) serveCreate(ctx *fiber.Ctx) error {
	var body createPostBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	post, err := c.Store.Create(ctx.Context(), social.Post{
		Title:   body.Title,
		Content: body.Content,
		UserId:  body.UserId,
	})
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "create post")
	}
	return ctx.Status(fiber.StatusCreated).JSON(post)
}

func (c *PostController) serveChange(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	var body changePostBody
	if err := parseBody(ctx, &body); err != nil {
		return err
	}
	post, err := c.Store.Change(ctx.Context(), id, social.PostChange(body))
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "change post")
	}
	return ctx.JSON(post)
}

func (c *PostController) serveDelete(ctx *fiber.Ctx) error {
	id, err := uuidParam(ctx)
	if err != nil {
		return err
	}
	post, err := c.Store.Delete(ctx.Context(), id)
	if err != nil {
		return storeError(err, fiber.StatusBadRequest, "delete post")
	}
	return ctx.JSON(post)
}
