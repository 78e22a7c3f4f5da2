package rest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json keys instead of go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseBody decodes the json body into out and validates it against its
// validate tags.
func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	err := validate.Struct(out)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("invalid %s: failed on %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validate body: %w", err)
}

type subscriptionBody struct {
	UserId string `json:"userId" validate:"required,uuid"`
}

type createUserBody struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

type changeUserBody struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,min=1"`
}

type createPostBody struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserId  string `json:"userId" validate:"required,uuid"`
}

type changePostBody struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type createProfileBody struct {
	Avatar       string `json:"avatar" validate:"required"`
	Sex          string `json:"sex" validate:"required"`
	Birthday     *int64 `json:"birthday" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
	MemberTypeId string `json:"memberTypeId" validate:"required"`
	UserId       string `json:"userId" validate:"required,uuid"`
}

type changeProfileBody struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int64  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeId *string `json:"memberTypeId" validate:"omitempty,min=1"`
}

type changeMemberTypeBody struct {
	Discount        *float64 `json:"discount" validate:"omitempty,min=0,max=100"`
	MonthPostsLimit *int     `json:"monthPostsLimit" validate:"omitempty,min=0"`
}
