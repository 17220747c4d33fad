package helper

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mutualaid_backend/internals/configs"
	"mutualaid_backend/internals/constants"
)

var Validate = newValidator()

// newValidator reports fields by their json name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseIDParam parses an integer path parameter such as :id_group.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrValidation("%s must be an integer", name)
	}
	return uint(id), nil
}

// ParseBody decodes the JSON body into dst and runs struct validation.
func ParseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return ErrValidation("%s", constants.MsgInvalidBody)
	}
	if err := Validate.Struct(dst); err != nil {
		return ErrValidation("%s", validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return "Invalid input"
	}
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "http_url":
			parts = append(parts, fe.Field()+" must be a valid http(s) URL")
		case "datetime":
			parts = append(parts, fe.Field()+" must be a date formatted as "+fe.Param())
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email")
		default:
			parts = append(parts, fe.Field()+" failed on "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

// CheckFields rejects a JSON body carrying a key outside allowed. Keys are
// checked in sorted order so the reported field is stable.
func CheckFields(c *fiber.Ctx, allowed ...string) error {
	var body map[string]any
	if err := sonic.Unmarshal(c.Body(), &body); err != nil {
		return ErrValidation("%s", constants.MsgInvalidBody)
	}
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !contains(allowed, k) {
			return ErrForbidden("Field '%s' can not be updated by this user", k)
		}
	}
	return nil
}

// CheckNotEmpty fails with "Data has empty fields" when a provided value is blank.
func CheckNotEmpty(values ...*string) error {
	for _, v := range values {
		if v != nil && strings.TrimSpace(*v) == "" {
			return ErrValidation("%s", constants.MsgEmptyFields)
		}
	}
	return nil
}

// BaseURL is the public origin used to make host-relative URLs absolute.
func BaseURL(c *fiber.Ctx) string {
	if configs.App != nil && configs.App.PublicBaseURL != "" {
		return configs.App.PublicBaseURL
	}
	return c.BaseURL()
}
