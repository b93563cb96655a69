package response

import "github.com/gofiber/fiber/v2"

type Meta struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	TotalPage int `json:"total_page"`
}

type ErrorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SuccessBody flattens fields next to "ok": true, matching the public API shape
// ({"ok":true,"receiptId":...}).
func SuccessBody(fields fiber.Map) fiber.Map {
	body := fiber.Map{"ok": true}
	for k, v := range fields {
		if k == "ok" {
			continue
		}
		body[k] = v
	}
	return body
}

func ErrorResponse(err string) ErrorBody {
	return ErrorBody{OK: false, Error: err}
}

// NewMeta builds pagination meta; limit <= 0 means a single page.
func NewMeta(page, limit, total int) *Meta {
	if limit <= 0 {
		limit = total
	}
	totalPage := 1
	if limit > 0 {
		totalPage = (total + limit - 1) / limit
	}
	if totalPage == 0 {
		totalPage = 1
	}
	return &Meta{Page: page, Limit: limit, Total: total, TotalPage: totalPage}
}

// WriteSuccess writes {"ok":true, ...fields}
func WriteSuccess(c *fiber.Ctx, code int, fields fiber.Map) error {
	return c.Status(code).JSON(SuccessBody(fields))
}

func WriteSuccessWithMeta(c *fiber.Ctx, code int, fields fiber.Map, meta *Meta) error {
	body := SuccessBody(fields)
	body["meta"] = meta
	return c.Status(code).JSON(body)
}

// WriteError writes {"ok":false,"error":err}
func WriteError(c *fiber.Ctx, code int, err string) error {
	return c.Status(code).JSON(ErrorResponse(err))
}
