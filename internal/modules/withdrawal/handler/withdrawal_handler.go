package handler

import (
	"errors"
	"strings"

	"wdr/internal/modules/withdrawal/dto"
	"wdr/internal/modules/withdrawal/model"
	"wdr/internal/modules/withdrawal/usecase"
	"wdr/internal/modules/withdrawal/view"
	"wdr/pkg/helper"
	"wdr/pkg/logger"
	"wdr/pkg/response"
	"wdr/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

var validate = validator.New()

type WithdrawalHandler struct {
	usecase  *usecase.ReceiptUsecase
	renderer *view.Renderer
}

func NewWithdrawalHandler(u *usecase.ReceiptUsecase, r *view.Renderer) *WithdrawalHandler {
	return &WithdrawalHandler{usecase: u, renderer: r}
}

// SubmitRequest handles POST /api/withdraw-request.
func (h *WithdrawalHandler) SubmitRequest(c *fiber.Ctx) error {
	var req dto.WithdrawRequestInput
	if err := decodeJSON(c, &req); err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "WithdrawalHandler.SubmitRequest.Parser", string(c.Body()), &errMsg)
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	sourceIP := utils.CopyString(helper.ClientIP(c.Get(fiber.HeaderXForwardedFor), c.IP()))

	out, err := h.usecase.SubmitRequest(c.UserContext(), req, sourceIP)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "WithdrawalHandler.SubmitRequest.Validate", map[string]any{
			"source_ip": sourceIP,
		}, &errMsg)

		var intakeErr usecase.IntakeError
		if errors.As(err, &intakeErr) {
			return response.WriteError(c, fiber.StatusBadRequest, intakeErr.Error())
		}
		return response.WriteError(c, fiber.StatusBadRequest, errMsg)
	}

	logger.WriteLogToFile("success", "WithdrawalHandler.SubmitRequest", out.Record, nil)
	logger.WithField("receipt_id", out.ReceiptID).Infof("✅ withdrawal request accepted chain=%s", out.Record.Chain)

	return response.WriteSuccess(c, fiber.StatusOK, fiber.Map{
		"receiptId": out.ReceiptID,
		"url":       out.URL,
	})
}

// GetReceipt handles GET /api/receipt/:id.
func (h *WithdrawalHandler) GetReceipt(c *fiber.Ctx) error {
	rec, ok := h.usecase.GetReceipt(c.Params("id"))
	if !ok {
		return response.WriteError(c, fiber.StatusNotFound, usecase.ErrNotFound.Error())
	}
	return response.WriteSuccess(c, fiber.StatusOK, fiber.Map{"receipt": rec})
}

// ReceiptPage handles GET /receipt/:id.
func (h *WithdrawalHandler) ReceiptPage(c *fiber.Ctx) error {
	id := c.Params("id")
	rec, ok := h.usecase.GetReceipt(id)
	if !ok {
		page, err := h.renderer.NotFound(id)
		if err != nil {
			return err
		}
		return writeHTML(c, fiber.StatusNotFound, page)
	}

	page, err := h.renderer.Receipt(rec, h.usecase.ReceiptURL(rec.ID))
	if err != nil {
		return err
	}
	return writeHTML(c, fiber.StatusOK, page)
}

// AdminPage handles GET /admin. The admin key is checked by middleware.
func (h *WithdrawalHandler) AdminPage(c *fiber.Ctx) error {
	page, err := h.renderer.Admin(h.usecase.List())
	if err != nil {
		return err
	}
	return writeHTML(c, fiber.StatusOK, page)
}

// AdminList handles GET /api/admin/receipts?page=&limit=.
func (h *WithdrawalHandler) AdminList(c *fiber.Ctx) error {
	all := h.usecase.List()
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 0)
	if page < 1 {
		page = 1
	}

	start, end := helper.Paginate(len(all), page, limit)
	return response.WriteSuccessWithMeta(c, fiber.StatusOK, fiber.Map{
		"receipts": all[start:end],
	}, response.NewMeta(page, limit, len(all)))
}

// UpdateStatus handles POST /api/admin/receipts/:id/status.
func (h *WithdrawalHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateInput
	if err := decodeJSON(c, &req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, "Invalid JSON body")
	}
	if err := validate.Struct(&req); err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, strings.Join(validation.FormatValidationError(err), "; "))
	}
	status, err := model.ParseStatus(req.Status)
	if err != nil {
		return response.WriteError(c, fiber.StatusBadRequest, err.Error())
	}

	id := c.Params("id")
	rec, err := h.usecase.UpdateStatus(c.UserContext(), id, status)
	if err != nil {
		errMsg := err.Error()
		logger.WriteLogToFile("failed", "WithdrawalHandler.UpdateStatus", map[string]any{
			"receipt_id": id,
			"status":     req.Status,
		}, &errMsg)

		switch {
		case errors.Is(err, usecase.ErrNotFound):
			return response.WriteError(c, fiber.StatusNotFound, errMsg)
		case errors.Is(err, usecase.ErrStatusFinal):
			return response.WriteError(c, fiber.StatusConflict, errMsg)
		default:
			return response.WriteError(c, fiber.StatusBadRequest, errMsg)
		}
	}

	logger.WriteLogToFile("success", "WithdrawalHandler.UpdateStatus", rec, nil)
	logger.WithField("receipt_id", rec.ID).Infof("withdrawal status set to %s", rec.Status)
	return response.WriteSuccess(c, fiber.StatusOK, fiber.Map{"receipt": rec})
}

// decodeJSON reads the body as JSON whatever its Content-Type. An empty body
// leaves v untouched.
func decodeJSON(c *fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, v)
}

func writeHTML(c *fiber.Ctx, code int, page []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(code).Send(page)
}
