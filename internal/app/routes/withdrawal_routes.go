package routes

import (
	"wdr/internal/app/middleware"
	"wdr/internal/modules/withdrawal/handler"

	"github.com/gofiber/fiber/v2"
)

func NewWithdrawalAPIRoutes(routerAPI fiber.Router, h *handler.WithdrawalHandler, adminKey string) {
	routerAPI.Post("/withdraw-request", h.SubmitRequest)
	routerAPI.Get("/receipt/:id", h.GetReceipt)
	routerAPI.Post("/log", handler.LogEvent)

	routerAdmin := routerAPI.Group("/admin", middleware.AdminKey(adminKey))
	routerAdmin.Get("/receipts", h.AdminList)
	routerAdmin.Post("/receipts/:id/status", h.UpdateStatus)
}

func NewWithdrawalPageRoutes(router fiber.Router, h *handler.WithdrawalHandler, adminKey string) {
	router.Get("/receipt/:id", h.ReceiptPage)
	router.Get("/admin", middleware.AdminKey(adminKey), h.AdminPage)
}
