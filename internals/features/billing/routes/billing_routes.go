package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"praiativa_backend/internals/configs"
	"praiativa_backend/internals/features/billing/controller"
	"praiativa_backend/internals/features/billing/service"
)

// BillingUserRoutes monta as rotas autenticadas de cobrança.
// O gateway de checkout vem do ENV: "edge" (função create-payment) por
// padrão, "midtrans" como alternativa.
func BillingUserRoutes(r fiber.Router, db *gorm.DB) {
	var provider service.CheckoutProvider
	gateway := configs.PaymentGateway
	if gateway == "midtrans" {
		provider = service.NewSnapCheckoutProvider(configs.MidtransServerKey, configs.MidtransProduction)
	} else {
		gateway = "edge"
		provider = service.NewEdgeCheckoutClient(configs.CheckoutURL, configs.CheckoutKey)
	}

	billing := service.NewBillingService(db, provider, gateway)
	ctrl := controller.NewBillingController(db, billing)

	grp := r.Group("/cobrancas")
	grp.Post("/", ctrl.CreateBillingSession)
}
