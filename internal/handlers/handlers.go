package handlers

import (
	"net/http"

	_ "github.com/akulagin/creditcore/docs"
	"github.com/akulagin/creditcore/internal/config"
	"github.com/akulagin/creditcore/internal/dto"
	creditshandlers "github.com/akulagin/creditcore/internal/handlers/credits"
	paymentshandlers "github.com/akulagin/creditcore/internal/handlers/payments"
	usagehandlers "github.com/akulagin/creditcore/internal/handlers/usage"
	"github.com/akulagin/creditcore/internal/service"
	"github.com/akulagin/creditcore/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type CreditsHandler interface {
	GetCredits(w http.ResponseWriter, r *http.Request)
	TopUp(w http.ResponseWriter, r *http.Request)
}

type UsageHandler interface {
	CheckUsage(w http.ResponseWriter, r *http.Request)
	Consume(w http.ResponseWriter, r *http.Request)
}

type PaymentsHandler interface {
	CreateRecord(w http.ResponseWriter, r *http.Request)
	GetRecord(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Webhook(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	CreditsHandler  CreditsHandler
	UsageHandler    UsageHandler
	PaymentsHandler PaymentsHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	requirements := dto.PaymentRequirementsDTO{
		Amount:      cfg.InterviewPrice,
		Token:       "USDC",
		Recipient:   cfg.Recipient,
		Description: "Unlock one full AI interview",
	}

	return &Handlers{
		CreditsHandler:  creditshandlers.New(s.CreditService, s.PaymentService),
		UsageHandler:    usagehandlers.New(s.UsageService, requirements),
		PaymentsHandler: paymentshandlers.New(s.PaymentService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			// Anonymous callers read a zero balance, not an error.
			r.Get("/credits", h.CreditsHandler.GetCredits)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Post("/credits", h.CreditsHandler.TopUp)
				r.Route("/usage", func(r chi.Router) {
					r.Get("/", h.UsageHandler.CheckUsage)
					r.Post("/", h.UsageHandler.Consume)
				})
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Route("/records", func(r chi.Router) {
				r.Post("/", h.PaymentsHandler.CreateRecord)
				r.Get("/", h.PaymentsHandler.GetRecord)
				r.Patch("/", h.PaymentsHandler.UpdateStatus)
			})
			r.Post("/webhook", h.PaymentsHandler.Webhook)
		})
	})

	return r
}
