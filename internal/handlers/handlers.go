package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fanvault/payments/docs"
	adminhandlers "github.com/fanvault/payments/internal/handlers/admin"
	creatorshandlers "github.com/fanvault/payments/internal/handlers/creators"
	paymentshandlers "github.com/fanvault/payments/internal/handlers/payments"
	payoutshandlers "github.com/fanvault/payments/internal/handlers/payouts"
	"github.com/fanvault/payments/internal/service"
)

type PaymentHandler interface {
	RecordPayment(w http.ResponseWriter, r *http.Request)
}

type CreatorHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetFees(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
	RegisterPayoutAccount(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	InitiatePayout(w http.ResponseWriter, r *http.Request)
	TransferWebhook(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GrantElite(w http.ResponseWriter, r *http.Request)
	RecalculateTiers(w http.ResponseWriter, r *http.Request)
	Reconciliation(w http.ResponseWriter, r *http.Request)
	ReconcilePayouts(w http.ResponseWriter, r *http.Request)
	ExecuteTask(w http.ResponseWriter, r *http.Request)
	RetryFailover(w http.ResponseWriter, r *http.Request)
	ListFailover(w http.ResponseWriter, r *http.Request)
	QueryAudit(w http.ResponseWriter, r *http.Request)
	AuditSummary(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PaymentHandler PaymentHandler
	CreatorHandler CreatorHandler
	PayoutHandler  PayoutHandler
	AdminHandler   AdminHandler
}

func New(s *service.Services, tasks adminhandlers.TaskRunner, queue adminhandlers.FailoverQueue, audit adminhandlers.AuditLog) *Handlers {
	return &Handlers{
		PaymentHandler: paymentshandlers.New(s.Ledger),
		CreatorHandler: creatorshandlers.New(s.Ledger, s.Fees, s.Payouts),
		PayoutHandler:  payoutshandlers.New(s.Payouts),
		AdminHandler:   adminhandlers.New(s.Fees, s.Reconcile, tasks, queue, audit),
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
	r.Route("/api", func(r chi.Router) {
		r.Post("/payments", h.PaymentHandler.RecordPayment)
		r.Post("/payouts", h.PayoutHandler.InitiatePayout)
		r.Post("/webhooks/transfers", h.PayoutHandler.TransferWebhook)

		r.Route("/creators/{creatorID}", func(r chi.Router) {
			r.Get("/balance", h.CreatorHandler.GetBalance)
			r.Get("/fees", h.CreatorHandler.GetFees)
			r.Get("/payouts", h.CreatorHandler.GetPayouts)
			r.Put("/payout-account", h.CreatorHandler.RegisterPayoutAccount)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/creators/{creatorID}/elite", h.AdminHandler.GrantElite)
			r.Post("/tiers/recalculate", h.AdminHandler.RecalculateTiers)
			r.Get("/reconciliation", h.AdminHandler.Reconciliation)
			r.Get("/reconciliation/payouts", h.AdminHandler.ReconcilePayouts)
			r.Post("/tasks/{name}", h.AdminHandler.ExecuteTask)
			r.Route("/failover", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListFailover)
				r.Post("/{recordID}/retry", h.AdminHandler.RetryFailover)
			})
			r.Route("/audit", func(r chi.Router) {
				r.Get("/", h.AdminHandler.QueryAudit)
				r.Get("/summary", h.AdminHandler.AuditSummary)
			})
		})
	})

	return r
}
