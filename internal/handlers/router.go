package handlers

import (
	"net/http"

	"github.com/a2sh3r/groupmart/internal/metrics"
	"github.com/a2sh3r/groupmart/internal/middleware"
	"github.com/a2sh3r/groupmart/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	submissionService service.SubmissionService
	withdrawalService service.WithdrawalService
	balanceService    service.BalanceService
	processor         service.ApprovalProcessor
}

func NewHandler(
	submissionService service.SubmissionService,
	withdrawalService service.WithdrawalService,
	balanceService service.BalanceService,
	processor service.ApprovalProcessor,
) *Handler {
	return &Handler{
		submissionService: submissionService,
		withdrawalService: withdrawalService,
		balanceService:    balanceService,
		processor:         processor,
	}
}

func NewRouter(handler *Handler, secretKey, approverID string) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.WithLogging())

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Get("/healthz", Health)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.WithGzip())
		r.Use(middleware.JWTMiddleware(secretKey, approverID))

		r.Route("/submissions", func(r chi.Router) {
			r.Post("/", handler.Submit)
			r.Get("/", handler.ListSubmissions)
			r.Post("/{id}/transfer", handler.ConfirmTransfer)
		})

		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", handler.StartDraft)
			r.Delete("/", handler.CancelDraft)
			r.Post("/links", handler.AddDraftLink)
			r.Post("/submit", handler.SubmitDraft)
		})

		r.Get("/balance", handler.GetBalance)
		r.Get("/prices", handler.GetPrices)
		r.Put("/currency", handler.SetCurrency)

		r.Route("/withdrawals", func(r chi.Router) {
			r.Post("/", handler.Withdraw)
			r.Get("/", handler.GetWithdrawals)
		})

		r.Route("/approver", func(r chi.Router) {
			r.Post("/commands", handler.HandleCommand)
			r.Get("/pending", handler.GetPending)
		})
	})

	return r
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
