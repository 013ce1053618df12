package mockapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter builds the stub API router. Request logging and bearer-token
// auth wrap everything; the public endpoints are exempted inside TokenAuth.
func NewRouter(h *Handlers, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(withRequestLogging(log))
	r.Use(TokenAuth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Post("/auth/login", h.Login)
		r.Post("/auth/register", h.Register)
		r.Post("/auth/logout", h.Logout)
		r.Get("/user/profile", h.Profile)
		r.Post("/user/change-password", h.ChangePassword)

		r.Get("/analytics/dashboard", h.Dashboard)

		r.Route("/links", func(r chi.Router) {
			r.Get("/", h.ListLinks)
			r.Post("/", h.CreateLink)
			r.Post("/bulk-delete", h.BulkDeleteLinks)
			r.Get("/{id}", h.GetLink)
			r.Put("/{id}", h.UpdateLink)
			r.Delete("/{id}", h.DeleteLink)
		})
		r.Post("/shorten", h.Shorten)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.ListCampaigns)
			r.Post("/", h.CreateCampaign)
			r.Get("/{id}", h.GetCampaign)
			r.Put("/{id}", h.UpdateCampaign)
			r.Delete("/{id}", h.DeleteCampaign)
		})

		r.Route("/settings/api-keys", func(r chi.Router) {
			r.Get("/", h.ListAPIKeys)
			r.Post("/", h.CreateAPIKey)
			r.Delete("/{id}", h.DeleteAPIKey)
		})

		r.Get("/payments/plans", h.ListPlans)

		r.Route("/crypto-payments", func(r chi.Router) {
			r.Get("/wallets", h.PaymentWallets)
			r.Post("/submit", h.SubmitPayment)
			r.Get("/check-status/{id}", h.CheckPaymentStatus)
		})

		r.Route("/support-tickets", func(r chi.Router) {
			r.Get("/", h.ListTickets)
			r.Post("/", h.CreateTicket)
			r.Get("/{id}", h.GetTicket)
			r.Post("/{id}/reply", h.ReplyTicket)
			r.Post("/{id}/close", h.CloseTicket)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.ListNotifications)
			r.Put("/mark-all-read", h.MarkAllNotificationsRead)
			r.Put("/{id}/read", h.MarkNotificationRead)
			r.Delete("/{id}", h.DeleteNotification)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", h.ListUsers)
			r.Post("/users/{id}/delete", h.DeleteUser)
			r.Patch("/users/{id}/suspend", h.SuspendUser)
			r.Post("/users/{id}/approve", h.ApprovePendingUser)
			r.Get("/pending-users", h.ListPendingUsers)
			r.Post("/pending-users/{id}/approve", h.ApprovePendingUser)

			r.Get("/campaigns", h.AdminListCampaigns)
			r.Post("/campaigns/{id}/suspend", h.AdminSuspendCampaign)
			r.Delete("/campaigns/{id}", h.DeleteCampaign)

			r.Get("/crypto-payments", h.ListCryptoPayments)
			r.Post("/crypto-payments/{id}/verify", h.VerifyCryptoPayment)

			r.Route("/settings/crypto-wallets", func(r chi.Router) {
				r.Get("/", h.ListWallets)
				r.Post("/", h.AddWallet)
				r.Put("/{id}", h.UpdateWallet)
				r.Delete("/{id}", h.DeleteWallet)
			})

			r.Get("/security/blocked-ips", h.ListBlockedIPs)
			r.Post("/security/block-ip", h.BlockIP)
			r.Post("/security/unblock-ip", h.UnblockIP)
		})
	})

	return r
}

// withRequestLogging logs method, path, and duration of every request.
func withRequestLogging(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}
