package http

import (
	"log/slog"
	"os"

	"github.com/agrilabs/wms-backend-go/internal/handler/http/middleware"
	"github.com/agrilabs/wms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	frontendURL string,
	authHandler AuthHandler,
	workerHandler WorkerHandler,
	attendanceHandler AttendanceHandler,
	advanceHandler AdvanceHandler,
	extraHandler ExtraHandler,
	settlementHandler SettlementHandler,
	insightsHandler InsightsHandler,
	notificationHandler NotificationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "agrilabs-wms"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Post("/", workerHandler.Create)
				r.Get("/{id}", workerHandler.Get)
				r.Put("/{id}", workerHandler.Update)
				r.Delete("/{id}", workerHandler.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", attendanceHandler.Create)
				r.Get("/range", attendanceHandler.ListByRange)
				r.Get("/worker/{workerId}", attendanceHandler.ListByWorker)
				r.Put("/{id}", attendanceHandler.Update)
				r.Delete("/{id}", attendanceHandler.Delete)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Post("/", advanceHandler.Create)
				r.Get("/range", advanceHandler.ListByRange)
				r.Get("/worker/{workerId}", advanceHandler.ListByWorker)
				r.Put("/{id}", advanceHandler.Update)
				r.Delete("/{id}", advanceHandler.Delete)
			})

			r.Route("/extras", func(r chi.Router) {
				r.Post("/", extraHandler.Create)
				r.Get("/range", extraHandler.ListByRange)
				r.Get("/worker/{workerId}", extraHandler.ListByWorker)
				r.Put("/{id}", extraHandler.Update)
				r.Delete("/{id}", extraHandler.Delete)
			})

			r.Route("/settlement", func(r chi.Router) {
				r.Get("/farmer/history", settlementHandler.HistoryByFarmer)

				r.Route("/worker/{workerId}", func(r chi.Router) {
					r.Get("/pending", settlementHandler.GetPending)
					r.Post("/settle", settlementHandler.Settle)
					r.Get("/history", settlementHandler.HistoryByWorker)
					r.Get("/ledger", settlementHandler.Ledger)
					r.Get("/last-settlement", settlementHandler.LastSettlement)
					r.Get("/month-wise-summary", settlementHandler.MonthWiseSummary)
					r.Post("/month-wise-settle", settlementHandler.MonthWiseSettle)
					r.Post("/wallet-deposit", settlementHandler.WalletDeposit)
					r.Post("/wallet-withdraw", settlementHandler.WalletWithdraw)
				})
			})

			r.Route("/insights", func(r chi.Router) {
				r.Get("/overview", insightsHandler.Overview)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Put("/{id}/read", notificationHandler.MarkRead)
				r.Put("/read-all", notificationHandler.MarkAllRead)
			})
		})
	})
	return r
}
