package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	settlementHandler SettlementHandler,
	payrollHandler PayrollHandler,
	revenueHandler RevenueHandler,
	policyHandler PolicyHandler,
	commissionHandler CommissionHandler,
	collaboratorHandler CollaboratorHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "brokerage-backend"),
		slog.String("version", "v1.0.0"),
	)
	slog.SetDefault(logger)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Post("/settlements/generate", settlementHandler.Generate)
		r.Post("/payslips/generate", payrollHandler.Generate)

		r.Route("/revenue", func(r chi.Router) {
			r.Get("/overview", revenueHandler.Overview)
			r.Get("/monthly", revenueHandler.MonthlySeries)
		})

		r.Route("/policies", func(r chi.Router) {
			r.Get("/", policyHandler.List)
			r.Post("/", policyHandler.Create)
			r.Get("/{id}", policyHandler.Get)
			r.Patch("/{id}/status", policyHandler.UpdateStatus)
		})

		r.Route("/commissions", func(r chi.Router) {
			r.Get("/", commissionHandler.List)
			r.Post("/", commissionHandler.Create)
			r.Get("/{id}", commissionHandler.Get)
			r.Patch("/{id}/status", commissionHandler.UpdateStatus)
			r.Get("/{id}/parts", commissionHandler.GetParts)
			r.Post("/{id}/parts", commissionHandler.AddPart)
		})

		r.Route("/collaborators", func(r chi.Router) {
			r.Get("/", collaboratorHandler.List)
			r.Post("/", collaboratorHandler.Create)
			r.Get("/{id}", collaboratorHandler.Get)
		})
	})

	return r
}
