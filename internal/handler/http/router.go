package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffhive/erp-backend-go/internal/domain/master"
	"github.com/staffhive/erp-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/erp-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	clientHandler ClientHandler,
	vendorHandler VendorHandler,
	candidateHandler CandidateHandler,
	salesHandler SalesHandler,
	auditHandler AuditHandler,
	uploadsPath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhive-erp"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	// Uploaded documents, attachments and resumes are served straight from
	// disk. Access control for the files themselves is out of band.
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsPath))))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Get("/{id}/leave-balances", leaveHandler.GetBalances)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/", employeeHandler.CreateEmployee)
					r.Put("/{id}", employeeHandler.UpdateEmployee)
					r.Delete("/{id}", employeeHandler.DeleteEmployee)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateLeave)
				r.Get("/", leaveHandler.ListLeaves)
				r.Get("/{id}", leaveHandler.GetLeave)
				r.With(middleware.RequireHR).Post("/{id}/approve", leaveHandler.ApproveLeave)
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListLeaveTypes)
				r.With(middleware.RequireHR).Post("/", leaveHandler.CreateLeaveType)
				r.With(middleware.RequireHR).Delete("/{id}", leaveHandler.DeleteLeaveType)
			})

			masterRoutes(r, "/designations", masterHandler, master.KindDesignation)
			masterRoutes(r, "/roles", masterHandler, master.KindRole)
			masterRoutes(r, "/employee-statuses", masterHandler, master.KindEmployeeStatus)
			masterRoutes(r, "/allowance-types", masterHandler, master.KindAllowanceType)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientHandler.ListClients)
				r.Post("/", clientHandler.CreateClient)
				r.Get("/{id}", clientHandler.GetClient)
				r.Put("/{id}", clientHandler.UpdateClient)
				r.Delete("/{id}", clientHandler.DeleteClient)
			})

			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", vendorHandler.ListVendors)
				r.Post("/", vendorHandler.CreateVendor)
				r.Get("/{id}", vendorHandler.GetVendor)
				r.Put("/{id}", vendorHandler.UpdateVendor)
				r.Delete("/{id}", vendorHandler.DeleteVendor)
			})

			r.Route("/candidates", func(r chi.Router) {
				r.Get("/", candidateHandler.ListCandidates)
				r.Post("/", candidateHandler.CreateCandidate)
				r.Get("/{id}", candidateHandler.GetCandidate)
				r.Put("/{id}", candidateHandler.UpdateCandidate)
				r.Delete("/{id}", candidateHandler.DeleteCandidate)
				r.Post("/{id}/resume", candidateHandler.UploadResume)
			})

			r.Route("/sales-invoices", func(r chi.Router) {
				r.Get("/", salesHandler.ListInvoices)
				r.Post("/", salesHandler.CreateInvoice)
				r.Get("/{id}", salesHandler.GetInvoice)
				r.Put("/{id}", salesHandler.UpdateInvoice)
				r.Delete("/{id}", salesHandler.DeleteInvoice)
				r.Get("/{id}/pdf", salesHandler.DownloadInvoicePDF)
			})

			r.With(middleware.RequireHR).Get("/audit-logs", auditHandler.ListLogs)
		})
	})
	return r
}

// masterRoutes mounts one lookup-table CRUD group. Reads are open to any
// authenticated user; writes are restricted to HR and admin roles.
func masterRoutes(r chi.Router, pattern string, h MasterHandler, kind master.Kind) {
	r.Route(pattern, func(r chi.Router) {
		r.Get("/", h.List(kind))
		r.Get("/{id}", h.Get(kind))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireHR)
			r.Post("/", h.Create(kind))
			r.Put("/{id}", h.Update(kind))
			r.Delete("/{id}", h.Delete(kind))
		})
	})
}
