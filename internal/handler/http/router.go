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
	"github.com/jukulabs/juku-backend-go/internal/handler/http/middleware"
	"github.com/jukulabs/juku-backend-go/internal/pkg/jwt"
)

func NewRouter(JWTService jwt.Service, schoolHandler SchoolHandler, teacherHandler TeacherHandler, salaryHandler SalaryHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "juku-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/schools", func(r chi.Router) {
				r.Get("/", schoolHandler.List)
				r.Post("/", schoolHandler.Create)

				r.Route("/{schoolID}", func(r chi.Router) {
					r.Get("/", schoolHandler.GetByID)
					r.Put("/", schoolHandler.Update)
					r.Delete("/", schoolHandler.Delete)

					r.Route("/teachers", func(r chi.Router) {
						r.Get("/", teacherHandler.ListBySchool)
						r.Post("/", teacherHandler.Create)
					})

					r.Route("/salary", func(r chi.Router) {
						r.Get("/between", salaryHandler.ListBetween)

						r.Route("/{year}", func(r chi.Router) {
							r.Get("/", salaryHandler.ListBySchool)
							r.Delete("/", salaryHandler.DeleteBySchool)

							r.Route("/{month}", func(r chi.Router) {
								r.Get("/", salaryHandler.ListBySchool)
								r.Delete("/", salaryHandler.DeleteBySchool)
								r.Post("/grid", salaryHandler.IngestGrid)
								r.Post("/workbook", salaryHandler.IngestWorkbook)
							})
						})
					})
				})
			})

			r.Route("/teachers/{teacherID}", func(r chi.Router) {
				r.Get("/", teacherHandler.GetByID)
				r.Put("/", teacherHandler.Update)
				r.Delete("/", teacherHandler.Delete)
			})

			r.Route("/salary/{year}/{month}/teachers/{teacherID}", func(r chi.Router) {
				r.Get("/", salaryHandler.Get)
				r.Put("/", salaryHandler.Update)
			})
		})
	})
	return r
}
