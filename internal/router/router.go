package router

import (
	"net/http"

	"procuraduria/internal/app"
	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/middleware"
	"procuraduria/internal/platform/logger"
	"procuraduria/internal/presentation"

	_ "procuraduria/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, services in-memory vacíos (modo dev).
	Services app.Services

	Layout presentation.Layout // nil => legajos.DefaultLayout()
	Logger logger.Logger       // nil => nop
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	svcs := opts.Services
	if svcs.Legajos == nil || svcs.Movimientos == nil {
		svcs = app.NewServices(app.Deps{})
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	legajos.RegisterRoutes(r, svcs.Legajos, svcs.Movimientos, legajos.RouteOptions{
		Layout: opts.Layout,
		Logger: log,
	})
	movimientos.RegisterRoutes(r, svcs.Movimientos, log)

	return r
}
