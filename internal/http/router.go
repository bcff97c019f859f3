package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"louvor/internal/config"
	"louvor/internal/http/handler"
	mw "louvor/internal/http/middleware"
	"louvor/internal/logger"
	"louvor/internal/service"
)

func NewRouter(cfg config.Config, svcs *service.Services, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogger(log))

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	musicaH := handler.NewMusicaHandler(svcs.Musicas, log)
	artistaH := handler.NewArtistaHandler(svcs.Artistas, log)
	funcaoH := handler.NewFuncaoHandler(svcs.Funcoes, log)
	tonalidadeH := handler.NewTonalidadeHandler(svcs.Tonalidades, log)
	tipoEventoH := handler.NewTipoEventoHandler(svcs.TiposEventos, log)
	integranteH := handler.NewIntegranteHandler(svcs.Integrantes, log)
	eventoH := handler.NewEventoHandler(svcs.Eventos, log)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/musicas", musicaH.Routes())
		r.Mount("/artistas", artistaH.Routes())
		// /tags is the legacy alias for categorias
		r.Mount("/categorias", handler.NewCategoriaHandler(svcs.Categorias, log).Routes())
		r.Mount("/tags", handler.NewCategoriaHandler(svcs.Categorias, log).Routes())
		r.Mount("/funcoes", funcaoH.Routes())
		r.Mount("/tonalidades", tonalidadeH.Routes())
		r.Mount("/tipos-eventos", tipoEventoH.Routes())
		r.Mount("/integrantes", integranteH.Routes())
		r.Mount("/eventos", eventoH.Routes())
	})

	return r
}
