package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"dogmatch/internal/config"
	"dogmatch/internal/http/handlers/dogs/get_dog"
	"dogmatch/internal/http/handlers/dogs/get_filters"
	"dogmatch/internal/http/handlers/dogs/get_search"
	"dogmatch/internal/http/handlers/dogs/list_breeds"
	"dogmatch/internal/http/handlers/dogs/resolve_details"
	"dogmatch/internal/http/handlers/dogs/update_filters"
	"dogmatch/internal/http/handlers/favorites/list_favorites"
	"dogmatch/internal/http/handlers/favorites/toggle_favorite"
	"dogmatch/internal/http/handlers/match/generate_match"
	"dogmatch/internal/http/handlers/match/get_match"
	"dogmatch/internal/http/handlers/middlewares/auth"
	"dogmatch/internal/http/handlers/middlewares/compressor"
	"dogmatch/internal/http/handlers/middlewares/logger"
	"dogmatch/internal/http/handlers/session/login"
	"dogmatch/internal/http/handlers/session/logout"
	"dogmatch/internal/http/handlers/system/getping"
	"dogmatch/internal/services/session"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type Authentication interface {
	Login(ctx context.Context, name, email string) (*session.Session, string, time.Time, error)
	ValidateAndGetSession(ctx context.Context, token string) (*session.Session, error)
	Logout(ctx context.Context, sess *session.Session) error
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	authService Authentication
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, authService Authentication) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if authService == nil {
		return nil, errors.New("auth service cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		authService: authService,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second, // ?wait=true держит ответ до RequestTimeout
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	timeout := s.cfg.RequestTimeout

	s.router.Use(logger.MiddlewareLogging(s.log))
	s.router.Use(compressor.MiddlewareCompressing())

	/*
		Public routes (without auth)
	*/
	s.router.HandleFunc("/ping", getping.HandlerPing()).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/login", login.HandlerLogin(s.authService)).Methods(http.MethodPost)

	/*
		Protected routes (session cookie required)
	*/
	protected := api.NewRoute().Subrouter()
	protected.Use(auth.MiddlewareAuth(s.authService))

	protected.HandleFunc("/logout", logout.HandlerLogout(s.authService)).Methods(http.MethodPost) // 204

	protected.HandleFunc("/breeds", list_breeds.HandlerListBreeds()).Methods(http.MethodGet)
	protected.HandleFunc("/filters", get_filters.HandlerGetFilters()).Methods(http.MethodGet)
	protected.HandleFunc("/filters", update_filters.HandlerUpdateFilters()).Methods(http.MethodPatch)
	protected.HandleFunc("/search", get_search.HandlerGetSearch(timeout)).Methods(http.MethodGet)
	protected.HandleFunc("/dogs", resolve_details.HandlerResolveDetails(timeout)).Methods(http.MethodPost)
	protected.HandleFunc("/dogs/{id}", get_dog.HandlerGetDog(timeout)).Methods(http.MethodGet)

	protected.HandleFunc("/favorites", list_favorites.HandlerListFavorites()).Methods(http.MethodGet)
	protected.HandleFunc("/favorites/{id}", toggle_favorite.HandlerToggleFavorite()).Methods(http.MethodPost)

	protected.HandleFunc("/match", generate_match.HandlerGenerateMatch(timeout)).Methods(http.MethodPost)
	protected.HandleFunc("/match", get_match.HandlerGetMatch(timeout)).Methods(http.MethodGet) // 204 если матча нет
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
