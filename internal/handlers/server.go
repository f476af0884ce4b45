package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/giftflow-app/backend/internal/auth"
	"github.com/giftflow-app/backend/internal/config"
	"github.com/giftflow-app/backend/internal/store"
)

// Server owns the store and the credential strategies; every handler is a
// method on it so tests can build isolated instances.
type Server struct {
	store     *store.Store
	cfg       config.Config
	logger    zerolog.Logger
	passwords auth.PasswordChecker
	tokens    auth.TokenMinter
	validate  *validator.Validate
}

func New(st *store.Store, cfg config.Config, logger zerolog.Logger, passwords auth.PasswordChecker, tokens auth.TokenMinter) *Server {
	return &Server{
		store:     st,
		cfg:       cfg,
		logger:    logger,
		passwords: passwords,
		tokens:    tokens,
		validate:  validator.New(),
	}
}

// Routes builds the full router: permissive development CORS, request
// logging, public routes, and a bearer-protected group.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(RequestLogging(s.logger))

	r.Get("/", s.handleRoot)
	r.Get("/api/hello", s.handleHello)
	r.Get("/test", s.handleMockStatus)

	r.Post("/api/auth/signup", s.handleSignup)
	r.Post("/api/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)
		r.Get("/api/me", s.handleMe)
		r.Get("/api/events", s.handleListEvents)
		r.Post("/api/events", s.handleCreateEvent)
	})

	return r
}

// decodeValid decodes a JSON body into v and runs struct validation. The
// returned error text is safe to surface as the response detail.
func (s *Server) decodeValid(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%s: failed %q validation", strings.ToLower(f.Field()), f.Tag())
		}
		return err
	}
	return nil
}
