package httpadapter

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"nova-fund/internal/core/domain"
	"nova-fund/internal/core/port"
)

// TokenVerifier resolves a bearer token to the identity that signed it.
type TokenVerifier interface {
	Verify(token string) (domain.Address, error)
}

// Deps are the collaborators of the HTTP adapter. Metrics is optional and
// served on /metrics when set.
type Deps struct {
	Registry port.RegistryUseCase
	Escrow   port.EscrowUseCase
	Tokens   port.TokenUseCase
	Verifier TokenVerifier
	Metrics  http.Handler
	Logger   *slog.Logger
}

// Handler is the inbound HTTP adapter exposing the ledger contracts. Routes
// are registered on a chi.Router; every request passes through request id
// and authentication middleware first.
type Handler struct {
	registry port.RegistryUseCase
	escrow   port.EscrowUseCase
	tokens   port.TokenUseCase
	verifier TokenVerifier
	validate *validator.Validate
	logger   *slog.Logger
	router   chi.Router
}

// newValidator adds the "title" tag: valid UTF-8 without control
// characters. Length limits on strings count runes.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("title", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return utf8.ValidString(s) && strings.IndexFunc(s, unicode.IsControl) < 0
	})
	if err != nil {
		panic(err)
	}
	return v
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &Handler{
		registry: deps.Registry,
		escrow:   deps.Escrow,
		tokens:   deps.Tokens,
		verifier: deps.Verifier,
		validate: newValidator(),
		logger:   logger,
	}
	r := chi.NewRouter()
	r.Use(h.requestID, h.authenticate)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/registry", func(r chi.Router) {
			r.Post("/initialize", h.handleRegistryInitialize)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Post("/campaigns/{id}/donations", h.handleRegistryDonate)
		})
		r.Route("/escrow", func(r chi.Router) {
			r.Post("/initialize", h.handleEscrowInitialize)
			r.Post("/donations", h.handleEscrowDonate)
			r.Get("/info", h.handleEscrowInfo)
			r.Post("/withdraw", h.handleEscrowWithdraw)
		})
		r.Route("/tokens/{asset}", func(r chi.Router) {
			r.Get("/balances/{holder}", h.handleTokenBalance)
			r.Post("/transfers", h.handleTokenTransfer)
			r.Post("/mint", h.handleTokenMint)
		})
	})
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
