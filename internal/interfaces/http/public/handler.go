package public

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	publicapp "github.com/sngm3741/fitness-directory/api/internal/public/application"
)

// TokenIssuer signs compare session tokens.
type TokenIssuer interface {
	Issue(sessionID string, expiresAt time.Time) (string, error)
}

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger     *log.Logger
	businesses publicapp.BusinessQueryService
	compare    publicapp.CompareService
	tokens     TokenIssuer
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger     *log.Logger
	Businesses publicapp.BusinessQueryService
	Compare    publicapp.CompareService
	Tokens     TokenIssuer
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger,
		businesses: cfg.Businesses,
		compare:    cfg.Compare,
		tokens:     cfg.Tokens,
	}
}

// Register mounts all public routes onto the router. sessionMiddleware must
// put the compare session id into the request context; suggestLimit guards
// the suggestion endpoint.
func (h *Handler) Register(r chi.Router, sessionMiddleware, suggestLimit func(http.Handler) http.Handler) {
	r.Route("/businesses", func(r chi.Router) {
		r.Get("/", h.businessListHandler())
		r.With(suggestLimit).Get("/suggestions", h.suggestionHandler())
		r.Get("/meta/categories", h.categoriesHandler())
		r.Get("/meta/services", h.servicesHandler())
		r.Get("/meta/vibes", h.vibesHandler())
		r.Get("/meta/price-range", h.priceRangeHandler())
		r.Get("/{id}", h.businessDetailHandler())
	})

	r.Post("/compare/sessions", h.compareStartHandler())
	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware)
		r.Get("/compare", h.compareSnapshotHandler())
		r.Delete("/compare", h.compareEndHandler())
		r.Post("/compare/items", h.compareAddHandler())
		r.Delete("/compare/items", h.compareClearHandler())
		r.Post("/compare/items/{id}/toggle", h.compareToggleHandler())
		r.Delete("/compare/items/{id}", h.compareRemoveHandler())
		r.Post("/compare/modal", h.compareOpenModalHandler())
		r.Delete("/compare/modal", h.compareCloseModalHandler())
	})
}
