package public

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sngm3741/fitness-directory/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/fitness-directory/api/internal/public/application"
)

func (h *Handler) businessListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		criteria := criteriaFromQuery(r.URL.Query())
		result := h.businesses.List(criteria)
		common.WriteList(h.logger, w, buildBusinessResponses(result.Items), result.Count, result.Total)
	}
}

func (h *Handler) businessDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idParam := strings.TrimSpace(chi.URLParam(r, "id"))
		id, err := strconv.Atoi(idParam)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "Invalid business id", "id must be numeric")
			return
		}

		business, err := h.businesses.Detail(id)
		if err != nil {
			if errors.Is(err, publicapp.ErrBusinessNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "Business not found", "")
				return
			}
			h.logger.Printf("business detail fetch failed id=%d err=%v", id, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "Error fetching business", err.Error())
			return
		}

		common.WriteData(h.logger, w, http.StatusOK, buildBusinessResponse(business))
	}
}

func (h *Handler) suggestionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suggestions := h.businesses.Suggest(r.URL.Query().Get("q"))
		common.WriteList(h.logger, w, suggestions, len(suggestions), len(suggestions))
	}
}

func (h *Handler) categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		categories := h.businesses.Categories()
		common.WriteList(h.logger, w, categories, len(categories), len(categories))
	}
}

func (h *Handler) servicesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		services := h.businesses.Services()
		common.WriteList(h.logger, w, services, len(services), len(services))
	}
}

func (h *Handler) vibesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		vibes := h.businesses.Vibes()
		common.WriteList(h.logger, w, vibes, len(vibes), len(vibes))
	}
}

func (h *Handler) priceRangeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		bounds := h.businesses.PriceBounds()
		common.WriteData(h.logger, w, http.StatusOK, priceRangeResponse{Min: bounds.Min, Max: bounds.Max})
	}
}
