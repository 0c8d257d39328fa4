package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

// CatalogHandler serves the buyer-facing listing views.
type CatalogHandler struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewCatalogHandler(leadRepo entity.LeadRepositoryInterface) *CatalogHandler {
	return &CatalogHandler{LeadRepo: leadRepo}
}

// HandleList returns available, approved leads. Filters: ?brands=BMW,Ferrari
// and ?q=substring on the title.
func (h *CatalogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := entity.CatalogFilter{
		Query: strings.TrimSpace(r.URL.Query().Get("q")),
	}
	if raw := r.URL.Query().Get("brands"); raw != "" {
		for _, brand := range strings.Split(raw, ",") {
			if brand = strings.TrimSpace(brand); brand != "" {
				filter.Brands = append(filter.Brands, brand)
			}
		}
	}

	leads, err := h.LeadRepo.FindAvailable(r.Context(), filter)
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *CatalogHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.LeadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, entity.ErrLeadNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "lead not found", Code: usecase.CodeNotFound})
		return
	}
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// HandleSold returns leads bought exclusively, newest first. Feeds the
// "recently sold" strip alongside the live event stream.
func (h *CatalogHandler) HandleSold(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindSoldExclusive(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}

	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}
