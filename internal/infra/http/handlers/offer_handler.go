package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/http/middleware"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

type OfferHandler struct {
	MakeOfferUC *usecase.MakeOfferUseCase
	OfferRepo   entity.OfferRepositoryInterface
}

func NewOfferHandler(uc *usecase.MakeOfferUseCase, offerRepo entity.OfferRepositoryInterface) *OfferHandler {
	return &OfferHandler{
		MakeOfferUC: uc,
		OfferRepo:   offerRepo,
	}
}

// HandleCreate records an offer on a lead for the signed-in buyer.
func (h *OfferHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.MakeOfferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	input.LeadID = chi.URLParam(r, "id")
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		input.UserEmail = sess.Email
	}

	output, err := h.MakeOfferUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

// HandleListMine returns the signed-in buyer's own offers, newest first.
func (h *OfferHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "not signed in", Code: usecase.CodeNotAuthorized})
		return
	}

	offers, err := h.OfferRepo.FindByUserEmail(r.Context(), sess.Email)
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}

	if offers == nil {
		offers = []*entity.Offer{}
	}
	writeJSON(w, http.StatusOK, offers)
}
