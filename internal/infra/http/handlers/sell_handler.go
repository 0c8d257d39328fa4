package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

// SellHandler accepts dealer listing submissions. Submissions enter the
// moderation queue and stay out of the catalog until approved.
type SellHandler struct {
	SubmitLeadUC *usecase.SubmitLeadUseCase
}

func NewSellHandler(uc *usecase.SubmitLeadUseCase) *SellHandler {
	return &SellHandler{SubmitLeadUC: uc}
}

func (h *SellHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	output, err := h.SubmitLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
