package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/http/middleware"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

type CheckoutHandler struct {
	CheckoutUC *usecase.CheckoutUseCase
}

func NewCheckoutHandler(uc *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{CheckoutUC: uc}
}

func (h *CheckoutHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		input.BuyerEmail = sess.Email
	}

	output, err := h.CheckoutUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordPurchase(input.PurchaseType)
	writeJSON(w, http.StatusOK, output)
}
