package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

// NewsletterHandler triggers the daily digest. It is called by an external
// scheduler and guarded by a shared secret instead of a user session.
type NewsletterHandler struct {
	NewsletterUC *usecase.NewsletterUseCase
	CronSecret   string
}

func NewNewsletterHandler(uc *usecase.NewsletterUseCase, cronSecret string) *NewsletterHandler {
	return &NewsletterHandler{
		NewsletterUC: uc,
		CronSecret:   cronSecret,
	}
}

func (h *NewsletterHandler) Handle(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if h.CronSecret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.CronSecret)) != 1 {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized", Code: usecase.CodeNotAuthorized})
		return
	}

	output, err := h.NewsletterUC.Execute(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
