package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

type AuthHandler struct {
	LoginUC         *usecase.LoginUseCase
	RequestAccessUC *usecase.RequestAccessUseCase
}

func NewAuthHandler(loginUC *usecase.LoginUseCase, requestAccessUC *usecase.RequestAccessUseCase) *AuthHandler {
	return &AuthHandler{
		LoginUC:         loginUC,
		RequestAccessUC: requestAccessUC,
	}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	output, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimPrefix(header, "Bearer ")
	}

	if err := h.LoginUC.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "signed out"})
}

func (h *AuthHandler) HandleRequestAccess(w http.ResponseWriter, r *http.Request) {
	var input usecase.RequestAccessInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	output, err := h.RequestAccessUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
