package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/entity"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/infra/http/middleware"
	"github.com/sanskritiagarwal6-debug/luxemarket-api/internal/usecase"
)

// AdminHandler groups the moderation surface: lead catalog management, the
// whitelist, access requests and the offer inbox. Every route behind it
// already passed RequireAdmin.
type AdminHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	ModerationUC *usecase.ModerationUseCase
	AddUserUC    *usecase.AddUserUseCase
	RevokeUserUC *usecase.RevokeUserUseCase
	ApprovalUC   *usecase.AccessApprovalUseCase
	OfferUC      *usecase.MakeOfferUseCase

	LeadRepo    entity.LeadRepositoryInterface
	UserRepo    entity.AuthorizedUserRepositoryInterface
	RequestRepo entity.AccessRequestRepositoryInterface
	OfferRepo   entity.OfferRepositoryInterface
}

// --- Leads ---

// HandleListLeads returns every lead regardless of status, for the admin
// table view.
func (h *AdminHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}
	if leads == nil {
		leads = []*entity.Lead{}
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *AdminHandler) HandleCreateLead(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	lead, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

func (h *AdminHandler) HandleApproveLead(w http.ResponseWriter, r *http.Request) {
	if err := h.ModerationUC.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordModeration("approved")
	writeJSON(w, http.StatusOK, map[string]string{"msg": "lead approved"})
}

func (h *AdminHandler) HandleRejectLead(w http.ResponseWriter, r *http.Request) {
	if err := h.ModerationUC.Reject(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordModeration("rejected")
	writeJSON(w, http.StatusOK, map[string]string{"msg": "lead rejected"})
}

func (h *AdminHandler) HandleDeleteLead(w http.ResponseWriter, r *http.Request) {
	if err := h.ModerationUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	middleware.RecordModeration("deleted")
	writeJSON(w, http.StatusOK, map[string]string{"msg": "lead deleted"})
}

// --- Whitelist ---

func (h *AdminHandler) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}
	if users == nil {
		users = []*entity.AuthorizedUser{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *AdminHandler) HandleAddUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	user, err := h.AddUserUC.Execute(r.Context(), body.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *AdminHandler) HandleRevokeUser(w http.ResponseWriter, r *http.Request) {
	if err := h.RevokeUserUC.Execute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"msg": "access revoked"})
}

// --- Access requests ---

func (h *AdminHandler) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.RequestRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}
	if requests == nil {
		requests = []*entity.AccessRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *AdminHandler) HandleApproveRequest(w http.ResponseWriter, r *http.Request) {
	input := usecase.ResolveAccessRequestInput{RequestID: chi.URLParam(r, "id")}

	output, err := h.ApprovalUC.Approve(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordAccessResolution("approved")
	writeJSON(w, http.StatusOK, output)
}

func (h *AdminHandler) HandleRejectRequest(w http.ResponseWriter, r *http.Request) {
	input := usecase.ResolveAccessRequestInput{RequestID: chi.URLParam(r, "id")}

	output, err := h.ApprovalUC.Reject(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordAccessResolution("rejected")
	writeJSON(w, http.StatusOK, output)
}

// --- Offer inbox ---

func (h *AdminHandler) HandleListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.OfferRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, &usecase.TechnicalError{Code: usecase.CodeDatabase, Message: err.Error()})
		return
	}
	if offers == nil {
		offers = []*entity.Offer{}
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *AdminHandler) HandleResolveOffer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	if err := h.OfferUC.ResolveOffer(r.Context(), chi.URLParam(r, "id"), body.Status); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "offer " + body.Status})
}
