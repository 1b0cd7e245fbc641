package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handler) approveOwner(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found or not an owner")
		return
	}
	if err := h.service.ApproveOwner(r.Context(), userID); err != nil {
		status, msg := mapDomainError(err)
		if status == http.StatusNotFound {
			msg = "User not found or not an owner"
		}
		writeError(w, status, msg)
		return
	}
	writeMessage(w, http.StatusOK, "Owner approved successfully")
}
