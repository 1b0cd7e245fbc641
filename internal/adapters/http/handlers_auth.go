package http

import (
	"net/http"

	"github.com/waytopg/accommodation-service/internal/application"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req application.SignupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.IPAddress = readIP(r)

	res, err := h.service.Signup(r.Context(), req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"token": res.Token,
		"role":  res.Role,
		"user":  res.User,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req application.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.IPAddress = readIP(r)

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"token": res.Token,
		"role":  res.Role,
		"user":  res.User,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r)
	if err := h.service.Logout(r.Context(), token); err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	token := extractToken(r)
	if err := h.service.LogoutAll(r.Context(), token); err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out of all sessions")
}
