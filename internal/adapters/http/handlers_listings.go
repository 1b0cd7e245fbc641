package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/waytopg/accommodation-service/internal/application"
)

func (h *Handler) listAccommodations(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListAccommodations(r.Context())
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"accommodations": items})
}

func (h *Handler) getAccommodation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Accommodation not found")
		return
	}
	item, err := h.service.GetAccommodation(r.Context(), id)
	if err != nil {
		status, msg := mapDomainError(err)
		if status == http.StatusNotFound {
			msg = "Accommodation not found"
		}
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"accommodation": item})
}

func (h *Handler) createAccommodation(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	var req application.CreateAccommodationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.CreateAccommodation(r.Context(), user.UserID, req)
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"accommodation": item})
}

func (h *Handler) listOwnerAccommodations(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	items, err := h.service.ListOwnerAccommodations(r.Context(), user.UserID)
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"accommodations": items})
}

func (h *Handler) createBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	var req application.CreateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), user.UserID, req)
	if err != nil {
		status, msg := mapDomainError(err)
		if status == http.StatusNotFound {
			msg = "Accommodation not found"
		}
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"booking": booking})
}

func (h *Handler) listBookings(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	bookings, err := h.service.ListStudentBookings(r.Context(), user.UserID)
	if err != nil {
		status, msg := mapDomainError(err)
		writeError(w, status, msg)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"bookings": bookings})
}
