// internal/handlers/tour_handler.go
package handlers

import (
	"net/http"

	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/service"
	"go_huruf_practice/internal/webutil"
)

type TourHandler struct {
	service service.TourService
}

func NewTourHandler(s service.TourService) *TourHandler {
	return &TourHandler{service: s}
}

// Start は POST /api/v1/tour/start
func (h *TourHandler) Start(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.Start(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

// Next は POST /api/v1/tour/next
func (h *TourHandler) Next(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.Next(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

// MarkPracticeDone は POST /api/v1/tour/practice-done
func (h *TourHandler) MarkPracticeDone(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.MarkPracticeDone(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}

// Finish は POST /api/v1/tour/finish
func (h *TourHandler) Finish(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.Finish(r.Context(), userID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Current は GET /api/v1/tour (アプリ起動時のリハイドレート用)
func (h *TourHandler) Current(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.service.Current(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state)
}
