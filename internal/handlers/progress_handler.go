// internal/handlers/progress_handler.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/service"
	"go_huruf_practice/internal/webutil"
)

type ProgressHandler struct {
	service service.ProgressService
}

func NewProgressHandler(s service.ProgressService) *ProgressHandler {
	return &ProgressHandler{service: s}
}

// LetterStats は GET /api/v1/progress/letters
func (h *ProgressHandler) LetterStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.LetterStats(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, stats)
}

// Totals は GET /api/v1/progress/totals
func (h *ProgressHandler) Totals(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	totals, err := h.service.Totals(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, totals)
}

// WeeklySeries は GET /api/v1/progress/weekly?letters=1,2,3
func (h *ProgressHandler) WeeklySeries(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	// letters クエリパラメータ (カンマ区切りの文字ID) で対象を絞り込める
	var letterIDs []int
	if raw := r.URL.Query().Get("letters"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY", "lettersパラメータの形式が正しくありません。", "letters", model.ErrInvalidInput))
				return
			}
			letterIDs = append(letterIDs, id)
		}
	}

	series, err := h.service.WeeklySeries(r.Context(), userID, letterIDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, series)
}

// RecentAttempts は GET /api/v1/progress/recent?limit=20
func (h *ProgressHandler) RecentAttempts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			webutil.HandleError(w, logger, model.NewAppError("INVALID_QUERY", "limitパラメータの形式が正しくありません。", "limit", model.ErrInvalidInput))
			return
		}
		limit = parsed
	}

	attempts, err := h.service.RecentAttempts(r.Context(), userID, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, attempts)
}
