// internal/handlers/level_handler.go
package handlers

import (
	"net/http"

	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/service"
	"go_huruf_practice/internal/webutil"
)

type LevelHandler struct {
	service service.LevelService
}

func NewLevelHandler(s service.LevelService) *LevelHandler {
	return &LevelHandler{service: s}
}

// Refresh は POST /api/v1/level/refresh (累計成績からレベルを再計算)
func (h *LevelHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userLevel, err := h.service.Promote(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.UserLevelResponse{
		Level:     userLevel.Level,
		UpdatedAt: userLevel.UpdatedAt,
	})
}

// Get は GET /api/v1/level
func (h *LevelHandler) Get(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	userLevel, err := h.service.GetUserLevel(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.UserLevelResponse{
		Level:     userLevel.Level,
		UpdatedAt: userLevel.UpdatedAt,
	})
}
