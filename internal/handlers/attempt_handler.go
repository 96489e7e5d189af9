// internal/handlers/attempt_handler.go
package handlers

import (
	"errors"
	"net/http"

	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/service"
	"go_huruf_practice/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type AttemptHandler struct {
	service service.AttemptService
}

func NewAttemptHandler(s service.AttemptService) *AttemptHandler {
	return &AttemptHandler{service: s}
}

// RecordAttempt は POST /api/v1/attempts (正誤確定済みの試行を記録)
func (h *AttemptHandler) RecordAttempt(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.RecordAttemptRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_BODY", "リクエストボディが不正です。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	attempt, err := h.service.RecordAttempt(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, attempt)
}

// SubmitPractice は POST /api/v1/attempts/practice (録音提出、採点は Evaluator が行う)
func (h *AttemptHandler) SubmitPractice(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.SubmitPracticeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, model.NewAppError("INVALID_BODY", "リクエストボディが不正です。", "", model.ErrInvalidInput))
		return
	}
	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			webutil.HandleError(w, logger, webutil.NewValidationErrorResponse(validationErrors))
			return
		}
		webutil.HandleError(w, logger, err)
		return
	}

	attempt, err := h.service.SubmitPractice(r.Context(), userID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusCreated, attempt)
}

// ListLetters は GET /api/v1/letters
func (h *AttemptHandler) ListLetters(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	letters, err := h.service.ListLetters(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, letters)
}
