// internal/handlers/attempt_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_huruf_practice/internal/handlers"
	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/service/mocks"
)

func boolPtr(b bool) *bool { return &b }

func TestAttemptHandler_RecordAttempt(t *testing.T) {
	// --- セットアップ ---
	testUserID := uuid.New()

	mockAttemptService := mocks.NewMockAttemptService(t)
	attemptHandler := handlers.NewAttemptHandler(mockAttemptService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware) // 開発用認証ミドルウェア
	router.Post("/api/v1/attempts", attemptHandler.RecordAttempt)
	// ------------------

	validReqBody := model.RecordAttemptRequest{
		TargetLetter: "ا",
		Correct:      boolPtr(true),
	}
	expectedAttempt := &model.Attempt{
		AttemptID:      1,
		UserID:         testUserID,
		TargetLetterID: 1,
		Correct:        true,
		CreatedAt:      time.Now().UTC(),
	}

	tests := []struct {
		name           string
		userID         *uuid.UUID
		body           interface{}
		setupMock      func()
		expectedStatus int
		expectError    bool
	}{
		{
			name:   "Success - Valid request",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockAttemptService.On("RecordAttempt", mock.AnythingOfType("*context.valueCtx"), testUserID, &validReqBody).
					Return(expectedAttempt, nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Fail - Missing user ID header",
			userID:         nil,
			body:           validReqBody,
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusForbidden,
			expectError:    true,
		},
		{
			name:           "Fail - Validation error (correct missing)",
			userID:         &testUserID,
			body:           model.RecordAttemptRequest{TargetLetter: "ا"}, // correct がない
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:           "Fail - Validation error (target_letter missing)",
			userID:         &testUserID,
			body:           map[string]interface{}{"correct": true},
			setupMock:      func() { /* Serviceは呼ばれない */ },
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
		{
			name:   "Fail - Unknown letter from service",
			userID: &testUserID,
			body:   validReqBody,
			setupMock: func() {
				mockAttemptService.On("RecordAttempt", mock.AnythingOfType("*context.valueCtx"), testUserID, &validReqBody).
					Return(nil, model.NewAppError("UNKNOWN_LETTER", "指定された文字はカタログに存在しません。", "target_letter", model.ErrUnknownLetter)).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectError:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMock()

			req := createRequest(t, "POST", "/api/v1/attempts", tc.body, tc.userID)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectError {
				var errResp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error.Code)
			} else {
				var got model.Attempt
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, expectedAttempt.AttemptID, got.AttemptID)
				assert.Equal(t, expectedAttempt.TargetLetterID, got.TargetLetterID)
			}
		})
	}
}

func TestAttemptHandler_SubmitPractice(t *testing.T) {
	testUserID := uuid.New()

	mockAttemptService := mocks.NewMockAttemptService(t)
	attemptHandler := handlers.NewAttemptHandler(mockAttemptService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Post("/api/v1/attempts/practice", attemptHandler.SubmitPractice)

	validReqBody := model.SubmitPracticeRequest{
		TargetLetter: "ب",
	}
	confidence := 1.0
	expectedAttempt := &model.Attempt{
		AttemptID:      2,
		UserID:         testUserID,
		TargetLetterID: 2,
		Correct:        true,
		Confidence:     &confidence,
		CreatedAt:      time.Now().UTC(),
	}

	t.Run("Success - Practice submission is scored and recorded", func(t *testing.T) {
		mockAttemptService.On("SubmitPractice", mock.AnythingOfType("*context.valueCtx"), testUserID, &validReqBody).
			Return(expectedAttempt, nil).Once()

		req := createRequest(t, "POST", "/api/v1/attempts/practice", validReqBody, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got model.Attempt
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.True(t, got.Correct)
		require.NotNil(t, got.Confidence)
		assert.Equal(t, 1.0, *got.Confidence)
	})

	t.Run("Fail - Empty target letter", func(t *testing.T) {
		req := createRequest(t, "POST", "/api/v1/attempts/practice", model.SubmitPracticeRequest{}, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAttemptHandler_ListLetters(t *testing.T) {
	testUserID := uuid.New()

	mockAttemptService := mocks.NewMockAttemptService(t)
	attemptHandler := handlers.NewAttemptHandler(mockAttemptService)
	router := chi.NewRouter()
	router.Use(middleware.DevUserContextMiddleware)
	router.Get("/api/v1/letters", attemptHandler.ListLetters)

	t.Run("Success - Catalog returned in order", func(t *testing.T) {
		letters := []*model.Letter{
			{LetterID: 1, Ar: "ا", En: "alef", OrderIndex: 1},
			{LetterID: 2, Ar: "ب", En: "ba", OrderIndex: 2},
		}
		mockAttemptService.On("ListLetters", mock.AnythingOfType("*context.valueCtx")).
			Return(letters, nil).Once()

		req := createRequest(t, "GET", "/api/v1/letters", nil, &testUserID)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []*model.Letter
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "ا", got[0].Ar)
	})
}
