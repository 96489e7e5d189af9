// internal/service/auth_service_test.go
package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go_huruf_practice/internal/config"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(t *testing.T) (AuthService, *config.Config) {
	t.Helper()
	db := setupMigratedTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:    "test-secret-key",
			ExpiresHours: 1,
		},
	}
	svc := NewAuthService(db, repository.NewGormUserRepository(), repository.NewGormSessionRepository(), cfg)
	return svc, cfg
}

// --- Test Register / Login ---

func Test_authService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, cfg := newTestAuthService(t)

	t.Run("正常系: 登録とログインのラウンドトリップ", func(t *testing.T) {
		user, err := svc.Register(ctx, &model.RegisterRequest{
			DisplayName: "ahmad",
			Password:    "s3cure-password",
		})
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, uuid.Nil, user.UserID)

		// 平文は保存されず、bcryptハッシュで照合できる
		assert.NotEqual(t, "s3cure-password", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cure-password")))

		resp, err := svc.Login(ctx, &model.LoginRequest{
			DisplayName: "ahmad",
			Password:    "s3cure-password",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)

		// トークンのsubjectは登録ユーザーのID
		claims := &model.JWTCustomClaims{}
		_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(cfg.JWT.SecretKey), nil
		})
		require.NoError(t, err)
		assert.Equal(t, user.UserID.String(), claims.Subject)
		assert.Equal(t, config.AppName, claims.Issuer)
	})

	t.Run("異常系: 表示名の重複はDUPLICATE_NAME", func(t *testing.T) {
		_, err := svc.Register(ctx, &model.RegisterRequest{
			DisplayName: "ahmad",
			Password:    "another-password",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "DUPLICATE_NAME", appErr.Detail.Code)
	})

	t.Run("異常系: パスワード不一致はINVALID_CREDENTIALS", func(t *testing.T) {
		_, err := svc.Login(ctx, &model.LoginRequest{
			DisplayName: "ahmad",
			Password:    "wrong-password",
		})
		require.Error(t, err)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
	})

	t.Run("異常系: 存在しないユーザーも同じメッセージで失敗する", func(t *testing.T) {
		_, err := svc.Login(ctx, &model.LoginRequest{
			DisplayName: "nobody",
			Password:    "whatever",
		})
		require.Error(t, err)

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		// ユーザーの有無を区別させない
		assert.Equal(t, "INVALID_CREDENTIALS", appErr.Detail.Code)
	})
}

// --- Test DeleteAccount ---

func Test_authService_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	db := setupMigratedTestDB(t)
	cfg := &config.Config{JWT: config.JWTConfig{SecretKey: "test-secret-key", ExpiresHours: 1}}
	sessionRepo := repository.NewGormSessionRepository()
	svc := NewAuthService(db, repository.NewGormUserRepository(), sessionRepo, cfg)

	user, err := svc.Register(ctx, &model.RegisterRequest{DisplayName: "to-delete", Password: "password1"})
	require.NoError(t, err)

	// 関連データを作っておく (試行・レベル・ツアーフラグ)
	attempt := &model.Attempt{
		UserID:         user.UserID,
		TargetLetterID: 1,
		Correct:        true,
		CreatedAt:      time.Now().UTC(),
	}
	require.NoError(t, db.Create(attempt).Error)
	require.NoError(t, db.Create(&model.UserLevel{
		UserID: user.UserID, Level: 1, UpdatedAt: time.Now().UTC(),
	}).Error)
	require.NoError(t, sessionRepo.Set(ctx, db, fmt.Sprintf("tour:%s:active", user.UserID), "1"))

	t.Run("正常系: アカウントと関連データがすべて消える", func(t *testing.T) {
		require.NoError(t, svc.DeleteAccount(ctx, user.UserID))

		var userCount, attemptCount, levelCount int64
		require.NoError(t, db.Model(&model.User{}).Where("id = ?", user.UserID).Count(&userCount).Error)
		require.NoError(t, db.Model(&model.Attempt{}).Where("user_id = ?", user.UserID).Count(&attemptCount).Error)
		require.NoError(t, db.Model(&model.UserLevel{}).Where("user_id = ?", user.UserID).Count(&levelCount).Error)
		assert.Zero(t, userCount)
		assert.Zero(t, attemptCount, "attempts should be removed by FK cascade")
		assert.Zero(t, levelCount, "user level should be removed by FK cascade")

		_, err := sessionRepo.Get(ctx, db, fmt.Sprintf("tour:%s:active", user.UserID))
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("異常系: 存在しないユーザーの削除はUSER_NOT_FOUND", func(t *testing.T) {
		err := svc.DeleteAccount(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test GetUser ---

func Test_authService_GetUser(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(ctx, &model.RegisterRequest{DisplayName: "reader", Password: "password1"})
	require.NoError(t, err)

	t.Run("正常系: 登録済みユーザーが取得できる", func(t *testing.T) {
		got, err := svc.GetUser(ctx, user.UserID)
		require.NoError(t, err)
		assert.Equal(t, "reader", got.DisplayName)
	})

	t.Run("異常系: 未知のIDはUSER_NOT_FOUND", func(t *testing.T) {
		_, err := svc.GetUser(ctx, uuid.New())
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
