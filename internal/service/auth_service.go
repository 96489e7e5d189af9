package service

import (
	"context"
	"errors"
	"time"

	"go_huruf_practice/internal/config"
	"go_huruf_practice/internal/middleware"
	"go_huruf_practice/internal/model"
	"go_huruf_practice/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService は端末ローカルのアカウント管理 (登録・ログイン・削除) を担当します
type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type authService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	cfg         *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthService {
	return &authService{
		db:          db,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// Register は新しいローカルアカウントを作成します
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 表示名での重複チェック
		_, err := s.userRepo.FindByDisplayName(ctx, tx, req.DisplayName)
		if err == nil {
			logger.Warn("Display name already exists", "display_name", req.DisplayName)
			return model.NewAppError("DUPLICATE_NAME", "その表示名は既に使用されています。", "display_name", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check display name existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// パスワードのハッシュ化
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("Failed to hash password", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "パスワードの処理中にエラーが発生しました。", "", err)
		}

		user := &model.User{
			UserID:       uuid.New(),
			DisplayName:  req.DisplayName,
			PasswordHash: string(hashedPassword),
			CreatedAt:    time.Now().UTC(),
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			// Create内で重複エラーが検知された場合 (レースコンディション対策)
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation", "error", err)
				return model.NewAppError("DUPLICATE_NAME", "その表示名は既に使用されています。", "display_name", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの作成に失敗しました。", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID)
	return newUser, nil
}

// Login は表示名とパスワードを検証し、アクセストークン (JWT) を発行します
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx)

	user, err := s.userRepo.FindByDisplayName(ctx, s.db, req.DisplayName)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// ユーザーの有無を区別させないため、認証失敗と同じメッセージを返す
			return nil, model.NewAppError("INVALID_CREDENTIALS", "表示名またはパスワードが正しくありません。", "", model.ErrForbidden)
		}
		logger.Error("Failed to find user for login", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("INVALID_CREDENTIALS", "表示名またはパスワードが正しくありません。", "", model.ErrForbidden)
	}

	token, err := s.generateAccessToken(user.UserID)
	if err != nil {
		logger.Error("Failed to sign access token", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "トークンの発行に失敗しました。", "", err)
	}

	logger.Info("User logged in", "user_id", user.UserID)
	return &model.LoginResponse{AccessToken: token}, nil
}

func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Failed to fetch user", "user_id", userID, "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "ユーザーの取得に失敗しました。", "", err)
	}
	return user, nil
}

// DeleteAccount はアカウントと関連データを削除します。
// attempts / user_levels は外部キーのカスケードで、ツアーフラグは接頭辞削除で消す。
func (s *authService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Delete(ctx, tx, userID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("USER_NOT_FOUND", "ユーザーが見つかりません。", "", model.ErrNotFound)
			}
			logger.Error("Failed to delete user", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの削除に失敗しました。", "", err)
		}
		if err := s.sessionRepo.RemoveByPrefix(ctx, tx, "tour:"+userID.String()); err != nil {
			logger.Error("Failed to clear session flags", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "アカウントの削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Account deleted")
	return nil
}

func (s *authService) generateAccessToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := model.JWTCustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.AppName,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWT.ExpiresHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.SecretKey))
}
