package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/memorybox/backend/internal/config"
	"github.com/memorybox/backend/internal/db"
	"github.com/memorybox/backend/internal/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	minUsernameLength = 3
	minPasswordLength = 8

	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("missing token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenMismatch      = errors.New("token mismatch")
	ErrConflict           = errors.New("conflict")
	ErrNotFound           = errors.New("not found")
	ErrMisconfigured      = errors.New("auth config invalid")
)

type AdminRepo interface {
	CreateAdmin(ctx context.Context, id, username, passwordHash string) (*model.Admin, error)
	CountAdmins(ctx context.Context) (int64, error)
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*model.Admin, error)
	SetRefreshTokenHash(ctx context.Context, id string, hash *string) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	UpdateUsername(ctx context.Context, id, username string) error
}

// AuthService issues and checks the two token classes. Access tokens are
// verified from the signature alone; only the refresh token is revocable, so a
// logged-out access token keeps working until it expires.
type AuthService struct {
	repo       AdminRepo
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	bcryptCost int
	logger     *zap.Logger
	now        func() time.Time
}

type authClaims struct {
	Username  string `json:"username,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Admin        model.AdminPublic
}

func NewAuthService(repo AdminRepo, cfg config.AuthConfig, logger *zap.Logger) (*AuthService, error) {
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	accessTTL := cfg.JWTAccessTTL
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTTL
	}
	refreshTTL := cfg.JWTRefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTTL
	}
	if refreshTTL < accessTTL {
		return nil, fmt.Errorf("%w: JWT_REFRESH_TTL must not be shorter than JWT_ACCESS_TTL", ErrMisconfigured)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuthService{
		repo:       repo,
		jwtSecret:  []byte(cfg.JWTSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		bcryptCost: bcrypt.DefaultCost,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// EnsureAdmin creates the bootstrap admin when the store holds none.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := s.Provision(ctx, username, password); err != nil {
		return err
	}
	s.logger.Warn("bootstrap admin created, change its password", zap.String("username", username))
	return nil
}

// Provision creates a credential record. An existing username yields ErrConflict.
func (s *AuthService) Provision(ctx context.Context, username, password string) (*model.AdminPublic, error) {
	username = strings.TrimSpace(username)
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin, err := s.repo.CreateAdmin(ctx, uuid.NewString(), username, string(hash))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	pub := admin.Public()
	return &pub, nil
}

// Authenticate checks credentials and starts a session. The new refresh token
// replaces whatever was stored before, so earlier refresh tokens stop working.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.signToken(admin.ID, admin.Username, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.signToken(admin.ID, "", tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	hash := hashRefreshToken(refreshToken)
	if err := s.repo.SetRefreshTokenHash(ctx, admin.ID, &hash); err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("admin_id", admin.ID))
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        model.AdminPublic{ID: admin.ID, Username: admin.Username},
	}, nil
}

func (s *AuthService) VerifyAccess(tokenStr string) (*model.AuthAdmin, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.parseToken(tokenStr, tokenTypeAccess)
	if err != nil {
		return nil, err
	}

	return &model.AuthAdmin{
		ID:       claims.Subject,
		Username: claims.Username,
	}, nil
}

// Refresh mints a new access token. The refresh token itself is not rotated:
// it stays valid until a later login supersedes it or logout clears it.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return "", ErrMissingToken
	}

	claims, err := s.parseToken(refreshToken, tokenTypeRefresh)
	if err != nil {
		return "", err
	}

	admin, err := s.repo.GetAdminByID(ctx, claims.Subject)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrTokenMismatch
		}
		return "", err
	}

	if admin.RefreshTokenHash == nil {
		return "", ErrTokenMismatch
	}
	want := *admin.RefreshTokenHash
	got := hashRefreshToken(refreshToken)
	if subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		s.logger.Warn("superseded refresh token presented", zap.String("admin_id", admin.ID))
		return "", ErrTokenMismatch
	}

	return s.signToken(admin.ID, admin.Username, tokenTypeAccess, s.accessTTL)
}

// Invalidate clears the stored refresh token. Calling it twice is fine.
func (s *AuthService) Invalidate(ctx context.Context, adminID string) error {
	if err := s.repo.SetRefreshTokenHash(ctx, adminID, nil); err != nil {
		return err
	}
	s.logger.Info("admin logged out", zap.String("admin_id", adminID))
	return nil
}

func (s *AuthService) GetAdmin(ctx context.Context, adminID string) (*model.AdminPublic, error) {
	admin, err := s.repo.GetAdminByID(ctx, adminID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	pub := admin.Public()
	return &pub, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, adminID, current, next string) error {
	admin, err := s.checkPassword(ctx, adminID, current)
	if err != nil {
		return err
	}
	if err := validateCredentials(admin.Username, next); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, admin.ID, string(hash))
}

func (s *AuthService) ChangeUsername(ctx context.Context, adminID, password, next string) error {
	next = strings.TrimSpace(next)
	admin, err := s.checkPassword(ctx, adminID, password)
	if err != nil {
		return err
	}
	if err := validateCredentials(next, password); err != nil {
		return err
	}

	if err := s.repo.UpdateUsername(ctx, admin.ID, next); err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *AuthService) checkPassword(ctx context.Context, adminID, password string) (*model.Admin, error) {
	admin, err := s.repo.GetAdminByID(ctx, adminID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

func (s *AuthService) signToken(adminID, username, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := authClaims{
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(tokenStr, tokenType string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != tokenType || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func validateCredentials(username, password string) error {
	if len(username) < minUsernameLength || len(username) > 64 {
		return fmt.Errorf("%w: username must be %d-64 characters", ErrInvalidInput, minUsernameLength)
	}
	if len(password) < minPasswordLength || len(password) > 72 {
		return fmt.Errorf("%w: password must be %d-72 characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
