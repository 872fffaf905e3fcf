package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/istvank-dev/Project-Tracking-Software/internal/models"
	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
)

const sessionTTL = 72 * time.Hour

// AuthService is the identity collaborator: it registers users, issues
// session tokens and resolves "who is the current caller". Revoked
// tokens are tracked in Redis keyed by JTI.
type AuthService struct {
	users     *repository.UserRepository
	rdb       *redis.Client
	jwtSecret string
}

func NewAuthService(users *repository.UserRepository, rdb *redis.Client, jwtSecret string) *AuthService {
	if users == nil {
		panic("user repository is required")
	}
	if jwtSecret == "" {
		panic("jwt secret is required")
	}
	return &AuthService{users: users, rdb: rdb, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.generateToken(user.ID)
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"jti": uuid.New().String(),
		"exp": time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify resolves a session token to a user id. Revocation lookups are
// fail-open: an unreachable revocation store must not lock every user
// out of the application.
func (s *AuthService) Verify(ctx context.Context, tokenStr string) (string, error) {
	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return "", err
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	if jti, ok := claims["jti"].(string); ok && s.rdb != nil {
		n, err := s.rdb.Exists(ctx, revocationKey(jti)).Result()
		if err != nil {
			log.Printf("revocation check failed, allowing token: %v", err)
		} else if n > 0 {
			return "", ErrInvalidToken
		}
	}
	return sub, nil
}

// Logout revokes the token for the remainder of its lifetime. Loss of
// the revocation entry only shortens the revocation, so failures are
// logged and swallowed.
func (s *AuthService) Logout(ctx context.Context, tokenStr string) {
	claims, err := s.parseToken(tokenStr)
	if err != nil {
		return
	}
	jti, ok := claims["jti"].(string)
	if !ok || s.rdb == nil {
		return
	}
	ttl := sessionTTL
	if exp, ok := claims["exp"].(float64); ok {
		if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.rdb.Set(ctx, revocationKey(jti), "1", ttl).Err(); err != nil {
		log.Printf("token revocation failed: %v", err)
	}
}

func revocationKey(jti string) string {
	return "session:revoked:" + jti
}

func (s *AuthService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
