package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"relief-coordination-backend/internal/apperr"
	"relief-coordination-backend/internal/ident"
	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/store"
	"relief-coordination-backend/internal/validate"
)

// Session is what a successful sign-in yields: the authenticated identity
// plus a bearer token.
type Session struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Service implements the email/password identity boundary.
type Service struct {
	store    store.Store
	secret   []byte
	tokenTTL time.Duration
}

// NewService creates the identity service.
func NewService(st store.Store, secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{store: st, secret: []byte(secret), tokenTTL: tokenTTL}
}

func authErr(code string) error {
	return apperr.Auth(code, Message(code))
}

// SignUp registers a new account and returns a signed-in session.
func (s *Service) SignUp(ctx context.Context, email, password, displayName, userType string, termsAgreed bool) (*Session, error) {
	if !validate.Email(email) {
		return nil, authErr(CodeInvalidEmail)
	}
	if len(password) < 6 {
		return nil, authErr(CodeWeakPassword)
	}
	if userType != model.UserTypeOfficer && userType != model.UserTypeGeneral {
		return nil, apperr.Validation("invalid-user-type", "올바르지 않은 사용자 타입입니다.")
	}

	if _, err := s.store.GetUserByEmail(ctx, email); err == nil {
		return nil, authErr(CodeEmailInUse)
	} else if apperr.KindOf(err) != apperr.KindNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Dependency("password-hash-failed", "사용자 생성 중 오류가 발생했습니다.", err)
	}

	user := &model.User{
		UID:          ident.New(ident.PrefixUser),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		UserType:     userType,
		TermsAgreed:  termsAgreed,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.session(user)
}

// SignIn verifies credentials and returns a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, authErr(CodeUserNotFound)
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, authErr(CodeWrongPassword)
	}
	return s.session(user)
}

// GetUser resolves a uid to its account record.
func (s *Service) GetUser(ctx context.Context, uid string) (*model.User, error) {
	return s.store.GetUser(ctx, uid)
}

func (s *Service) session(user *model.User) (*Session, error) {
	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &Session{User: user, Token: token}, nil
}

func (s *Service) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       user.UID,
		"email":     user.Email,
		"user_type": user.UserType,
		"iat":       now.Unix(),
		"exp":       now.Add(s.tokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperr.Dependency("token-sign-failed", "토큰 발급 중 오류가 발생했습니다.", err)
	}
	return signed, nil
}

// ParseToken validates a bearer token and returns the uid it carries.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", authErr(CodeTokenInvalid)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", authErr(CodeTokenInvalid)
	}
	uid, _ := claims["sub"].(string)
	if uid == "" {
		return "", authErr(CodeTokenInvalid)
	}
	return uid, nil
}
