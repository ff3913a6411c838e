package authsdk

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNoToken      = errors.New("no token provided")
)

// Claims 由认证服务签发，本服务只做校验
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// UserContext 校验通过后的调用方信息
type UserContext struct {
	UserID   int
	Username string
	Email    string
	Role     string
}

func (u *UserContext) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}

// Verifier 持有签名密钥，只接受 HMAC 签名
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier leeway 为过期时间允许的时钟偏差
func NewVerifier(secret string, leeway time.Duration) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{
				jwt.SigningMethodHS256.Alg(),
				jwt.SigningMethodHS384.Alg(),
				jwt.SigningMethodHS512.Alg(),
			}),
			jwt.WithLeeway(leeway),
		),
	}
}

func (v *Verifier) Verify(tokenString string) (*UserContext, error) {
	if tokenString == "" {
		return nil, ErrNoToken
	}
	if len(v.secret) == 0 {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	return &UserContext{
		UserID:   claims.UserID,
		Username: claims.Username,
		Email:    claims.Email,
		Role:     claims.Role,
	}, nil
}

// ParseToken 使用默认配置（无时钟偏差）校验 token
func ParseToken(tokenString, secret string) (*UserContext, error) {
	return NewVerifier(secret, 0).Verify(tokenString)
}
