package middleware

import (
	"errors"
	"strings"

	"terminal-terrace/mp-article/internal/dto"
	"terminal-terrace/mp-article/pkg/authsdk"
	"terminal-terrace/mp-article/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseToken 从 cookie 或 Authorization header 中解析 token
func parseToken(c *gin.Context, secret string) (*authsdk.UserContext, error) {
	// 优先从 cookie 中获取 access_token
	tokenString, err := c.Cookie("access_token")
	if err != nil || tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			return nil, errors.New("未提供认证令牌")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return nil, errors.New("认证格式错误")
		}
		tokenString = authsdk.BearerToken(authHeader)
	}

	user, err := authsdk.ParseToken(tokenString, secret)
	if err != nil {
		if errors.Is(err, authsdk.ErrExpiredToken) {
			return nil, errors.New("认证令牌已过期")
		}
		return nil, errors.New("无效的认证令牌")
	}
	return user, nil
}

// JWTAuth JWT 认证中间件（必需认证）
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := parseToken(c, secret)
		if err != nil {
			dto.AbortWithError(c, response.NewBusinessError(
				response.WithErrorCode(response.Unauthorized),
				response.WithErrorMessage(err.Error()),
			))
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", user.UserID)
		c.Set("username", user.Username)
		c.Set("email", user.Email)
		c.Set("user_role", user.Role)
		c.Next()
	}
}
