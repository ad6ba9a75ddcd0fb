package middleware

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/jwt"

	"FindrHealth/pkg/token"
)

const (
	IdentityKey = token.IdentityKey
)

var (
	authMiddleware *jwt.HertzJWTMiddleware
)

func initAuthMiddleware() error {
	sharedGenerator := token.GetGenerator()
	if sharedGenerator == nil {
		return fmt.Errorf("token generator not initialized, call token.Init() first")
	}

	authMiddleware = &jwt.HertzJWTMiddleware{
		Realm:       "FindrHealth API",
		Key:         sharedGenerator.Key,
		Timeout:     sharedGenerator.Timeout,
		MaxRefresh:  sharedGenerator.MaxRefresh,
		IdentityKey: sharedGenerator.IdentityKey,
		TimeFunc:    sharedGenerator.TimeFunc,

		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			sid, ok := claims[IdentityKey].(string)
			if !ok {
				return nil
			}
			// The verified email rides along so handlers can cross-check
			// ownership without another session load.
			if email, ok := claims[token.EmailKey].(string); ok {
				c.Set(token.EmailKey, email)
			}
			return sid
		},

		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"error": map[string]interface{}{
					"code":    "UNAUTHORIZED",
					"message": message,
				},
			})
		},

		TokenLookup:   "header: Authorization, query: token, cookie: jwt",
		TokenHeadName: "Bearer",
	}

	return nil
}

func AuthMiddleware() app.HandlerFunc {
	if authMiddleware == nil {
		panic("AuthMiddleware not initialized, call Init() first")
	}
	return authMiddleware.MiddlewareFunc()
}

// GetSessionID extracts the onboarding session ID the JWT was issued for.
func GetSessionID(ctx context.Context, c *app.RequestContext) (string, bool) {
	sid, exists := c.Get(IdentityKey)
	if !exists {
		return "", false
	}

	id, ok := sid.(string)
	if !ok {
		return "", false
	}

	return id, true
}

// GetSessionEmail extracts the verified email claim, if present.
func GetSessionEmail(ctx context.Context, c *app.RequestContext) (string, bool) {
	val, exists := c.Get(token.EmailKey)
	if !exists {
		return "", false
	}

	email, ok := val.(string)
	return email, ok
}
