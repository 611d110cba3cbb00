package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"crochetCorner/pkg/logger"
	"crochetCorner/pkg/utils"

	jsonres "crochetCorner/pkg/response"

	"github.com/labstack/echo/v4"
)

// SessionValidator checks a bearer token against the Redis session store.
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (string, error)
}

// AuthMiddleware requires a valid, unrevoked bearer token and puts
// user_id, role and token on the echo context.
func AuthMiddleware(validator SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, token, ok := bearerClaims(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Missing or invalid authorization header", nil,
				))
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Token expired", nil,
				))
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			userID, err := validator.ValidateSession(ctx, token)
			if err != nil {
				logger.Error("session not found in redis", "error", err)
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Token expired or invalid", nil,
				))
			}

			if userID != claims.UserID {
				logger.Error("user ID mismatch between JWT and session")
				return c.JSON(http.StatusUnauthorized, jsonres.Error(
					"UNAUTHORIZED", "Invalid token", nil,
				))
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				logger.Error("invalid user ID in token", "error", err)
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Invalid user ID in token", nil,
				))
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)
			c.Set("token", token)

			return next(c)
		}
	}
}

// OptionalAuthMiddleware sets user_id when a valid bearer token is present
// and passes through untouched otherwise. Interaction tracking hangs off
// this: anonymous visitors keep firing the same tracking calls, the
// recommender just skips them.
func OptionalAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, token, ok := bearerClaims(c)
			if !ok {
				return next(c)
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || time.Now().After(expAt.Time) {
				return next(c)
			}

			userIDUint, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil {
				return next(c)
			}

			c.Set("user_id", uint(userIDUint))
			c.Set("role", claims.Role)
			c.Set("token", token)

			return next(c)
		}
	}
}

func bearerClaims(c echo.Context) (*utils.JWTClaims, string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, "", false
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, "", false
	}

	claims, err := utils.ParseJWT(tokenParts[1])
	if err != nil {
		return nil, "", false
	}

	return claims, tokenParts[1], true
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || strings.ToUpper(role) != "ADMIN" {
				return c.JSON(http.StatusForbidden, jsonres.Error(
					"FORBIDDEN", "Admin access required", nil,
				))
			}

			return next(c)
		}
	}
}
