package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// callerUIDKey is the echo context key holding the authenticated user ID.
const callerUIDKey = "callerUID"

// JWTAuth returns middleware that authenticates requests using a Bearer token
// signed with HS256. The token's "uid" claim identifies the caller and is
// stored in the request context for handlers to read via CallerUID.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			uid, err := parseCallerUID(ctx.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			ctx.Set(callerUIDKey, uid)
			return next(ctx)
		}
	}
}

// CallerUID returns the authenticated user ID stored by JWTAuth.
// Returns an empty string for unauthenticated requests.
func CallerUID(ctx echo.Context) string {
	uid, _ := ctx.Get(callerUIDKey).(string)
	return uid
}

func parseCallerUID(header string, secret []byte) (string, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("token has no uid claim")
	}

	return uid, nil
}
