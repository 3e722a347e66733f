package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bandsite-api/config"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var oidcVerifier *oidc.IDTokenVerifier

// InitOIDC builds the optional second verifier for externally issued ID
// tokens. Called at boot only when AUTH_OIDC_ISSUER is configured.
func InitOIDC(ctx context.Context, issuer, clientID string) error {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return fmt.Errorf("oidc provider discovery failed: %w", err)
	}
	oidcVerifier = provider.Verifier(&oidc.Config{ClientID: clientID})
	return nil
}

// AuthMiddleware guards the write routes. It accepts locally issued HS256
// tokens and, when an OIDC verifier is configured, externally issued ID
// tokens. Handlers behind it only ever see already-authorized requests.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtKey := []byte(config.C.JWTSecret)
		if len(jwtKey) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "JWT secret not configured"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Bearer token malformed"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtKey, nil
		})
		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if email, ok := claims["email"].(string); ok {
					c.Set("email", email)
				}
				if role, ok := claims["role"].(string); ok {
					c.Set("role", role)
				}
			}
			c.Next()
			return
		}

		// Not one of ours; try the external verifier if one is configured.
		if oidcVerifier != nil {
			idToken, verr := oidcVerifier.Verify(c.Request.Context(), tokenString)
			if verr == nil {
				var claims struct {
					Email string `json:"email"`
				}
				if cerr := idToken.Claims(&claims); cerr == nil && claims.Email != "" {
					c.Set("email", claims.Email)
				}
				c.Set("sub", idToken.Subject)
				c.Next()
				return
			}
			slog.Debug("oidc verification failed", "error", verr)
		}

		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
		c.Abort()
	}
}
