package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"saharaweb/internal/lib/api/response"
	"saharaweb/internal/lib/logger/sl"
	"saharaweb/internal/models"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are issued by the identity service for an authenticated user.
type Claims struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, identity)
}

func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(ctxKey{}).(models.Identity)
	return identity, ok
}

// New verifies HS256 bearer tokens and stores the caller identity in the request
// context. An empty issuer disables the issuer check.
func New(log *slog.Logger, secret []byte, issuer string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		opts := []jwt.ParserOption{
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		}
		if issuer != "" {
			opts = append(opts, jwt.WithIssuer(issuer))
		}
		parser := jwt.NewParser(opts...)

		keyFunc := func(*jwt.Token) (interface{}, error) {
			return secret, nil
		}

		fn := func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				log.Warn("missing bearer token")
				unauthorized(w, r)
				return
			}

			claims := &Claims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				log.Warn("invalid token", sl.Err(err))
				unauthorized(w, r)
				return
			}

			if claims.Namespace == "" || claims.Name == "" {
				log.Warn("token has no identity")
				unauthorized(w, r)
				return
			}

			identity := models.Identity{Namespace: claims.Namespace, Name: claims.Name}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}

		return http.HandlerFunc(fn)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("unauthorized"))
}
