package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apierrors "github.com/petershoe2005/GatherU-sub000/internal/errors"
	logctx "github.com/petershoe2005/GatherU-sub000/pkg/log"
)

// AuthOptions — параметры проверки access-токенов зрителя.
type AuthOptions struct {
	Secret   string
	Issuer   string
	Audience []string
	Leeway   time.Duration
}

// AccessClaims — полезная нагрузка access-токена.
type AccessClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ViewerAuth определяет зрителя по заголовку Authorization.
//
// Поведение:
//   - заголовка нет или схема не Bearer -> аноним, запрос идёт дальше;
//   - Bearer с валидным HS256-токеном -> идентификатор зрителя в контексте;
//   - Bearer с невалидным/просроченным токеном -> 401.
func ViewerAuth(opts AuthOptions) Middleware {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(opts.Leeway),
		jwt.WithExpirationRequired(),
	}
	if opts.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(opts.Issuer))
	}
	if len(opts.Audience) > 0 {
		parserOpts = append(parserOpts, jwt.WithAudience(opts.Audience...))
	}

	parser := jwt.NewParser(parserOpts...)
	secret := []byte(opts.Secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			viewerID, err := parseViewerID(parser, secret, raw)
			if err != nil {
				logctx.From(r.Context()).Warn("viewer_token_rejected",
					slog.String("path", r.URL.Path),
					slog.String("err", err.Error()),
				)
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			ctx := WithViewerID(r.Context(), viewerID)
			ctx = logctx.With(ctx, slog.String("viewer_id", viewerID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "

	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}

func parseViewerID(parser *jwt.Parser, secret []byte, raw string) (string, error) {
	claims := &AccessClaims{}

	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}

	id := strings.TrimSpace(claims.UserID)
	if id == "" {
		id = strings.TrimSpace(claims.Subject)
	}
	if id == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return id, nil
}
