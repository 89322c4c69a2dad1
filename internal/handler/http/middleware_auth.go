package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-fleet-drivers/internal/app"
	"github.com/MKhiriev/go-fleet-drivers/internal/logger"
	"github.com/MKhiriev/go-fleet-drivers/internal/service"
	"github.com/MKhiriev/go-fleet-drivers/internal/utils"
)

const bearerScheme = "Bearer"

// auth admits requests carrying "Authorization: Bearer <token>" with a token
// accepted by [service.AuthService.ParseToken]. The driver id claim is put in
// the request context under [utils.DriverIDCtxKey].
//
// Every rejection is a 401. Header problems are reported with the header
// error text, an expired token with [app.MsgTokenIsExpired] and any other
// token failure with [app.MsgUnauthorized].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("authorization header rejected")
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			msg := app.MsgUnauthorized
			if errors.Is(err, service.ErrTokenIsExpired) {
				msg = app.MsgTokenIsExpired
			}
			log.Err(err).Msg("token rejected")
			writeError(w, msg, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.DriverIDCtxKey, token.DriverID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// apiKeyAuth admits only requests whose h.apiKeyHeader value is one of the
// configured API keys.
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.services.APIKeyService.VerifyAPIKey(r.Context(), r.Header.Get(h.apiKeyHeader)); err != nil {
			logger.FromRequest(r).Err(err).Str("header", h.apiKeyHeader).Msg("request rejected")
			writeError(w, app.MsgInvalidAPIKey, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// bearerToken returns the token part of an "Authorization" header value.
// The scheme is matched case-insensitively and the value must have exactly
// two space separated parts.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) || strings.Contains(token, " ") {
		return "", ErrInvalidAuthorizationHeader
	}
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
