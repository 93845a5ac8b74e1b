package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MicahParks/jwkset"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/partsdb-backend/internal/domain"
)

// JWKSVerifier validates RS256 tokens issued by an external identity
// provider, using keys fetched from its JWKS endpoint.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	issuer string
	groups GroupNames
	leeway time.Duration
}

// NewJWKSVerifier starts a background-refreshed JWKS storage for url.
// The first fetch may fail; the verifier starts anyway and retries on refresh.
func NewJWKSVerifier(ctx context.Context, url, issuer string, refresh time.Duration, groups GroupNames, logger *slog.Logger) (*JWKSVerifier, error) {
	storage, err := jwkset.NewStorageFromHTTP(url, jwkset.HTTPClientStorageOptions{
		Client:                    &http.Client{Timeout: 10 * time.Second},
		Ctx:                       ctx,
		NoErrorReturnFirstHTTPReq: true,
		RefreshInterval:           refresh,
		RefreshErrorHandler: func(_ context.Context, err error) {
			logger.Error("jwks refresh failed", slog.String("url", url), slog.String("error", err.Error()))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("jwks storage: %w", err)
	}

	k, err := keyfunc.New(keyfunc.Options{Ctx: ctx, Storage: storage})
	if err != nil {
		return nil, fmt.Errorf("jwks keyfunc: %w", err)
	}

	return NewJWKSVerifierWithKeyfunc(k, issuer, groups), nil
}

// NewJWKSVerifierWithKeyfunc builds a verifier around an existing keyfunc.
func NewJWKSVerifierWithKeyfunc(kf keyfunc.Keyfunc, issuer string, groups GroupNames) *JWKSVerifier {
	return &JWKSVerifier{
		jwks:   kf,
		issuer: issuer,
		groups: groups,
		leeway: 30 * time.Second,
	}
}

// ValidateToken parses and validates an RS256 token against the JWKS.
func (v *JWKSVerifier) ValidateToken(ctx context.Context, tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, fmt.Errorf("token is empty")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &accessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.KeyfuncCtx(ctx), opts...)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token")
	}

	return claims.actor(v.groups)
}
