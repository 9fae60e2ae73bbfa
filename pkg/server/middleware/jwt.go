package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/audit"
	"github.com/doodlesbykumbi/drugbank-in-go/pkg/identity"
)

// Issuer is the iss claim of tokens minted by IssueToken.
const Issuer = "drugbankctl"

// JWTAuthenticator is middleware that validates HS256 bearer tokens
type JWTAuthenticator struct {
	secret []byte
	now    func() time.Time
}

// NewJWTAuthenticator creates a new JWT authenticator middleware
func NewJWTAuthenticator(secret string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret), now: time.Now}
}

// IssueToken signs a token for subject valid for ttl.
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Verify parses and validates a raw token, returning its claims. Claims of
// an expired token are returned with the error, since its signature checked
// out; any other failure returns nil claims.
func (j *JWTAuthenticator) Verify(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return claims, err
	}
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func unauthorized(w http.ResponseWriter, r *http.Request, subject, message string) {
	audit.Log(audit.AuthenticateEvent{
		Subject:      subject,
		ClientIP:     identity.RemoteIP(r).String(),
		ErrorMessage: message,
	})
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(message))
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			unauthorized(w, r, "", "Authorization missing")
			return
		}

		scheme, raw, found := strings.Cut(authHeader, " ")
		raw = strings.TrimSpace(raw)
		if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
			unauthorized(w, r, "", "Malformed authorization header")
			return
		}

		claims, err := j.Verify(raw)
		if err != nil {
			subject := ""
			if claims != nil {
				subject = claims.Subject
			}
			if errors.Is(err, jwt.ErrTokenExpired) {
				unauthorized(w, r, subject, "Token expired")
				return
			}
			unauthorized(w, r, subject, "Invalid token")
			return
		}

		id := identity.FromClaims(claims).WithRemoteIP(identity.RemoteIP(r))
		r = r.WithContext(identity.Set(r.Context(), id))

		next.ServeHTTP(w, r)
	})
}
