package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/logx"
)

// Token roles.
const (
	RoleStaff  = "staff"
	RoleDriver = "driver"
)

var signingMethod = jwt.SigningMethodHS256

// Claims are the bearer token claims. Tokens are issued by the identity service.
type Claims struct {
	Role    string `json:"role"`
	StoreID string `json:"store_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the verified caller.
type Identity struct {
	Subject string
	Role    string
	StoreID uuid.UUID
	Email   string
	Name    string
}

// DriverID returns the subject as a driver id for driver tokens.
func (i Identity) DriverID() (uuid.UUID, bool) {
	if i.Role != RoleDriver {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(i.Subject)
	return id, err == nil
}

// Actor maps the caller onto the transition actor.
func (i Identity) Actor() domain.Actor {
	if id, ok := i.DriverID(); ok {
		name := i.Name
		if name == "" {
			name = i.Subject
		}
		return domain.DriverActor(id, name)
	}
	label := i.Email
	if label == "" {
		label = i.Subject
	}
	return domain.StaffActor(label)
}

type identityKey struct{}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the caller set by Authenticator.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Authenticator verifies HS256 bearer tokens.
type Authenticator struct {
	secret []byte
	issuer string
	logger logx.Logger
	now    func() time.Time
}

// NewAuthenticator fails on an empty secret: the API never runs unauthenticated.
func NewAuthenticator(secret, issuer string, logger logx.Logger) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer, logger: logger, now: time.Now}, nil
}

// WithClock overrides the time used for exp/nbf checks.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// Parse verifies token and returns the caller.
func (a *Authenticator) Parse(token string) (Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...); err != nil {
		return Identity{}, err
	}

	id := Identity{Subject: claims.Subject, Role: claims.Role, Email: claims.Email, Name: claims.Name}
	switch claims.Role {
	case RoleStaff:
		storeID, err := uuid.Parse(claims.StoreID)
		if err != nil {
			return Identity{}, fmt.Errorf("staff token without store: %w", err)
		}
		id.StoreID = storeID
	case RoleDriver:
		if _, ok := id.DriverID(); !ok {
			return Identity{}, errors.New("driver token subject is not a driver id")
		}
	default:
		return Identity{}, fmt.Errorf("unknown role %q", claims.Role)
	}
	return id, nil
}

// Middleware rejects requests without a valid bearer token.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			token, found := cutBearer(raw)
			if !found || token == "" {
				deny(w, http.StatusUnauthorized, "missing credentials")
				return
			}
			id, err := a.Parse(token)
			if err != nil {
				a.logger.Warn("token rejected",
					logx.String("event", "auth_failed"),
					logx.String("path", r.URL.Path),
					logx.Err(err),
				)
				deny(w, http.StatusUnauthorized, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

// RequireRole lets only callers with role through.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			if !ok || id.Role != role {
				deny(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStore checks that the staff token belongs to the store named by the URL parameter.
func RequireStore(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFrom(r.Context())
			storeID, err := uuid.Parse(chi.URLParam(r, param))
			if err != nil {
				deny(w, http.StatusBadRequest, "invalid store id")
				return
			}
			if !ok || id.StoreID != storeID {
				deny(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func cutBearer(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"error":"`+msg+`"}`)
}
