package auth

import (
	"context"
	"net/http"
	"strings"
)

// Identity is a signed-in user as reported by the identity provider.
type Identity struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

type ctxKey struct{}

func NewContext(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the identity stored in ctx or nil for anonymous requests.
func FromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(ctxKey{}).(*Identity)
	return id
}

// HeaderIdentifier reads the identity forwarded by an authenticating proxy.
type HeaderIdentifier struct {
	EmailHeader   string
	SubjectHeader string
}

// Identify returns nil when the request carries no email.
func (h HeaderIdentifier) Identify(r *http.Request) *Identity {
	email := strings.TrimSpace(r.Header.Get(h.EmailHeader))
	if email == "" {
		return nil
	}

	subject := strings.TrimSpace(r.Header.Get(h.SubjectHeader))
	if subject == "" {
		subject = email
	}

	return &Identity{
		Email:   email,
		Subject: subject,
	}
}
