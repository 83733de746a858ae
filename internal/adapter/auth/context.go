package auth

import (
	"context"

	"nova-fund/internal/core/domain"
)

type identitiesKey struct{}

// WithIdentities returns a context in which ids have authorized the
// current call, in addition to any identities already present.
func WithIdentities(ctx context.Context, ids ...domain.Address) context.Context {
	prev, _ := ctx.Value(identitiesKey{}).(map[domain.Address]struct{})
	set := make(map[domain.Address]struct{}, len(prev)+len(ids))
	for id := range prev {
		set[id] = struct{}{}
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return context.WithValue(ctx, identitiesKey{}, set)
}

// Identities lists the identities that authorized the call.
func Identities(ctx context.Context) []domain.Address {
	set, _ := ctx.Value(identitiesKey{}).(map[domain.Address]struct{})
	ids := make([]domain.Address, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

// Authorizer implements port.Authorizer by looking up the identities the
// transport layer attached to the call context.
type Authorizer struct{}

func NewAuthorizer() *Authorizer {
	return &Authorizer{}
}

// RequireAuth fails with domain.ErrUnauthorized unless id signed the call.
func (a *Authorizer) RequireAuth(ctx context.Context, id domain.Address) error {
	set, _ := ctx.Value(identitiesKey{}).(map[domain.Address]struct{})
	if _, ok := set[id]; !ok || id == "" {
		return domain.ErrUnauthorized
	}
	return nil
}
