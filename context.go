package showroom

import "context"

type contextKey struct{}

// WithStore returns a copy of ctx carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

func FromContext(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(contextKey{}).(*Store)
	return s, ok && s != nil
}

// MustFromContext returns the store installed by [WithStore]. A missing
// store is a wiring bug, so it panics with [ErrStoreMissing].
func MustFromContext(ctx context.Context) *Store {
	s, ok := FromContext(ctx)
	if !ok {
		panic(ErrStoreMissing)
	}
	return s
}
