package showroom

import (
	"context"
	"testing"
)

func TestStoreContext(t *testing.T) {
	s := NewStore()
	ctx := WithStore(context.Background(), s)

	got, ok := FromContext(ctx)
	if !ok || got != s {
		t.Fatal("store not found in context")
	}
	if MustFromContext(ctx) != s {
		t.Error("MustFromContext returned another store")
	}

	if _, ok := FromContext(context.Background()); ok {
		t.Error("empty context reported a store")
	}
	if _, ok := FromContext(WithStore(context.Background(), nil)); ok {
		t.Error("nil store reported as installed")
	}
}

func TestMustFromContextPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r != ErrStoreMissing {
			t.Errorf("recovered %v, want ErrStoreMissing", r)
		}
	}()
	MustFromContext(context.Background())
	t.Error("no panic")
}
