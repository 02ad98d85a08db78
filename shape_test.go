package showroom

import (
	"encoding/json"
	"errors"
	"testing"
)

func decodeAny(t *testing.T, text string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestIsValidConfiguration(t *testing.T) {
	valid := decodeAny(t, minimalDocument).(map[string]any)["configuration"]
	if !IsValidConfiguration(valid) {
		t.Fatal("minimal configuration rejected")
	}

	exported, err := json.Marshal(DefaultConfiguration())
	if err != nil {
		t.Fatal(err)
	}
	if !IsValidConfiguration(decodeAny(t, string(exported))) {
		t.Error("default configuration rejected")
	}

	for _, text := range []string{
		`null`,
		`"configuration"`,
		`{}`,
		`{"typography":{"fontFamily":"Inter","fontWeight":400}}`,
	} {
		if IsValidConfiguration(decodeAny(t, text)) {
			t.Errorf("%s accepted", text)
		}
	}
}

func TestCheckShapeNamesFailingMember(t *testing.T) {
	err := checkShape(decodeAny(t, `{"typography":{"fontFamily":1}}`))
	if !errors.Is(err, ErrInvalidShape) {
		t.Fatalf("err = %v", err)
	}
	if got, want := err.Error(), "invalid configuration shape: typography.fontFamily must be a string"; got != want {
		t.Errorf("err = %q, want %q", got, want)
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, false},
		{-1.5, true},
		{"", false},
		{"x", true},
		{map[string]any{}, true},
		{[]any{}, true},
	}
	for _, tc := range cases {
		if got := truthy(tc.v); got != tc.want {
			t.Errorf("truthy(%#v) = %v, want %v", tc.v, got, tc.want)
		}
	}
}

func TestLookup(t *testing.T) {
	v := decodeAny(t, `{"a":{"b":"c"},"s":"x"}`)
	if got := lookup(v, "a", "b"); got != "c" {
		t.Errorf("a.b = %v", got)
	}
	if got := lookup(v, "s", "b"); got != nil {
		t.Errorf("s.b = %v, want nil", got)
	}
	if got := lookup(v, "missing", "b"); got != nil {
		t.Errorf("missing.b = %v, want nil", got)
	}
}
