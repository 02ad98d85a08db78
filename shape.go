package showroom

import (
	"fmt"
	"strings"
)

// The import check is intentionally shallow: it samples the presence and
// JSON type of a handful of fields and nothing else. Enumerations, ranges,
// images and customization are not inspected. Accepting exactly these
// documents is part of the import contract.

type shapeCheck struct {
	path []string
	kind jsonKind
}

type jsonKind int

const (
	kindTruthy jsonKind = iota
	kindString
	kindNumber
)

func (k jsonKind) String() string {
	switch k {
	case kindString:
		return "a string"
	case kindNumber:
		return "a number"
	default:
		return "present"
	}
}

var shapeChecks = []shapeCheck{
	{[]string{"typography"}, kindTruthy},
	{[]string{"typography", "fontFamily"}, kindString},
	{[]string{"typography", "fontWeight"}, kindNumber},
	{[]string{"typography", "fontSize"}, kindNumber},
	{[]string{"button"}, kindTruthy},
	{[]string{"button", "borderRadius"}, kindNumber},
	{[]string{"button", "backgroundColor"}, kindString},
	{[]string{"button", "width"}, kindString},
	{[]string{"gallery"}, kindTruthy},
	{[]string{"gallery", "spacing"}, kindNumber},
	{[]string{"layout"}, kindTruthy},
	{[]string{"layout", "cardCornerRadius"}, kindNumber},
	{[]string{"stroke"}, kindTruthy},
	{[]string{"stroke", "color"}, kindString},
	{[]string{"product"}, kindTruthy},
}

// IsValidConfiguration reports whether a decoded JSON value (as produced by
// encoding/json into an `any`) passes the import shape check.
func IsValidConfiguration(v any) bool {
	return checkShape(v) == nil
}

func checkShape(v any) error {
	if _, ok := v.(map[string]any); !ok {
		return fmt.Errorf("%w: configuration is not an object", ErrInvalidShape)
	}
	for _, c := range shapeChecks {
		value := lookup(v, c.path...)
		var ok bool
		switch c.kind {
		case kindString:
			_, ok = value.(string)
		case kindNumber:
			_, ok = value.(float64)
		default:
			ok = truthy(value)
		}
		if !ok {
			return fmt.Errorf(
				"%w: %s must be %s",
				ErrInvalidShape,
				strings.Join(c.path, "."),
				c.kind,
			)
		}
	}
	return nil
}

// lookup walks object members; anything that is not an object along the
// way yields nil, the same as a missing member.
func lookup(v any, path ...string) any {
	for _, key := range path {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = obj[key]
	}
	return v
}

// truthy mirrors JavaScript truthiness for decoded JSON values.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		// objects and arrays, empty or not
		return true
	}
}
