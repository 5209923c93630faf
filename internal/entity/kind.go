package entity

import (
	"fmt"
	"strings"

	"emoji-city/assets"
)

// Kind is the closed set of poolable city entities.
type Kind uint8

const (
	Building Kind = iota
	Vehicle
	Citizen
	numKinds
)

// Kinds returns every kind in display order.
func Kinds() []Kind {
	return []Kind{Building, Vehicle, Citizen}
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool { return k < numKinds }

// Def returns the catalog entry for k.
func (k Kind) Def() assets.KindDef {
	if !k.Valid() {
		return assets.KindDef{ID: "unknown", Name: "Unknown", Label: "UNKNOWN", Glyph: "?"}
	}
	return assets.Kinds[k]
}

func (k Kind) String() string { return k.Def().ID }

// Label is the fixed display text bound to the kind.
func (k Kind) Label() string { return k.Def().Label }

// Glyph is the emoji drawn for the kind.
func (k Kind) Glyph() string { return k.Def().Glyph }

// ParseKind accepts a kind ID, case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid entity kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
