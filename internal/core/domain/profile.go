package domain

// Profile holds persisted scan and clean preferences.
// Pointer fields distinguish "not configured" from a zero value so layers can be overlaid.
type Profile struct {
	Roots       []string
	Defaults    *bool
	Optional    *bool
	Global      *bool
	MaxDepth    *int
	Trash       *bool
	Concurrency *int
}

// Overlay returns a copy of p with every field configured in other taking precedence.
func (p Profile) Overlay(other Profile) Profile {
	if len(other.Roots) > 0 {
		p.Roots = append([]string(nil), other.Roots...)
	}
	if other.Defaults != nil {
		p.Defaults = other.Defaults
	}
	if other.Optional != nil {
		p.Optional = other.Optional
	}
	if other.Global != nil {
		p.Global = other.Global
	}
	if other.MaxDepth != nil {
		p.MaxDepth = other.MaxDepth
	}
	if other.Trash != nil {
		p.Trash = other.Trash
	}
	if other.Concurrency != nil {
		p.Concurrency = other.Concurrency
	}
	return p
}

// BoolOr returns *b, or fallback when b is nil.
func BoolOr(b *bool, fallback bool) bool {
	if b == nil {
		return fallback
	}
	return *b
}

// IntOr returns *i, or fallback when i is nil.
func IntOr(i *int, fallback int) int {
	if i == nil {
		return fallback
	}
	return *i
}
