package radical

import "fmt"

// Set is a named, ordered, deduplicated collection of validated radicals.
// Immutable once constructed; safe for concurrent readers.
type Set struct {
	name     string
	radicals []rune
}

// NewSet validates each element and builds a Set.
//
// Rules, checked in order:
//   - the list must be non-empty (ErrEmptySet),
//   - every element must pass Validate (ErrNotIdeograph / ErrSimplifiedOnly),
//   - no element may repeat (ErrDuplicateRadical).
//
// Order of the input list is preserved; it defines the index axes of any
// tensor computed over the set.
func NewSet(name string, radicals []string) (*Set, error) {
	if len(radicals) == 0 {
		return nil, fmt.Errorf("set %q: %w", name, ErrEmptySet)
	}

	runes := make([]rune, 0, len(radicals))
	seen := make(map[rune]struct{}, len(radicals))
	for _, s := range radicals {
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("set %q: %w", name, err)
		}
		r := []rune(s)[0]
		if _, dup := seen[r]; dup {
			return nil, fmt.Errorf("set %q: %q: %w", name, s, ErrDuplicateRadical)
		}
		seen[r] = struct{}{}
		runes = append(runes, r)
	}

	return &Set{name: name, radicals: runes}, nil
}

// NewSetFromString splits s into code points and delegates to NewSet.
// Convenient for CLI input like "日月口".
func NewSetFromString(name, s string) (*Set, error) {
	if s == "" {
		return nil, fmt.Errorf("set %q: %w", name, ErrEmptySet)
	}

	var parts []string
	for _, r := range s {
		parts = append(parts, string(r))
	}

	return NewSet(name, parts)
}

// Name returns the human-readable name of the set (e.g. "五行").
func (s *Set) Name() string { return s.name }

// Len returns the number of radicals.
func (s *Set) Len() int { return len(s.radicals) }

// At returns the radical at index i. Panics on out-of-range i, as slice
// indexing would; tensor access goes through Result.At which returns a
// typed error instead.
func (s *Set) At(i int) rune { return s.radicals[i] }

// Runes returns a copy of the radicals in set order.
func (s *Set) Runes() []rune {
	out := make([]rune, len(s.radicals))
	copy(out, s.radicals)

	return out
}

// String renders the set as name + radicals, for logs and error context.
func (s *Set) String() string {
	return fmt.Sprintf("%s(%s)", s.name, string(s.radicals))
}
