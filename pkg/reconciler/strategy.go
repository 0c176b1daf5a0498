package reconciler

import (
	"slices"
	"strings"

	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/sources"
)

// StrategyType represents the type of reconciliation strategy.
type StrategyType string

// String returns the string representation of a strategy type.
func (s StrategyType) String() string {
	return string(s)
}

// Name returns the name of the strategy type.
func (s StrategyType) Name() string {
	str := s.String()
	// Replace hyphens with spaces and title case each word
	words := strings.Split(str, "-")
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

const (
	// StrategyTypeFieldAuthority orders sources by the field authority table.
	StrategyTypeFieldAuthority StrategyType = "field-authority"
	// StrategyTypeSourceOrder uses one fixed source order for every field.
	StrategyTypeSourceOrder StrategyType = "source-order"
)

// ParseStrategyType returns the strategy type named by s, and false if s
// names none.
func ParseStrategyType(s string) (StrategyType, bool) {
	switch StrategyType(s) {
	case StrategyTypeFieldAuthority, StrategyTypeSourceOrder:
		return StrategyType(s), true
	}
	return "", false
}

// Strategy decides the order in which sources are consulted for a field.
type Strategy interface {
	// Type returns the strategy type
	Type() StrategyType

	// Description returns a human-readable description
	Description() string

	// Order returns available in the order sources should be tried for field
	Order(field string, available []sources.ID) []sources.ID

	// Priority returns the priority the strategy gives source for field
	Priority(field string, source sources.ID) int
}

// baseStrategy provides common strategy functionality.
type baseStrategy struct {
	typ         StrategyType
	description string
}

// Type returns the strategy type.
func (s *baseStrategy) Type() StrategyType {
	return s.typ
}

// Description returns a human-readable description.
func (s *baseStrategy) Description() string {
	return s.description
}

// AuthorityStrategy uses field authorities to order sources.
type AuthorityStrategy struct {
	baseStrategy
	authorities authority.Authority
}

// NewAuthorityStrategy creates a new authority-based strategy.
func NewAuthorityStrategy(authorities authority.Authority) Strategy {
	return &AuthorityStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeFieldAuthority,
			description: "Prefers the authoritative source for each field, falling back to the others",
		},
		authorities: authorities,
	}
}

// Order ranks available by the authority table.
func (s *AuthorityStrategy) Order(field string, available []sources.ID) []sources.ID {
	return s.authorities.Rank(field, available)
}

// Priority returns the highest authority the table gives source for field.
func (s *AuthorityStrategy) Priority(field string, source sources.ID) int {
	for _, auth := range authority.Matching(field, s.authorities.List()) {
		if auth.Source == source {
			return auth.Priority
		}
	}
	return 0
}

// SourceOrderStrategy consults sources in one fixed order for every field.
type SourceOrderStrategy struct {
	baseStrategy
	order []sources.ID
}

// NewSourceOrderStrategy creates a strategy that prefers sources in the
// order given. Sources not listed come last, in the order they are offered.
func NewSourceOrderStrategy(order ...sources.ID) Strategy {
	return &SourceOrderStrategy{
		baseStrategy: baseStrategy{
			typ:         StrategyTypeSourceOrder,
			description: "Prefers sources in a fixed order regardless of field",
		},
		order: slices.Clone(order),
	}
}

// Order sorts available by the configured source order.
func (s *SourceOrderStrategy) Order(_ string, available []sources.ID) []sources.ID {
	ordered := make([]sources.ID, 0, len(available))
	for _, id := range s.order {
		if slices.Contains(available, id) && !slices.Contains(ordered, id) {
			ordered = append(ordered, id)
		}
	}
	for _, id := range available {
		if !slices.Contains(ordered, id) {
			ordered = append(ordered, id)
		}
	}
	return ordered
}

// Priority is higher for sources listed earlier.
func (s *SourceOrderStrategy) Priority(_ string, source sources.ID) int {
	i := slices.Index(s.order, source)
	if i < 0 {
		return 0
	}
	return len(s.order) - i
}
