package selection

import (
	"strings"

	ferrors "github.com/matzehuels/featprune/pkg/errors"
)

// Criterion is the rule used to rank the members of a correlated group.
type Criterion int

const (
	// ByVariance ranks features by the sample variance of their column.
	ByVariance Criterion = iota
	// ByImportance ranks features by an externally supplied importance score.
	ByImportance
)

// Canonical criterion tokens.
const (
	TokenVariance   = "variance"
	TokenImportance = "importance"
)

// DefaultCriterion is used when no criterion is given.
const DefaultCriterion = ByVariance

// ParseCriterion converts a token into a Criterion. Matching is
// case-insensitive and otherwise exact: surrounding whitespace is not
// accepted. Any other token yields an INVALID_ARGUMENT error naming the
// offending value.
func ParseCriterion(token string) (Criterion, error) {
	switch strings.ToLower(token) {
	case TokenVariance:
		return ByVariance, nil
	case TokenImportance:
		return ByImportance, nil
	default:
		return 0, ferrors.New(ferrors.ErrCodeInvalidArgument,
			"invalid ranking criterion %q (must be one of: %s, %s)", token, TokenVariance, TokenImportance)
	}
}

// String returns the canonical token of the criterion.
func (c Criterion) String() string {
	switch c {
	case ByVariance:
		return TokenVariance
	case ByImportance:
		return TokenImportance
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Criterion) MarshalText() ([]byte, error) {
	if c != ByVariance && c != ByImportance {
		return nil, ferrors.New(ferrors.ErrCodeInvalidArgument, "invalid ranking criterion %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using [ParseCriterion].
func (c *Criterion) UnmarshalText(text []byte) error {
	parsed, err := ParseCriterion(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
