package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CardExpiry is a parsed card expiry. Year is the full four-digit year.
type CardExpiry struct {
	Month int
	Year  int
}

// ParseCardExpiry parses the "MM/YY" form callers supply into the
// two-digit month and four-digit year Ezidebit expects on the wire.
func ParseCardExpiry(s string) (CardExpiry, error) {
	month, year, ok := strings.Cut(s, "/")
	if !ok {
		return CardExpiry{}, NewValidationError("card expiry %q is not in MM/YY format", s)
	}

	m, err := strconv.Atoi(month)
	if err != nil {
		return CardExpiry{}, NewValidationError("card expiry month %q is not numeric", month)
	}
	if m < 1 || m > 12 {
		return CardExpiry{}, NewValidationError("card expiry month %d out of range", m)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return CardExpiry{}, NewValidationError("card expiry year %q is not numeric", year)
	}
	if y < 0 || y > 99 {
		return CardExpiry{}, NewValidationError("card expiry year %q must be two digits", year)
	}

	return CardExpiry{Month: m, Year: 2000 + y}, nil
}

func (e CardExpiry) String() string {
	return fmt.Sprintf("%02d/%02d", e.Month, e.Year%100)
}
