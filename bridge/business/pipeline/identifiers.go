package pipeline

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"readarrbridge.app/bridge/model"
)

const (
	fieldForeignBookID   = "foreign book id"
	fieldForeignAuthorID = "foreign author id"
)

var (
	// Decimal number literals as catalog payloads spell them. Digit separators are not allowed.
	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	// Unsigned 0x, 0o and 0b literals.
	prefixedLiteral = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// deriveIdentifiers extracts the numeric foreign book and author ids of a candidate.
func deriveIdentifiers(candidate model.Candidate) (bookID, authorID int64, err error) {
	bookID, err = parseForeignID(fieldForeignBookID, candidate.ForeignBookID)
	if err != nil {
		return 0, 0, err
	}
	authorID, err = parseForeignID(fieldForeignAuthorID, candidate.ForeignAuthorID)
	if err != nil {
		return 0, 0, err
	}
	return bookID, authorID, nil
}

// parseForeignID accepts finite numbers with an integral value, including forms like "1e3", "42.0" or "0x1F".
func parseForeignID(field, raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, &IdentifierError{Field: field}
	}

	if prefixedLiteral.MatchString(value) {
		base := map[byte]int{'x': 16, 'o': 8, 'b': 2}[value[1]|0x20]
		id, err := strconv.ParseInt(value[2:], base, 64)
		if err != nil {
			return 0, &IdentifierError{Field: field, Value: raw, Reason: reasonOutOfRange}
		}
		return id, nil
	}

	if !decimalLiteral.MatchString(value) {
		return 0, &IdentifierError{Field: field, Value: raw}
	}

	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &IdentifierError{Field: field, Value: raw, Reason: reasonOutOfRange}
	}
	if f != math.Trunc(f) {
		return 0, &IdentifierError{Field: field, Value: raw, Reason: reasonFractional}
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, &IdentifierError{Field: field, Value: raw, Reason: reasonOutOfRange}
	}
	return int64(f), nil
}
