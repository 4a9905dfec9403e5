package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// Keep selects which dice of a pool count toward the total.
type Keep int

const (
	// KeepAll counts every die.
	KeepAll Keep = iota
	// KeepHighest counts the N highest dice ("kh").
	KeepHighest
	// KeepLowest counts the N lowest dice ("kl").
	KeepLowest
)

// Expression represents a parsed dice expression ready to be rolled.
// Precondition: Count >= 1, Sides >= 2 after successful Parse.
type Expression struct {
	Raw       string // original input string
	Count     int    // number of dice
	Sides     int    // faces per die
	Modifier  int    // flat modifier (may be negative)
	Keep      Keep   // pool selection rule
	KeepCount int    // dice kept when Keep != KeepAll
}

// Parse parses a dice expression string into an Expression.
// Supported forms: "d20", "2d6", "2d6+3", "4d8-2", "4d6kh3", "2d20kl1".
//
// Postcondition: Returns a valid Expression or a descriptive error.
func Parse(expr string) (Expression, error) {
	if expr == "" {
		return Expression{}, fmt.Errorf("dice: empty expression")
	}
	raw := expr
	s := strings.ToLower(expr)

	countStr, rest, ok := strings.Cut(s, "d")
	if !ok {
		return Expression{}, fmt.Errorf("dice: missing 'd' in expression %q", raw)
	}

	count := 1
	if countStr != "" {
		var err error
		count, err = strconv.Atoi(countStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: %w", raw, err)
		}
		if count <= 0 {
			return Expression{}, fmt.Errorf("dice: invalid die count in %q: must be >= 1", raw)
		}
	}

	// Split off the modifier; a sign at position 0 would be part of the sides.
	modStr := ""
	if i := strings.IndexAny(rest[min(1, len(rest)):], "+-"); i >= 0 {
		i += min(1, len(rest))
		rest, modStr = rest[:i], rest[i:]
	}

	keep, keepCount := KeepAll, 0
	for _, k := range []struct {
		suffix string
		rule   Keep
	}{{"kh", KeepHighest}, {"kl", KeepLowest}} {
		idx := strings.Index(rest, k.suffix)
		if idx < 0 {
			continue
		}
		n, err := strconv.Atoi(rest[idx+2:])
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid %s value in %q: %w", k.suffix, raw, err)
		}
		if n <= 0 || n >= count {
			return Expression{}, fmt.Errorf("dice: %s value %d must be > 0 and < count %d in %q", k.suffix, n, count, raw)
		}
		keep, keepCount = k.rule, n
		rest = rest[:idx]
		break
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: %w", raw, err)
	}
	if sides < 2 {
		return Expression{}, fmt.Errorf("dice: invalid die sides in %q: must be >= 2", raw)
	}

	modifier := 0
	if modStr != "" {
		modifier, err = strconv.Atoi(modStr)
		if err != nil {
			return Expression{}, fmt.Errorf("dice: invalid modifier in %q: %w", raw, err)
		}
	}

	return Expression{
		Raw:       raw,
		Count:     count,
		Sides:     sides,
		Modifier:  modifier,
		Keep:      keep,
		KeepCount: keepCount,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level values.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return e
}
