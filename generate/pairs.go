package generate

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultPackage replaces PackageToken when no package is set.
	DefaultPackage = "funkymonkeypackage"

	// DefaultPrefix replaces PrefixToken when no prefix is set.
	DefaultPrefix = "funkymonkey"

	// PrefixToken is the template placeholder for the prefix.
	PrefixToken = "ZZ"

	// PackageToken is the template placeholder for the
	// package name.
	PackageToken = "PACKAGE"
)

// ErrInvalidDefine is returned for a define that is not of
// the form from=to with a non-empty from.
var ErrInvalidDefine = errors.New("invalid -D option")

// Pair is a literal substitution rule.
type Pair struct {
	From string
	To   string
}

// ParseDefine splits a from=to define on its first '='.
// Everything after that '=' is the replacement, including
// further '=' characters. The from part must not be empty.
func ParseDefine(def string) (Pair, error) {
	from, to, found := strings.Cut(def, "=")
	if !found || from == "" {
		return Pair{}, fmt.Errorf(
			"%w: %s", ErrInvalidDefine, def,
		)
	}

	return Pair{From: from, To: to}, nil
}

// BuildPairs returns the substitution table: the prefix
// rule, the package rule, then one rule per define in the
// order given. Duplicate keys are kept; list order decides.
func BuildPairs(
	prefix string,
	pkg string,
	defines []string,
) ([]Pair, error) {
	const errCtx = "building substitutions"

	pairs := make([]Pair, 0, len(defines)+2)
	pairs = append(
		pairs,
		Pair{From: PrefixToken, To: prefix},
		Pair{From: PackageToken, To: pkg},
	)

	for _, def := range defines {
		pa, err := ParseDefine(def)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		pairs = append(pairs, pa)
	}

	return pairs, nil
}

// Apply runs every pair over line in order. Each pair
// replaces all non-overlapping occurrences in the result of
// the previous pair; a pair never rescans its own output.
func Apply(line string, pairs []Pair) string {
	for _, pa := range pairs {
		line = strings.ReplaceAll(line, pa.From, pa.To)
	}

	return line
}
