// SPDX-License-Identifier: MPL-2.0

package jmvmod

import (
	_ "embed"
	"fmt"
	"regexp"
)

// Placeholder tokens recognized in scaffolding templates.
const (
	// PlaceholderName is replaced with the module or analysis name.
	PlaceholderName = "$NAME"
	// PlaceholderTitle is replaced with the analysis title.
	PlaceholderTitle = "$TITLE"
	// PlaceholderModuleName is replaced with the enclosing module's name.
	PlaceholderModuleName = "$MODULE_NAME"
)

var (
	//go:embed templates/DESCRIPTION
	descriptionTemplate string

	//go:embed templates/NAMESPACE
	namespaceTemplate string

	//go:embed templates/analysis.a.yaml
	analysisOptionsTemplate string

	//go:embed templates/analysis.r.yaml
	analysisResultsTemplate string

	//go:embed templates/gitignore
	ignoreTemplate string
)

// placeholderRegex matches the $TOKEN placeholders a template may carry.
// Substitution is driven by the template's own tokens, so supplied values are
// never rescanned and may themselves contain $-words.
var placeholderRegex = regexp.MustCompile(`\$[A-Z][A-Z_]*`)

// UnresolvedPlaceholderError is returned when a template still contains a
// placeholder token after substitution. It wraps ErrUnresolvedPlaceholder.
type UnresolvedPlaceholderError struct {
	Token string
}

// Error implements the error interface.
func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("template placeholder %q was not substituted", e.Token)
}

// Unwrap returns ErrUnresolvedPlaceholder so callers can use errors.Is.
func (e *UnresolvedPlaceholderError) Unwrap() error { return ErrUnresolvedPlaceholder }

// substitute replaces every placeholder token found in tmpl with its value
// in a single pass over the template. A token in tmpl with no entry in subs
// fails loudly instead of shipping the literal token: a template gaining a
// placeholder no caller supplies is drift. Substituted values pass through
// verbatim, so a title containing a $WORD of its own is fine.
func substitute(tmpl string, subs map[string]string) (string, error) {
	var missing string
	out := placeholderRegex.ReplaceAllStringFunc(tmpl, func(token string) string {
		value, ok := subs[token]
		if !ok {
			if missing == "" {
				missing = token
			}
			return token
		}
		return value
	})

	if missing != "" {
		return "", &UnresolvedPlaceholderError{Token: missing}
	}

	return out, nil
}
