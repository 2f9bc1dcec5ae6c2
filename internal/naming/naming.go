// Package naming derives type identifiers from schema folder and file names.
package naming

import (
	"strings"
	"unicode"
)

// DefaultPrefix is prepended to every projected type name.
const DefaultPrefix = "T"

// PascalCase joins the tokens of an identifier with each token capitalized.
// Separators are any non-alphanumeric runes; case transitions also split:
//   - "blog-post" -> "BlogPost"
//   - "blog_post" -> "BlogPost"
//   - "blogPost" -> "BlogPost"
//   - "XMLFeed" -> "XMLFeed"
//   - "BLOG_POST" -> "BlogPost"
func PascalCase(s string) string {
	if !hasLower(s) {
		s = strings.ToLower(s)
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for _, tok := range tokenize(s) {
		runes := []rune(tok)
		sb.WriteRune(unicode.ToUpper(runes[0]))
		sb.WriteString(string(runes[1:]))
	}

	return sb.String()
}

// TypeName builds the projected type name for a schema name.
func TypeName(prefix, name string) string {
	return prefix + PascalCase(name)
}

// tokenize splits an identifier on separators and CamelCase boundaries.
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "page2-section" -> ["page2", "section"]
func tokenize(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if current.Len() > 0 && startsToken(runes, i) {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	// "blogPost": lower or digit followed by upper
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser": end of an acronym
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}
