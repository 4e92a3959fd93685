package gen

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// title capitalizes the first cased letter of a segment. Language-neutral
// so identifiers convert identically on every machine.
var title = cases.Title(language.Und)

// digitSentinel prefixes a converted identifier that would otherwise start
// with a digit, which the target language forbids.
const digitSentinel = "N"

// Pascal converts a delimiter-separated schema identifier into a
// PascalCase identifier. Segments are split on underscores, hyphens and
// spaces; consecutive separators collapse. A segment that is already fully
// upper-case is treated as an acronym and preserved verbatim; every other
// segment is lower-cased and title-cased. The conversion is pure: the same
// input always yields the same output.
func Pascal(identifier string) (string, error) {
	segments := strings.FieldsFunc(identifier, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	if len(segments) == 0 {
		if identifier == "" {
			return "", NewNamingError(identifier, "empty identifier")
		}
		return "", NewNamingError(identifier, "identifier contains only separators")
	}
	var b strings.Builder
	for _, seg := range segments {
		if isAcronym(seg) {
			b.WriteString(seg)
			continue
		}
		b.WriteString(title.String(strings.ToLower(seg)))
	}
	name := b.String()
	if name[0] >= '0' && name[0] <= '9' {
		name = digitSentinel + name
	}
	return name, nil
}

// isAcronym reports whether the segment is fully upper-case and contains
// at least one cased letter.
func isAcronym(seg string) bool {
	return seg == strings.ToUpper(seg) && seg != strings.ToLower(seg)
}
