package prefdoc

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Reserved words of the generated output language. A string resource
// identifier must never collide with one of these.
var javaKeywords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "export": {}, "extends": {}, "final": {}, "finally": {},
	"float": {}, "for": {}, "goto": {}, "if": {}, "implements": {},
	"import": {}, "instanceof": {}, "int": {}, "interface": {}, "long": {},
	"native": {}, "new": {}, "package": {}, "private": {}, "protected": {},
	"public": {}, "return": {}, "short": {}, "static": {}, "strictfp": {},
	"super": {}, "switch": {}, "synchronized": {}, "this": {}, "throw": {},
	"throws": {}, "transient": {}, "try": {}, "void": {}, "volatile": {},
	"while": {},
}

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// asciiFold decomposes accented characters and drops the combining marks so
// that non-ASCII titles still yield plain identifiers.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func foldASCII(s string) string {
	folded, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return folded
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, s)
}

// MakeKey derives a preference key slug from free text: lowercase,
// punctuation removed, spaces replaced by underscores.
func MakeKey(s string) string {
	s = stripPunctuation(strings.ToLower(foldASCII(s)))
	return strings.ReplaceAll(s, " ", "_")
}

// makeStringRef derives a string resource identifier: the slug truncated to
// five words, with an underscore guard when it would collide with a reserved
// word of the output language.
func makeStringRef(s string) string {
	s = stripPunctuation(strings.ToLower(foldASCII(s)))
	words := strings.Fields(s)
	if len(words) > 5 {
		words = words[:5]
	}
	ref := strings.Join(words, "_")
	if _, reserved := javaKeywords[ref]; reserved {
		return "_" + ref + "_"
	}
	return ref
}

// MakeVar converts a snake_case key into a camelCase (or UpperCamel when
// initialLower is false) identifier for generated method and type names.
// Empty segments from doubled underscores are kept as literal underscores.
func MakeVar(s string, initialLower bool) string {
	var b strings.Builder
	for i, part := range strings.Split(s, "_") {
		if part == "" {
			b.WriteByte('_')
			continue
		}
		if i == 0 && initialLower {
			b.WriteString(strings.ToLower(part))
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}
