package parser

// This file validates the shape of an absolute IRI appearing between
// angle brackets, e.g. <http://ex.org/knows>. Full RFC 3987 parsing is
// out of scope (spec §1: "the textual grammar of the property-path
// language is specified abstractly"); what's required is enough to
// reject obviously malformed bracketed IRIs per the MalformedIri error
// in §7. The scheme scan below follows the same state shape as a real
// absolute-IRI parser's scheme production (consume ALPHA, then
// ALPHA/DIGIT/"+"/"-"/"." until ':'), just without authority/path/query
// decomposition.

func isASCIILetter(r byte) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isSchemeChar(r byte) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == '+' || r == '-' || r == '.'
}

// looksAbsolute reports whether s has the shape "scheme:rest" of an
// absolute IRI: a leading ASCII letter, followed by zero or more
// scheme characters, followed by a colon, followed by at least one
// more character. It does not validate the rest of the IRI.
func looksAbsolute(s string) (ok bool, reason string) {
	if s == "" {
		return false, "empty IRI"
	}
	if !isASCIILetter(s[0]) {
		return false, "scheme must start with an ASCII letter"
	}
	i := 1
	for i < len(s) && s[i] != ':' {
		if !isSchemeChar(s[i]) {
			return false, "invalid character in scheme"
		}
		i++
	}
	if i == len(s) {
		return false, "missing ':' after scheme"
	}
	if i == len(s)-1 {
		return false, "empty IRI path after scheme"
	}
	return true, ""
}
