package emoji

import "regexp"

// refPattern matches a custom-emoji token: <:name:id> or <a:name:id> for
// animated ones. The whole token must be the reference.
var refPattern = regexp.MustCompile(`^<(a?):(\w+):(\d+)>$`)

// Ref is a parsed custom-emoji reference.
type Ref struct {
	Name     string
	ID       string
	Animated bool
}

// ParseRef parses token as a custom-emoji reference.
func ParseRef(token string) (Ref, bool) {
	m := refPattern.FindStringSubmatch(token)
	if m == nil {
		return Ref{}, false
	}
	return Ref{Name: m[2], ID: m[3], Animated: m[1] == "a"}, true
}
