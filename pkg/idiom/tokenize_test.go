package idiom

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple sentence", "Hello, World!", []string{"Hello", "World"}},
		{"all caps folded", "HELLO WORLD", []string{"hello", "world"}},
		{"mixed case folded", "McDonald's", []string{"mcdonald's"}},
		{"sentence caps kept", "This is Sparta", []string{"This", "is", "Sparta"}},
		{"wrapped punctuation", `("quoted") [link]:`, []string{"quoted", "link"}},
		{"markup emphasis", "*bold* `code`", []string{"bold", "code"}},
		{"bare punctuation kept empty", "wow !!!", []string{"wow", ""}},
		{"empty input", "", []string{}},
		{"whitespace only", "  \t\n ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsCapitalized(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"Hello", false}, // rest is lowercase: plain sentence capital
		{"hello", false},
		{"HELLO", true},
		{"McDonald", true},
		{"a", false},
		{"", false},
		{"x86", true}, // digits are not lowercase runes
	}
	for _, tt := range tests {
		if got := isCapitalized(tt.token); got != tt.want {
			t.Errorf("isCapitalized(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestTrimPunctRepeats(t *testing.T) {
	if got := trimPunct(`(("nested"))...`); got != "nested" {
		t.Errorf("trimPunct = %q, want %q", got, "nested")
	}
	// Opening marks are only trimmed from the left, closing only from the right.
	if got := trimPunct("(open"); got != "open" {
		t.Errorf("trimPunct = %q, want %q", got, "open")
	}
	if got := trimPunct(".leading"); got != ".leading" {
		t.Errorf("trimPunct = %q: leading closing punctuation should stay", got)
	}
}
