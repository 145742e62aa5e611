package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength     int
	separator     string
	customReplace map[string]string
}

// MaxLength caps the slug at n characters. Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the string placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// CustomReplace applies literal replacements before slugification,
// e.g. {"&": "and"}.
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// letters that do not decompose into a base letter plus a combining mark.
var undecomposable = map[rune]string{
	'ø': "o", 'ł': "l", 'đ': "d", 'ħ': "h", 'ı': "i",
	'æ': "ae", 'œ': "oe", 'ß': "ss", 'þ': "th", 'ð': "d",
}

// Make converts s into a lowercase, separator-joined identifier made of ASCII
// letters and digits. Diacritics are stripped ("Café" becomes "cafe") and any
// other character run becomes a single separator. The result never starts or
// ends with the separator.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	s = foldDiacritics(strings.ToLower(s))

	sepLen := len([]rune(cfg.separator))
	var b strings.Builder
	b.Grow(len(s))

	count := 0
	pendingSep := false
	for _, r := range s {
		repl, isSpecial := undecomposable[r]
		if !isSpecial && !isASCIIAlnum(r) {
			pendingSep = count > 0
			continue
		}
		if !isSpecial {
			repl = string(r)
		}

		need := len(repl)
		if pendingSep {
			need += sepLen
		}
		if cfg.maxLength > 0 && count+need > cfg.maxLength {
			break
		}
		if pendingSep {
			b.WriteString(cfg.separator)
			count += sepLen
			pendingSep = false
		}
		b.WriteString(repl)
		count += len(repl)
	}

	return b.String()
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
