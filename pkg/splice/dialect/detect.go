package dialect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// enry reports canonical language names; map the ones we have tables for.
var languageNames = map[string]string{
	"Python":     "python",
	"Go":         "go",
	"JavaScript": "javascript",
	"TypeScript": "javascript",
	"JSX":        "javascript",
	"TSX":        "javascript",
	"Java":       "java",
	"Ruby":       "ruby",
}

// DetectFile picks the dialect for a file, preferring the extension and
// falling back to content-based detection, then to Generic.
func DetectFile(path string, content []byte) *Dialect {
	lang, safe := enry.GetLanguageByExtension(path)
	if !safe || lang == "" {
		lang = enry.GetLanguage(path, content)
	}
	return ForLanguage(lang)
}

// ForLanguage returns the dialect registered for a language name, or
// Generic when the language has no dedicated table.
func ForLanguage(lang string) *Dialect {
	name, ok := languageNames[lang]
	if !ok {
		name = strings.ToLower(lang)
	}
	if d, ok := Builtins()[name]; ok {
		return d
	}
	return Generic()
}
