package dialect

// Builtin dialect tables. These cover the languages the tool is expected to
// meet most often; Generic is the fallback for everything else and leans on
// tokens rather than keywords so it stays language-neutral.

func Python() *Dialect {
	return &Dialect{
		Name:           "python",
		FileExtensions: []string{".py", ".pyw"},
		BlockOpenKeywords: []string{
			"if", "elif", "else", "for", "while", "try", "except", "finally",
			"with", "def", "class", "match", "case", "async def",
		},
		BlockCloseKeywords:  []string{"elif", "else", "except", "finally", "case"},
		BlockOpenTokens:     []string{":", "(", "[", "{"},
		DeclarationKeywords: []string{"def", "class", "async def"},
		DecoratorPrefixes:   []string{"@"},
		DocCommentOpeners:   []string{`"""`, `'''`},
	}
}

func Go() *Dialect {
	return &Dialect{
		Name:           "go",
		FileExtensions: []string{".go"},
		BlockOpenKeywords: []string{
			"if", "else", "for", "switch", "select", "func", "type", "go", "defer",
		},
		BlockCloseKeywords:  []string{"else", "case", "default"},
		BlockOpenTokens:     []string{"{", "(", "["},
		DeclarationKeywords: []string{"func", "type"},
		DecoratorPrefixes:   nil,
		DocCommentOpeners:   []string{"//"},
	}
}

func JavaScript() *Dialect {
	return &Dialect{
		Name:           "javascript",
		FileExtensions: []string{".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs"},
		BlockOpenKeywords: []string{
			"if", "else", "for", "while", "do", "switch", "try", "catch",
			"finally", "function", "class",
		},
		BlockCloseKeywords:  []string{"else", "catch", "finally", "case", "default"},
		BlockOpenTokens:     []string{"{", "(", "[", "=>"},
		DeclarationKeywords: []string{"function", "class", "export function", "export class"},
		DecoratorPrefixes:   []string{"@"},
		DocCommentOpeners:   []string{"/**", "//"},
	}
}

func Java() *Dialect {
	return &Dialect{
		Name:           "java",
		FileExtensions: []string{".java"},
		BlockOpenKeywords: []string{
			"if", "else", "for", "while", "do", "switch", "try", "catch",
			"finally", "class", "interface", "enum",
		},
		BlockCloseKeywords:  []string{"else", "catch", "finally", "case", "default"},
		BlockOpenTokens:     []string{"{", "("},
		DeclarationKeywords: []string{"class", "interface", "enum", "public", "private", "protected", "static", "void"},
		DecoratorPrefixes:   []string{"@"},
		DocCommentOpeners:   []string{"/**", "//"},
	}
}

func Ruby() *Dialect {
	return &Dialect{
		Name:           "ruby",
		FileExtensions: []string{".rb", ".rake"},
		BlockOpenKeywords: []string{
			"if", "elsif", "else", "unless", "while", "until", "for", "begin",
			"rescue", "ensure", "def", "class", "module", "case", "do",
		},
		BlockCloseKeywords:  []string{"elsif", "else", "rescue", "ensure", "when", "end"},
		BlockOpenTokens:     []string{"do", "{", "(", "["},
		DeclarationKeywords: []string{"def", "class", "module"},
		DecoratorPrefixes:   nil,
		DocCommentOpeners:   []string{"#"},
	}
}

// Generic is the table used when the file's language is unknown. It relies
// on the near-universal bracket tokens plus the keyword intersection of the
// mainstream C-family and indentation-family languages.
func Generic() *Dialect {
	return &Dialect{
		Name: "generic",
		BlockOpenKeywords: []string{
			"if", "else", "elif", "for", "while", "try", "except", "catch",
			"finally", "switch", "with", "def", "func", "function", "class",
		},
		BlockCloseKeywords:  []string{"else", "elif", "except", "catch", "finally", "case", "default"},
		BlockOpenTokens:     []string{":", "{", "(", "["},
		DeclarationKeywords: []string{"def", "func", "function", "class"},
		DecoratorPrefixes:   []string{"@"},
		DocCommentOpeners:   []string{`"""`, "/**", "//", "#"},
	}
}

// Builtins returns the registry of built-in dialects keyed by name.
func Builtins() map[string]*Dialect {
	out := make(map[string]*Dialect)
	for _, d := range []*Dialect{Python(), Go(), JavaScript(), Java(), Ruby(), Generic()} {
		out[d.Name] = d
	}
	return out
}
