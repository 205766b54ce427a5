// Package dialect carries the per-language keyword tables the insertion
// engine uses to recognize block structure. The tables are plain data so
// callers can supply their own for languages the builtins do not cover.
package dialect

import "strings"

// Dialect describes how one source language marks block structure.
type Dialect struct {
	Name string `json:"name" yaml:"name"`

	// FileExtensions associated with this dialect, including the dot.
	FileExtensions []string `json:"file_extensions" yaml:"file_extensions"`

	// BlockOpenKeywords begin a line that introduces a nested block
	// (conditionals, loops, declarations, exception handling).
	BlockOpenKeywords []string `json:"block_open_keywords" yaml:"block_open_keywords"`

	// BlockCloseKeywords begin a line that continues an enclosing construct
	// at the parent's depth (else/elif/except/finally/case/default).
	BlockCloseKeywords []string `json:"block_close_keywords" yaml:"block_close_keywords"`

	// BlockOpenTokens are trailing tokens that open a block when a line
	// ends with one of them.
	BlockOpenTokens []string `json:"block_open_tokens" yaml:"block_open_tokens"`

	// DeclarationKeywords begin function, method, or type declarations.
	DeclarationKeywords []string `json:"declaration_keywords" yaml:"declaration_keywords"`

	// DecoratorPrefixes mark lines that attach to the following declaration
	// and therefore share its indentation.
	DecoratorPrefixes []string `json:"decorator_prefixes" yaml:"decorator_prefixes"`

	// DocCommentOpeners mark documentation lines that inherit the
	// indentation of the declaration they document.
	DocCommentOpeners []string `json:"doc_comment_openers" yaml:"doc_comment_openers"`
}

// OpensBlock reports whether a trimmed line would introduce a deeper block.
func (d *Dialect) OpensBlock(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, tok := range d.BlockOpenTokens {
		if strings.HasSuffix(trimmed, tok) {
			return true
		}
	}
	return d.hasLeadingKeyword(trimmed, d.BlockOpenKeywords)
}

// ClosesBlock reports whether a trimmed line belongs one level shallower
// than the preceding body (else-like keywords and closing brackets).
func (d *Dialect) ClosesBlock(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	switch trimmed[0] {
	case '}', ')', ']':
		return true
	}
	return d.hasLeadingKeyword(trimmed, d.BlockCloseKeywords)
}

// IsDeclaration reports whether a trimmed line starts a function, method,
// class, or type declaration.
func (d *Dialect) IsDeclaration(trimmed string) bool {
	return d.hasLeadingKeyword(trimmed, d.DeclarationKeywords)
}

// IsDecorator reports whether a trimmed line is a decorator or annotation
// attached to the declaration that follows it.
func (d *Dialect) IsDecorator(trimmed string) bool {
	for _, p := range d.DecoratorPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

// IsDocComment reports whether a trimmed line opens a documentation comment.
func (d *Dialect) IsDocComment(trimmed string) bool {
	for _, p := range d.DocCommentOpeners {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func (d *Dialect) hasLeadingKeyword(trimmed string, keywords []string) bool {
	for _, kw := range keywords {
		if trimmed == kw {
			return true
		}
		if strings.HasPrefix(trimmed, kw) {
			// Keyword must end at a word boundary: "iffy" is not "if".
			rest := trimmed[len(kw):]
			if rest != "" && !isIdentChar(rest[0]) {
				return true
			}
		}
	}
	return false
}

func isIdentChar(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
