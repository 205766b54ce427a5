// Package structural is the parser-backed anchor: a tree-sitter query run
// against the target, with results normalized into the engine's MatchSpan
// shape so it drops into the same seam as the heuristic anchors.
package structural

import (
	"context"
	"fmt"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/codeweft/weft/pkg/splice/locator"
)

// Languages with compiled-in grammars, keyed by dialect name.
func grammarFor(lang string) *sitter.Language {
	switch lang {
	case "go":
		return golang.GetLanguage()
	case "python":
		return python.GetLanguage()
	}
	return nil
}

// Matcher locates nodes captured by a tree-sitter query. It implements
// locator.Matcher.
type Matcher struct {
	Language string
	Query    string
}

func NewMatcher(language, query string) *Matcher {
	return &Matcher{Language: language, Query: query}
}

func (m *Matcher) Description() string {
	return "structural query (" + m.Language + ")"
}

func (m *Matcher) Locate(text string) ([]locator.MatchSpan, error) {
	lang := grammarFor(m.Language)
	if lang == nil {
		return nil, &locator.PatternError{
			Pattern: m.Query,
			Reason:  fmt.Sprintf("no grammar for language %q", m.Language),
		}
	}

	query, err := sitter.NewQuery([]byte(m.Query), lang)
	if err != nil {
		return nil, &locator.PatternError{Pattern: m.Query, Reason: "query does not compile", Err: err}
	}
	defer query.Close()

	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	content := []byte(text)
	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse target: %w", err)
	}
	defer tree.Close()

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, tree.RootNode())

	var matches []locator.MatchSpan
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			node := capture.Node
			span := locator.MatchSpan{
				StartLine: int(node.StartPoint().Row),
				StartCol:  int(node.StartPoint().Column),
				EndLine:   int(node.EndPoint().Row),
				EndCol:    int(node.EndPoint().Column),
				Text:      node.Content(content),
			}
			matches = append(matches, span)
		}
	}
	// Query captures arrive in tree order; the engine's contract is
	// document order.
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].StartLine != matches[b].StartLine {
			return matches[a].StartLine < matches[b].StartLine
		}
		return matches[a].StartCol < matches[b].StartCol
	})
	return matches, nil
}
