// Package nlp extracts skill phrases from free text by chunking noun phrases
// out of a part-of-speech tagged token stream.
package nlp

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"skillmatch/internal/domain/skill"

	"github.com/jdkato/prose/v2"
)

// Token is a tagged word. Tags follow the Penn Treebank set.
type Token struct {
	Text string
	Tag  string
}

// Tagger turns text into tagged tokens.
type Tagger interface {
	Tag(text string) ([]Token, error)
}

type proseTagger struct{}

// NewProseTagger returns a Tagger backed by prose's averaged perceptron model.
func NewProseTagger() Tagger {
	return proseTagger{}
}

func (proseTagger) Tag(text string) ([]Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, t := range toks {
		out = append(out, SplitPunct(Token{Text: t.Text, Tag: t.Tag})...)
	}
	return out, nil
}

// SplitPunct peels sentence punctuation off both ends of a token, so "Go."
// becomes "Go" followed by a "." token. Symbols stay attached, which keeps
// "C++" and "C#" whole, and so do interior dots as in "Node.js".
func SplitPunct(t Token) []Token {
	runes := []rune(t.Text)
	lo, hi := 0, len(runes)
	for lo < hi && punctTag(runes[lo]) != "" {
		lo++
	}
	for hi > lo && punctTag(runes[hi-1]) != "" {
		hi--
	}
	if lo == hi || (lo == 0 && hi == len(runes)) {
		return []Token{t}
	}

	out := make([]Token, 0, len(runes)-(hi-lo)+1)
	for _, r := range runes[:lo] {
		out = append(out, Token{Text: string(r), Tag: punctTag(r)})
	}
	out = append(out, Token{Text: string(runes[lo:hi]), Tag: t.Tag})
	for _, r := range runes[hi:] {
		out = append(out, Token{Text: string(r), Tag: punctTag(r)})
	}
	return out
}

func punctTag(r rune) string {
	switch r {
	case '.', '!', '?':
		return "."
	case ',':
		return ","
	case ';', ':':
		return ":"
	case '(', '[', '{':
		return "("
	case ')', ']', '}':
		return ")"
	case '"', '\'':
		return "''"
	}
	return ""
}

// ChunkExtractor implements skill.Extractor. A skill is a noun chunk with no
// stopword and no punctuation token in it.
type ChunkExtractor struct {
	tagger    Tagger
	stopwords map[string]struct{}
}

func NewChunkExtractor(tagger Tagger) *ChunkExtractor {
	if tagger == nil {
		tagger = NewProseTagger()
	}
	return &ChunkExtractor{tagger: tagger, stopwords: englishStopwords}
}

func (e *ChunkExtractor) Extract(ctx context.Context, text string) (set skill.Set, err error) {
	if strings.TrimSpace(text) == "" {
		return skill.NewSet(), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			set, err = nil, fmt.Errorf("tagger panic: %v", r)
		}
	}()

	tokens, err := e.tagger.Tag(text)
	if err != nil {
		return nil, fmt.Errorf("tag text: %w", err)
	}

	set = skill.NewSet()
	for _, chunk := range NounChunks(tokens) {
		if e.rejects(chunk) {
			continue
		}
		set.Add(joinTokens(chunk))
	}
	return set, nil
}

func (e *ChunkExtractor) rejects(chunk []Token) bool {
	for _, t := range chunk {
		if IsPunct(t) {
			return true
		}
		if _, ok := e.stopwords[strings.ToLower(t.Text)]; ok {
			return true
		}
	}
	return false
}

// NounChunks groups tokens into base noun phrases: an optional determiner or
// possessive, any modifiers, and a run of nouns closing the phrase.
func NounChunks(tokens []Token) [][]Token {
	var chunks [][]Token
	start, lastNN := -1, -1

	flush := func() {
		if start >= 0 && lastNN >= start {
			chunks = append(chunks, tokens[start:lastNN+1])
		}
		start, lastNN = -1, -1
	}

	for i, t := range tokens {
		switch {
		case isDeterminer(t.Tag):
			flush()
			start = i
		case isModifier(t.Tag):
			if lastNN >= 0 {
				flush()
			}
			if start < 0 {
				start = i
			}
		case isNoun(t.Tag):
			if start < 0 {
				start = i
			}
			lastNN = i
		default:
			flush()
		}
	}
	flush()

	return chunks
}

// IsPunct reports whether a token is punctuation or a symbol, by tag or by text.
func IsPunct(t Token) bool {
	switch t.Tag {
	case ",", ".", ":", "(", ")", "``", "''", "#", "$", "-LRB-", "-RRB-", "HYPH", "NFP", "SYM":
		return true
	}
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func isNoun(tag string) bool {
	return tag == "NN" || tag == "NNS" || tag == "NNP" || tag == "NNPS"
}

func isModifier(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS", "CD":
		return true
	}
	return false
}

func isDeterminer(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$", "WP$", "WDT":
		return true
	}
	return false
}

func joinTokens(chunk []Token) string {
	parts := make([]string, 0, len(chunk))
	for _, t := range chunk {
		parts = append(parts, t.Text)
	}
	return strings.Join(parts, " ")
}
