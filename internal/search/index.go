// Package search provides a small deterministic in-memory text index used
// to match free-form questions against curated passages (Gita verses and
// their meanings). The index is immutable after construction and safe for
// concurrent use.
//
// Scoring is Jaccard similarity between the query token set and each
// passage's token set: score = |Q ∩ P| / |Q ∪ P|.
package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Doc is one indexed passage. ID is opaque to the index and returned with
// each match so callers can map back to their own records.
type Doc struct {
	ID   string
	Text string
}

// Result is a ranked passage with its similarity score.
type Result struct {
	ID      string
	Snippet string
	Score   float64
}

// Index ranks passages for a query.
type Index interface {
	TopK(query string, k int) []Result
	Len() int
}

type Option func(*config)

type config struct {
	minRunes  int
	stopwords map[string]struct{}
	minScore  float64
}

func defaultConfig() config {
	return config{stopwords: defaultStopwords}
}

// WithMinRunes drops passages shorter than n runes.
func WithMinRunes(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.minRunes = n
		}
	}
}

// WithStopwords replaces the default English stopword list. An empty list
// disables stopword removal.
func WithStopwords(words []string) Option {
	return func(c *config) {
		c.stopwords = stopwordSet(words)
	}
}

// WithMinScore drops matches scoring below s.
func WithMinScore(s float64) Option {
	return func(c *config) {
		if s >= 0 {
			c.minScore = s
		}
	}
}

type doc struct {
	id     string
	text   string
	tokens map[string]struct{}
}

type index struct {
	cfg  config
	docs []doc
}

// New builds an Index over docs. Blank passages, passages below the
// minimum length and passages with no indexable words are skipped.
func New(docs []Doc, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	out := make([]doc, 0, len(docs))
	for _, d := range docs {
		t := strings.TrimSpace(normalizeWhitespace(d.Text))
		if t == "" {
			continue
		}
		if cfg.minRunes > 0 && utf8.RuneCountInString(t) < cfg.minRunes {
			continue
		}
		toks := tokenize(t, cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		out = append(out, doc{id: d.ID, text: t, tokens: toks})
	}
	return &index{cfg: cfg, docs: out}
}

func (i *index) Len() int { return len(i.docs) }

// TopK returns up to k best-matching passages; k <= 0 means 3. Ties break
// on shorter passage, then ID.
func (i *index) TopK(q string, k int) []Result {
	if len(i.docs) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 3
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}

	type scored struct {
		d     *doc
		score float64
		runes int
	}
	buf := make([]scored, 0, len(i.docs))
	for n := range i.docs {
		d := &i.docs[n]
		over := overlap(qTokens, d.tokens)
		if over == 0 {
			continue
		}
		score := float64(over) / float64(len(qTokens)+len(d.tokens)-over)
		if score < i.cfg.minScore {
			continue
		}
		buf = append(buf, scored{d: d, score: score, runes: utf8.RuneCountInString(d.text)})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].score != buf[b].score {
			return buf[a].score > buf[b].score
		}
		if buf[a].runes != buf[b].runes {
			return buf[a].runes < buf[b].runes
		}
		return buf[a].d.id < buf[b].d.id
	})

	k = min(k, len(buf))
	out := make([]Result, k)
	for n := 0; n < k; n++ {
		out[n] = Result{ID: buf[n].d.id, Snippet: buf[n].d.text, Score: buf[n].score}
	}
	return out
}

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*`)

// tokenize case-folds and NFC-normalizes s, extracts words and folds simple
// English plurals ("duties" -> "duty", "actions" -> "action").
func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(cases.Fold().String(norm.NFC.String(s)), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		out[stem(w)] = struct{}{}
	}
	return out
}

func stem(w string) string {
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss"):
		return w[:len(w)-1]
	}
	return w
}

func overlap(a, b map[string]struct{}) int {
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func normalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func stopwordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			m[w] = struct{}{}
		}
	}
	return m
}

var defaultStopwords = stopwordSet(strings.Fields(`
	a an and are as at be but by can do does for from how i if in into is it
	me my of on or so that the their them there these they this to was what
	when where which who why will with you your should would could am have has
`))
