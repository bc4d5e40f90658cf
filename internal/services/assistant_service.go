// Package services – AssistantService
//
// This file implements the devotional assistant: free-form questions are
// answered by the text generator with the last few conversation turns as
// context, and keyword-matched curated answers stand in when the generator
// is unavailable; guidance falls back to the closest curated Gita verse.
// Mantra suggestions come from a curated table.
package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tbourn/bhakti-feed/internal/domain"
	"github.com/tbourn/bhakti-feed/internal/observability"
	"github.com/tbourn/bhakti-feed/internal/search"
	"github.com/tbourn/bhakti-feed/internal/textgen"

	// OpenTelemetry
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Answer sources.
const (
	SourceGenerated = "generated"
	SourceCurated   = "curated"
)

// Answer is an assistant reply.
type Answer struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}

// AssistantService answers spiritual questions.
type AssistantService struct {
	Gen textgen.Generator

	// MaxQuestionRunes caps question length; 0 disables the check.
	MaxQuestionRunes int
	// HistoryTurns is how many prior turns are sent with a question.
	HistoryTurns int

	Log zerolog.Logger
}

// NewAssistantService constructs an AssistantService with defaults.
func NewAssistantService(gen textgen.Generator, log zerolog.Logger) *AssistantService {
	if gen == nil {
		gen = textgen.Disabled{}
	}
	return &AssistantService{Gen: gen, MaxQuestionRunes: 2000, HistoryTurns: 5, Log: log}
}

// Ask answers question given prior conversation turns.
func (s *AssistantService) Ask(ctx context.Context, question string, history []textgen.Message) (Answer, error) {
	ctx, span := otel.Tracer("services/AssistantService").Start(ctx, "Ask",
		trace.WithAttributes(attribute.Int("history.len", len(history))),
	)
	defer span.End()

	q, err := s.validate(question)
	if err != nil {
		return Answer{}, err
	}

	msgs := append(s.recent(history), textgen.Message{Role: textgen.RoleUser, Content: q})
	text, err := s.Gen.Generate(ctx, textgen.Chat, msgs)
	if err == nil {
		return Answer{Text: text, Source: SourceGenerated}, nil
	}
	observability.ObserveFallback(string(textgen.Chat))
	s.Log.Warn().Err(err).Msg("assistant generator unavailable; using curated answer")
	return Answer{Text: curatedAnswer(q), Source: SourceCurated}, nil
}

// KrishnaGuidance answers question in the voice of Krishna's teachings.
func (s *AssistantService) KrishnaGuidance(ctx context.Context, question string) (Answer, error) {
	ctx, span := otel.Tracer("services/AssistantService").Start(ctx, "KrishnaGuidance")
	defer span.End()

	q, err := s.validate(question)
	if err != nil {
		return Answer{}, err
	}
	text, err := s.Gen.Generate(ctx, textgen.KrishnaGuidance, []textgen.Message{{Role: textgen.RoleUser, Content: q}})
	if err == nil {
		return Answer{Text: text, Source: SourceGenerated}, nil
	}
	observability.ObserveFallback(string(textgen.KrishnaGuidance))
	s.Log.Warn().Err(err).Msg("guidance generator unavailable; using curated answer")
	return Answer{Text: curatedGuidance(q), Source: SourceCurated}, nil
}

const defaultGuidance = "Dear child, contemplate deeply on your question. The answer lies within your own heart."

// verseIndex matches questions against the English text of the curated
// Gita verses.
var verseIndex = func() search.Index {
	docs := make([]search.Doc, 0, len(gitaVerses))
	for _, v := range gitaVerses {
		t := v.Texts[gitaEnglish]
		docs = append(docs, search.Doc{ID: verseRef(v), Text: t.Translation + " " + t.Meaning})
	}
	return search.New(docs, search.WithMinScore(0.05))
}()

func verseRef(v gitaVerse) string { return fmt.Sprintf("%d.%d", v.Chapter, v.Verse) }

// curatedGuidance quotes the verse closest to question, or a general
// reflection when nothing matches.
func curatedGuidance(question string) string {
	res := verseIndex.TopK(question, 1)
	if len(res) == 0 {
		return defaultGuidance
	}
	for _, v := range gitaVerses {
		if verseRef(v) == res[0].ID {
			t := v.Texts[gitaEnglish]
			return fmt.Sprintf("Dear child, in the Gita (%s) I say: \"%s\" %s", res[0].ID, t.Translation, t.Meaning)
		}
	}
	return defaultGuidance
}

// SuggestMantra returns a mantra for deity and purpose. Unknown deities use
// Shiva's table; unknown purposes use the general mantra.
func (s *AssistantService) SuggestMantra(deity, purpose string) string {
	table, ok := mantras[domain.ParseDeity(deity)]
	if !ok {
		table = mantras[domain.DeityShiva]
	}
	if m, ok := table[strings.ToLower(strings.TrimSpace(purpose))]; ok {
		return m
	}
	return table["general"]
}

func (s *AssistantService) validate(question string) (string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", ErrEmptyQuestion
	}
	if s.MaxQuestionRunes > 0 && utf8.RuneCountInString(q) > s.MaxQuestionRunes {
		return "", ErrQuestionTooLong
	}
	return q, nil
}

// recent keeps the last HistoryTurns user/assistant turns with content.
func (s *AssistantService) recent(history []textgen.Message) []textgen.Message {
	out := make([]textgen.Message, 0, len(history))
	for _, m := range history {
		if (m.Role == textgen.RoleUser || m.Role == textgen.RoleAssistant) && strings.TrimSpace(m.Content) != "" {
			out = append(out, m)
		}
	}
	if s.HistoryTurns > 0 && len(out) > s.HistoryTurns {
		out = out[len(out)-s.HistoryTurns:]
	}
	return out
}

// curatedAnswer picks a canned reply by keyword.
func curatedAnswer(question string) string {
	q := strings.ToLower(question)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("mantra", "prayer"):
		switch {
		case has("shiva"):
			return "Om Namah Shivaya is the powerful five-syllable mantra of Lord Shiva. Chanting it with devotion brings peace, removes obstacles and connects you with divine consciousness. Repeat it 108 times daily during meditation. May Lord Shiva's blessings be with you. 🙏"
		case has("krishna", "vishnu"):
			return "Hare Krishna, Hare Krishna, Krishna Krishna, Hare Hare is the Mahamantra that purifies consciousness and brings divine love. The Gayatri Mantra is also excellent for spiritual growth. Chant with devotion and pure intention. Radhe Krishna! 🕉️"
		}
		return "Om is the primordial sound of the universe. The Gayatri Mantra is powerful for daily practice: 'Om Bhur Bhuva Swaha, Tat Savitur Varenyam, Bhargo Devasya Dhimahi, Dhiyo Yo Nah Prachodayat.' Chant with sincerity and devotion. 🙏"
	case has("sloka", "meaning", "explain"):
		return "Slokas are sacred verses from scriptures like the Bhagavad Gita, the Vedas and the Puranas, and each carries deep spiritual wisdom. Share the Sanskrit text or the verse you are curious about and I will help you understand its meaning. 📿"
	case has("festival", "celebration"):
		return "Hindu festivals celebrate the divine in many forms: Diwali, the festival of lights; Holi, the festival of colors; Navratri, nine nights of the Goddess; and Mahashivratri, the night of Shiva. May these celebrations fill your life with joy and spiritual growth. 🪔"
	case has("pray", "meditate", "practice"):
		return "Daily practice (sadhana) nourishes the spirit. Start the day with a prayer, light a lamp, chant a mantra and offer gratitude. Devotion is about sincere intention, not perfection. May your spiritual journey be blessed. 🪷"
	}
	return "Thank you for your spiritual question. I can help with mantras, slokas, festivals and daily practice. Could you rephrase or be a little more specific? May you be blessed on your spiritual path. 🙏"
}
