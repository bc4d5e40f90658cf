// Package textgen talks to the remote text generator that writes daily
// messages, quotes, horoscopes and assistant replies. Callers treat every
// error from this package as a signal to use curated content instead.
package textgen

import (
	"context"
	"errors"
)

// ContentType selects the system prompt mode of a request.
type ContentType string

const (
	SpiritualMessage ContentType = "spiritual-message"
	Horoscope        ContentType = "horoscope"
	Quote            ContentType = "quote"
	Chat             ContentType = "chat"
	KrishnaGuidance  ContentType = "krishna-guidance"
	Meditation       ContentType = "meditation"
)

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Generator produces text for a content type from a conversation. The
// system prompt is added by the implementation.
type Generator interface {
	Generate(ctx context.Context, t ContentType, msgs []Message) (string, error)
}

// Errors returned by generators.
var (
	ErrDisabled      = errors.New("text generator disabled")
	ErrRateLimited   = errors.New("text generator rate limited")
	ErrQuotaExceeded = errors.New("text generator quota exceeded")
	ErrUnavailable   = errors.New("text generator unavailable")
	ErrCircuitOpen   = errors.New("text generator circuit open")
	ErrEmptyResponse = errors.New("text generator returned no content")
)

// Disabled is a Generator that always fails with ErrDisabled. It is used
// when no API key is configured.
type Disabled struct{}

func (Disabled) Generate(context.Context, ContentType, []Message) (string, error) {
	return "", ErrDisabled
}

const basePrompt = `You are DharmaAI, the spiritual companion of the Bhakti app.
Gently guide users toward peace, happiness, emotional balance and dharmic living using Sanatana Dharma wisdom.

CORE PRINCIPLES:
- Keep a calm, compassionate, reassuring tone
- Be non-judgmental, non-fearful and non-preachy
- Do NOT give medical, psychiatric, legal or financial advice
- Do NOT claim to cure diseases or predict guaranteed outcomes
- Avoid politics, controversies and extreme beliefs
- Keep responses under 200 words unless asked for detail

RESPONSE ORDER:
1. Acknowledge the feeling
2. Calm and reassure
3. Offer a simple practice (mantra, breath, reflection)
4. End with a gentle positive note

MANTRA SUGGESTIONS:
- Stress or fear: Om Namah Shivaya, Maha Mrityunjaya
- Joy: Hare Krishna, Govinda Jaya Jaya
- Focus or obstacles: Om Gan Ganapataye Namah
- Strength: Om Dum Durgaye Namah
- Peace: Om Namo Narayanaya
- Universal: OM, So-Ham

You are not a guru. You are a gentle companion on the path of peace.`

var modes = map[ContentType]string{
	SpiritualMessage: "SPECIAL MODE: Daily Spiritual Message\nProvide an inspiring, warm devotional message under 150 words. Focus on hope, inner peace and spiritual encouragement. End with a blessing.",
	Horoscope:        "SPECIAL MODE: Vedic Zodiac Insight\nUse Vedic zodiac signs only. Give only positive, guidance-based insights with no fear and no negative claims. Focus on mindset, effort, patience and balance. Keep under 200 words.",
	Quote:            "SPECIAL MODE: Devotional Quote\nProvide a single inspiring quote under 100 words. Be poetic and uplifting. Draw from the Bhagavad Gita, the Upanishads or traditional wisdom.",
	KrishnaGuidance:  "SPECIAL MODE: Krishna's Guidance\nAnswer as loving guidance in the spirit of Lord Krishna's teachings in the Bhagavad Gita. Address the user warmly and cite a verse when it fits.",
	Meditation:       "SPECIAL MODE: Meditation Guidance\nGuide the user through a calming meditation with minimal words. Encourage breath awareness and a soft OM resonance. Silence is as important as sound. Never force chanting.",
}

// SystemPrompt returns the system prompt for t. Chat and unknown types use
// the base prompt.
func SystemPrompt(t ContentType) string {
	if m, ok := modes[t]; ok {
		return basePrompt + "\n\n" + m
	}
	return basePrompt
}
