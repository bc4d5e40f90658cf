// Package services implements the feed's application logic: personalized
// recommendations, daily devotional content, the panchangam, regional
// trending and the assistant. This file centralizes service-level error
// values so that callers can check them with errors.Is.
//
// Upstream failures (repository, text generator) are never returned from
// read paths; they degrade to fallback content. The errors below cover
// caller mistakes only, and translating them into HTTP status codes is the
// handler layer's job.
package services

import "errors"

var (
	// ErrInvalidKind is returned for a content kind outside posts, reels,
	// music and temples.
	ErrInvalidKind = errors.New("invalid content kind")

	// ErrInvalidEngagement is returned when an engagement kind is unknown or
	// the item id is empty.
	ErrInvalidEngagement = errors.New("invalid engagement")

	// ErrEmptyQuestion is returned when the assistant receives a blank question.
	ErrEmptyQuestion = errors.New("question is empty")

	// ErrQuestionTooLong is returned when the question exceeds the configured
	// maximum length.
	ErrQuestionTooLong = errors.New("question too long")
)
