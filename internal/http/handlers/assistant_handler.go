// Assistant HTTP handlers.
//
//   - POST /assistant/chat       (question with recent history)
//   - POST /assistant/guidance   (question answered in the voice of Krishna)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/bhakti-feed/internal/services"
	"github.com/tbourn/bhakti-feed/internal/textgen"
)

// ChatRequest is the JSON payload for an assistant question.
type ChatRequest struct {
	// Question is the user's question.
	Question string `json:"question" example:"How should I begin a daily puja?"`
	// History holds prior turns, oldest first. Only the most recent turns
	// are forwarded to the generator.
	History []textgen.Message `json:"history"`
}

// GuidanceRequest is the JSON payload for a guidance question.
type GuidanceRequest struct {
	Question string `json:"question" example:"How do I stay calm at work?"`
}

// AssistantChat godoc
// @ID          assistantChat
// @Summary     Ask the assistant
// @Description Answers a spiritual question. When generation is unavailable a curated answer is returned with source "curated".
// @Tags        Assistant
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.ChatRequest  true  "Question"
//
// @Success     200  {object}  services.Answer
// @Failure     400  {object}  handlers.ErrorResponse  "Empty question"
// @Failure     413  {object}  handlers.ErrorResponse  "Question too long"
// @Router      /assistant/chat [post]
func (h *Handlers) AssistantChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ans, err := h.assistant.Ask(c.Request.Context(), req.Question, req.History)
	if err != nil {
		failQuestion(c, err)
		return
	}
	ok(c, http.StatusOK, ans)
}

// AssistantGuidance godoc
// @ID          assistantGuidance
// @Summary     Guidance from the Gita
// @Tags        Assistant
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GuidanceRequest  true  "Question"
//
// @Success     200  {object}  services.Answer
// @Failure     400  {object}  handlers.ErrorResponse  "Empty question"
// @Failure     413  {object}  handlers.ErrorResponse  "Question too long"
// @Router      /assistant/guidance [post]
func (h *Handlers) AssistantGuidance(c *gin.Context) {
	var req GuidanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	ans, err := h.assistant.KrishnaGuidance(c.Request.Context(), req.Question)
	if err != nil {
		failQuestion(c, err)
		return
	}
	ok(c, http.StatusOK, ans)
}

// failQuestion maps assistant validation errors to responses.
func failQuestion(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyQuestion):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "question required")
	case errors.Is(err, services.ErrQuestionTooLong):
		fail(c, http.StatusRequestEntityTooLarge, ErrCodeQuestionTooLong, "question too long")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, fmt.Sprintf("assistant: %v", err))
	}
}
