// Cache administration handlers.
//
//   - POST /refresh       (regenerate every cached artifact for the default profile)
//   - POST /cache/sweep   (remove outdated cache entries)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SweepResponse reports how many cache entries a sweep removed.
type SweepResponse struct {
	Removed int `json:"removed" example:"4"`
}

// Refresh godoc
// @ID          refresh
// @Summary     Refresh cached content
// @Description Sweeps outdated entries and regenerates daily, weekly and recommendation content for the default profile.
// @Tags        Admin
// @Success     204  {string}  string  "No Content"
// @Failure     500  {object}  handlers.ErrorResponse  "Refresh failed"
// @Router      /refresh [post]
func (h *Handlers) Refresh(c *gin.Context) {
	if err := h.refresher.RefreshAll(c.Request.Context()); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeRefreshFailed, err.Error())
		return
	}
	noContent(c)
}

// SweepCache godoc
// @ID          sweepCache
// @Summary     Remove outdated cache entries
// @Tags        Admin
// @Produce     json
// @Success     200  {object}  handlers.SweepResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Sweep failed"
// @Router      /cache/sweep [post]
func (h *Handlers) SweepCache(c *gin.Context) {
	n, err := h.spiritual.ClearOldCache(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSweepFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, SweepResponse{Removed: n})
}
