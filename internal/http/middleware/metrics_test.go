package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_RouteLabelsAndUnmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Metrics())
	r.GET("/recommendations/:kind", func(c *gin.Context) { c.String(http.StatusOK, "[]") })
	r.POST("/engagement", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	baseRoute := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/recommendations/:kind", "200"))
	baseMiss := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedRoute, "404"))
	baseNoBody := testutil.ToFloat64(httpReqs.WithLabelValues("POST", "/engagement", "204"))

	for _, kind := range []string{"posts", "reels", "music"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recommendations/"+kind, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s -> %d", kind, w.Code)
		}
	}
	for _, p := range []string{"/wp-admin", "/.env"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/engagement", nil))

	// one series per route, not per concrete path
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/recommendations/:kind", "200")); got != baseRoute+3 {
		t.Fatalf("route counter = %v; want %v", got, baseRoute+3)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", unmatchedRoute, "404")); got != baseMiss+2 {
		t.Fatalf("unmatched counter = %v; want %v", got, baseMiss+2)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("POST", "/engagement", "204")); got != baseNoBody+1 {
		t.Fatalf("204 counter = %v; want %v", got, baseNoBody+1)
	}
	if inFlight := testutil.ToFloat64(httpInflight); inFlight != 0 {
		t.Fatalf("httpInflight = %v; want 0", inFlight)
	}
}
