package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Route template keeps label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

// Timer measures a tool execution
type Timer struct {
	start   time.Time
	metrics *Metrics
	tool    string
}

// NewTimer starts timing tool
func NewTimer(metrics *Metrics, tool string) *Timer {
	return &Timer{start: time.Now(), metrics: metrics, tool: tool}
}

// Stop records the duration with the outcome
func (t *Timer) Stop(success bool, kind string) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordToolCall(t.tool, success, kind, time.Since(t.start))
}
