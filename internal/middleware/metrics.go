package middleware

import (
	"time"

	"chokokon/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records every request under its route pattern, so ids in the path
// do not create new series.
func Metrics(rec *metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rec.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
