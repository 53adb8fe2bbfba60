package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gin-gonic/gin"
)

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodOptions: true,
}

// Metrics records http_requests_total and http_request_duration_seconds
// in set, labelled by method, route template and status.
// Unmatched routes share the path label "unmatched" and unknown methods
// the method label "other" to bound cardinality.
func Metrics(set *metrics.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		if !knownMethods[method] {
			method = "other"
		}
		labels := fmt.Sprintf(`{method=%q,path=%q,status=%q}`,
			method, route, strconv.Itoa(c.Writer.Status()))
		set.GetOrCreateCounter("http_requests_total" + labels).Inc()
		set.GetOrCreateHistogram("http_request_duration_seconds" + labels).UpdateDuration(start)
	}
}
