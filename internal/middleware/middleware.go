package middleware

import (
	"net/http"
	"strconv"
	"time"

	"go-pos-register/internal/metrics"
	"go-pos-register/internal/session"

	"github.com/gin-gonic/gin"
)

// RequireEmployee guards register routes: a cashier session must exist.
// The guard reads session presence only; it does not inspect credentials.
func RequireEmployee(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Employee()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
			c.Abort()
			return
		}
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			c.Abort()
			return
		}

		c.Set("employeeSession", *sess)
		c.Next()
	}
}

// RequireAdmin guards back-office routes the same way.
func RequireAdmin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := sessions.Admin()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
			c.Abort()
			return
		}
		if sess == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			c.Abort()
			return
		}

		c.Set("adminSession", *sess)
		c.Next()
	}
}

// Observe records request latency per method/route/status.
func Observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
