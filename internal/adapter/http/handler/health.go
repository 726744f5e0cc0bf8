package handler

import (
	"net/http"

	"gear-client/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports the state of every dependency. Any failure answers 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	type depStatus struct {
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	}

	return func(c *gin.Context) {
		deps := make(map[string]depStatus, len(checkers))
		status, httpCode := "healthy", http.StatusOK

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				status, httpCode = "degraded", http.StatusServiceUnavailable
				continue
			}
			deps[checker.Name()] = depStatus{Status: "healthy"}
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
