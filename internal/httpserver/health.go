package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "voice-calendar-assistant"

	llmPingTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API and its LLM backend are healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	status := "healthy"
	llmStatus := "unconfigured"

	if srv.llmPinger != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), llmPingTimeout)
		defer cancel()

		if err := srv.llmPinger.Ping(pingCtx); err != nil {
			llmStatus = "unreachable"
			status = "degraded"
		} else {
			llmStatus = "ok"
		}
	}

	response.OK(c, gin.H{
		"status":  status,
		"llm":     llmStatus,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
