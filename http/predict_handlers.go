package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pmnm-iot/ml-service/classify"
	"github.com/pmnm-iot/ml-service/models"
)

// handlePredict classifies a set of sensor readings
// POST /predict
func (s *Server) handlePredict(c *gin.Context) {
	var reading models.SensorReading
	if err := c.ShouldBindJSON(&reading); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	label, confidence := classify.Classify(*reading.Temperature, *reading.CO2Level)
	elapsed := time.Since(start)

	c.JSON(http.StatusOK, models.Prediction{
		Label:            label,
		Confidence:       confidence,
		Temperature:      *reading.Temperature,
		CO2Level:         *reading.CO2Level,
		ProcessingTimeMS: models.RoundMillis(elapsed),
	})
}

// handleHealth reports liveness for container orchestration
// GET /health
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   ServiceName,
		"timestamp": float64(time.Now().UnixNano()) / 1e9,
	})
}

// handleInfo describes the service and its endpoints
// GET /
func (s *Server) handleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "ML Service - IoT Data Classification",
		"version": Version,
		"status":  "running",
		"endpoints": gin.H{
			"predict": "/predict (POST)",
			"health":  "/health (GET)",
		},
	})
}
