package models

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pmnm-iot/ml-service/classify"
)

// SensorReading is a single set of readings submitted for classification.
// Fields are pointers so that a missing field is distinguishable from a
// legitimate zero (temperature 0 and co2_level 0 are valid readings).
//
// Humidity is validated but intentionally never reaches the classifier:
// existing callers send it, so it stays in the wire contract.
type SensorReading struct {
	Temperature *float64 `json:"temperature" binding:"required"`
	Humidity    *int     `json:"humidity" binding:"required,gte=0,lte=100"`
	CO2Level    *int     `json:"co2_level" binding:"required,gte=0"`
}

// Validate applies the same checks the HTTP binding layer enforces,
// for ingress paths that decode JSON directly (the Kafka bridge).
func (r SensorReading) Validate() error {
	if r.Temperature == nil {
		return errors.New("temperature is required")
	}
	if r.Humidity == nil {
		return errors.New("humidity is required")
	}
	if *r.Humidity < 0 || *r.Humidity > 100 {
		return fmt.Errorf("humidity %d out of range [0,100]", *r.Humidity)
	}
	if r.CO2Level == nil {
		return errors.New("co2_level is required")
	}
	if *r.CO2Level < 0 {
		return fmt.Errorf("co2_level %d must be non-negative", *r.CO2Level)
	}
	return nil
}

// Prediction is the classification result returned to callers. Temperature
// and CO2Level echo the input; ProcessingTimeMS is measured by the caller
// around the classification call.
type Prediction struct {
	Label            classify.Label `json:"label"`
	Confidence       float64        `json:"confidence"`
	Temperature      float64        `json:"temperature"`
	CO2Level         int            `json:"co2_level"`
	ProcessingTimeMS float64        `json:"processing_time_ms"`
}

// RoundMillis converts a duration to milliseconds rounded to 3 decimals,
// the precision every transport reports in processing_time_ms.
func RoundMillis(d time.Duration) float64 {
	ms := float64(d.Nanoseconds()) / 1e6
	return math.Round(ms*1000) / 1000
}
