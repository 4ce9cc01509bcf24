package models

import (
	"testing"
	"time"
)

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }

func TestValidateAcceptsZeroValues(t *testing.T) {
	r := SensorReading{Temperature: ptrF(0), Humidity: ptrI(0), CO2Level: ptrI(0)}
	if err := r.Validate(); err != nil {
		t.Fatalf("zero readings should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name    string
		reading SensorReading
	}{
		{"missing temperature", SensorReading{Humidity: ptrI(50), CO2Level: ptrI(400)}},
		{"missing humidity", SensorReading{Temperature: ptrF(20), CO2Level: ptrI(400)}},
		{"missing co2", SensorReading{Temperature: ptrF(20), Humidity: ptrI(50)}},
		{"humidity too high", SensorReading{Temperature: ptrF(20), Humidity: ptrI(101), CO2Level: ptrI(400)}},
		{"humidity negative", SensorReading{Temperature: ptrF(20), Humidity: ptrI(-1), CO2Level: ptrI(400)}},
		{"co2 negative", SensorReading{Temperature: ptrF(20), Humidity: ptrI(50), CO2Level: ptrI(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.reading.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRoundMillis(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want float64
	}{
		{1500 * time.Microsecond, 1.5},
		{1234567 * time.Nanosecond, 1.235},
		{1234400 * time.Nanosecond, 1.234},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundMillis(tc.d); got != tc.want {
			t.Fatalf("RoundMillis(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}
}

func TestHumidityBoundsInclusive(t *testing.T) {
	for _, h := range []int{0, 100} {
		r := SensorReading{Temperature: ptrF(20), Humidity: ptrI(h), CO2Level: ptrI(400)}
		if err := r.Validate(); err != nil {
			t.Fatalf("humidity %d should be valid: %v", h, err)
		}
	}
}
