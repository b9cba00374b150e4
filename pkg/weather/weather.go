// Package weather serves current conditions and simple farm alerts.
package weather

import (
	"context"
)

const (
	AlertHeatwave = "Heatwave warning! Increase irrigation."
	AlertNormal   = "Normal weather conditions."
	AlertMock     = "No active alerts. Good for harvesting."

	heatwaveAbove = 35.0
)

type Main struct {
	Temp     float64 `json:"temp"`
	Humidity float64 `json:"humidity"`
}

type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type Wind struct {
	Speed float64 `json:"speed"`
}

// Report keeps the upstream field names so existing clients can read it.
type Report struct {
	Name     string      `json:"name,omitempty"`
	Main     Main        `json:"main"`
	Weather  []Condition `json:"weather"`
	Wind     *Wind       `json:"wind,omitempty"`
	Alerts   []string    `json:"alerts"`
	Source   string      `json:"source"`
	Degraded bool        `json:"degraded"`
}

type Provider interface {
	Current(ctx context.Context, lat, lon float64) (*Report, error)
}

// Alerts derives advisories from live readings.
func Alerts(r *Report) []string {
	if r.Main.Temp > heatwaveAbove {
		return []string{AlertHeatwave}
	}
	return []string{AlertNormal}
}

type mockProvider struct{}

// NewMock returns fixed fair-weather readings.
func NewMock() Provider { return mockProvider{} }

func (mockProvider) Current(context.Context, float64, float64) (*Report, error) {
	return MockReport(), nil
}

func MockReport() *Report {
	return &Report{
		Main:    Main{Temp: 28, Humidity: 65},
		Weather: []Condition{{Main: "Clear", Description: "sunny day"}},
		Alerts:  []string{AlertMock},
		Source:  "mock",
	}
}
