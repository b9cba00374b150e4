package ai

import (
	"context"
	"strings"
)

type mockClient struct{}

// NewMock answers from a few canned rules. Used when no provider is configured.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Name() string { return "mock" }

var mockRules = []struct {
	keywords []string
	reply    string
}{
	{[]string{"irrigat", "water"}, "Irrigate early in the morning and check soil moisture a few centimetres down before each cycle. Drip irrigation saves water on sandy soils."},
	{[]string{"fertili", "urea", "npk", "dap"}, "Split nitrogen into two or three doses and apply phosphorus at sowing. A soil test will tell you exact quantities."},
	{[]string{"soil", "clay", "loam", "sandy"}, "Add organic matter every season. Clay soils benefit from raised beds and sandy soils from mulching."},
	{[]string{"weather", "rain", "heat", "temperature"}, "Watch the forecast before spraying or irrigating. During heatwaves increase irrigation frequency and avoid midday field work."},
	{[]string{"pest", "disease", "insect"}, "Scout the field weekly and act on thresholds rather than calendar sprays. Remove infected plants early."},
}

func (m *mockClient) Complete(_ context.Context, _ string, message, kbContext string) (string, error) {
	msg := strings.ToLower(message)
	reply := "I can help with crop planning, soil health, irrigation, fertilizers and weather. Tell me about your soil, season and water availability."
	for _, r := range mockRules {
		if containsAny(msg, r.keywords) {
			reply = r.reply
			break
		}
	}
	if note := firstLine(kbContext); note != "" {
		reply += "\n\nFrom the knowledge base: " + note
	}
	return reply, nil
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
