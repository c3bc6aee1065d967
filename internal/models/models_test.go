package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNotificationJSONCarriesTTLMillis(t *testing.T) {
	t.Parallel()
	n := Notification{
		ID:        "42",
		Title:     "Refresh failed",
		Severity:  SeverityWarning,
		CreatedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		TTL:       5 * time.Second,
	}

	data, err := json.Marshal(n)
	if err != nil {
		t.Fatal(err)
	}

	var wire map[string]any
	if err := json.Unmarshal(data, &wire); err != nil {
		t.Fatal(err)
	}
	if got, ok := wire["ttl_ms"].(float64); !ok || got != 5000 {
		t.Errorf("ttl_ms = %v, want 5000", wire["ttl_ms"])
	}

	var back Notification
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.TTL != 5*time.Second {
		t.Errorf("TTL after round trip = %v, want 5s", back.TTL)
	}
	if back.ID != "42" || back.Severity != SeverityWarning {
		t.Errorf("fields after round trip = %+v", back)
	}
}
