package audit

import (
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		token    string
		wantMode Mode
		wantOK   bool
	}{
		{"audited", ModeAudited, true},
		{"not-audited", ModeNotAudited, true},
		{"", "", false},
		{"AUDITED", "", false},
		{"aud", "", false},
		{"naud", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			mode, ok := ParseMode(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("ParseMode(%q): expected ok=%v, got %v", tt.token, tt.wantOK, ok)
			}
			if mode != tt.wantMode {
				t.Errorf("ParseMode(%q): expected %q, got %q", tt.token, tt.wantMode, mode)
			}
		})
	}
}

func TestModeStatusCode(t *testing.T) {
	if ModeAudited.StatusCode() != StatusAudited {
		t.Errorf("audited mode should select %s", StatusAudited)
	}
	if ModeNotAudited.StatusCode() != StatusNotAudited {
		t.Errorf("not-audited mode should select %s", StatusNotAudited)
	}
}

func TestSummaryEntriesOrder(t *testing.T) {
	entries := Summary{Total: 3, Unique: 1, Duplicated: 2}.Entries()

	wantMetrics := []string{MetricTotal, MetricUnique, MetricDuplicated}
	wantValues := []int{3, 1, 2}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.Metric != wantMetrics[i] || entry.Value != wantValues[i] {
			t.Errorf("entry %d: expected (%s, %d), got (%s, %d)",
				i, wantMetrics[i], wantValues[i], entry.Metric, entry.Value)
		}
	}
}
