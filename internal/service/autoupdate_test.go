package service

import (
	"testing"
	"time"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

func TestNextCheck(t *testing.T) {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency string
		want      time.Time
	}{
		{model.FrequencyDaily, base.AddDate(0, 0, 1)},
		{model.FrequencyWeekly, base.AddDate(0, 0, 7)},
		{model.FrequencyMonthly, base.AddDate(0, 0, 30)},
		{"fortnightly", base.AddDate(0, 0, 7)},
		{"", base.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		if got := nextCheck(base, tt.frequency); !got.Equal(tt.want) {
			t.Errorf("nextCheck(%q) = %v, want %v", tt.frequency, got, tt.want)
		}
	}
}

func TestDecorate(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("never checked is due", func(t *testing.T) {
		c := model.AutoUpdateConfig{Enabled: true, Frequency: model.FrequencyWeekly}
		decorate(&c, now)
		if !c.NeedsUpdate {
			t.Error("expected NeedsUpdate for never-checked config")
		}
		if c.NextCheck != nil {
			t.Error("expected nil NextCheck for never-checked config")
		}
	})

	t.Run("never checked but disabled is not due", func(t *testing.T) {
		c := model.AutoUpdateConfig{Enabled: false, Frequency: model.FrequencyWeekly}
		decorate(&c, now)
		if c.NeedsUpdate {
			t.Error("disabled config should never be due")
		}
	})

	t.Run("checked recently is not due", func(t *testing.T) {
		last := now.AddDate(0, 0, -3)
		c := model.AutoUpdateConfig{Enabled: true, Frequency: model.FrequencyWeekly, LastCheck: &last}
		decorate(&c, now)
		if c.NeedsUpdate {
			t.Error("3 days into a weekly cycle should not be due")
		}
		want := last.AddDate(0, 0, 7)
		if c.NextCheck == nil || !c.NextCheck.Equal(want) {
			t.Errorf("NextCheck = %v, want %v", c.NextCheck, want)
		}
	})

	t.Run("exactly at the boundary is due", func(t *testing.T) {
		last := now.AddDate(0, 0, -1)
		c := model.AutoUpdateConfig{Enabled: true, Frequency: model.FrequencyDaily, LastCheck: &last}
		decorate(&c, now)
		if !c.NeedsUpdate {
			t.Error("a daily config checked exactly one day ago is due")
		}
	})

	t.Run("past the boundary is due", func(t *testing.T) {
		last := now.AddDate(0, 0, -40)
		c := model.AutoUpdateConfig{Enabled: true, Frequency: model.FrequencyMonthly, LastCheck: &last}
		decorate(&c, now)
		if !c.NeedsUpdate {
			t.Error("40 days into a monthly cycle is due")
		}
	})
}
