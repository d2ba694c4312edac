package core

import (
	"testing"
)

func TestNewTime(t *testing.T) {
	time := NewTime(TimeConfiguration{FramesPerSecond: 60, EventPollDelay: 10})
	defer time.Stop()

	if time.Fps() != 60 {
		t.Errorf("got %d fps, want 60", time.Fps())
	}
	if time.FpsTicker() == nil || time.EventTicker() == nil {
		t.Error("tickers must be initialised")
	}
}

func TestNewTimeUncapped(t *testing.T) {
	time := NewTime(TimeConfiguration{})
	defer time.Stop()

	if time.Fps() != 0 {
		t.Errorf("got %d fps, want 0 for uncapped", time.Fps())
	}
	if time.FpsTicker() == nil {
		t.Error("uncapped configuration must still produce a ticker")
	}
}
