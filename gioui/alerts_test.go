package gioui

import (
	"slices"
	"testing"
	"time"
)

func TestAlerts(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := &Alerts{now: func() time.Time { return now }}
	a.Add("info", Info, time.Second)
	a.Add("broken", Warning, 3*time.Second)
	a.Add("info", Error, 2*time.Second) // renews and raises

	var got []string
	for al := range a.Iterate {
		got = append(got, al.Message)
	}
	if !slices.Equal(got, []string{"info", "broken"}) {
		t.Errorf("alerts = %v", got)
	}

	next, ok := a.Update()
	if !ok || !next.Equal(now.Add(2*time.Second)) {
		t.Errorf("Update = %v, %v", next, ok)
	}
	now = now.Add(2 * time.Second)
	if _, ok := a.Update(); !ok {
		t.Fatal("every alert expired")
	}
	for al := range a.Iterate {
		if al.Message != "broken" {
			t.Errorf("expired alert %q still shown", al.Message)
		}
	}
	now = now.Add(time.Hour)
	if _, ok := a.Update(); ok {
		t.Error("alerts left after they all expired")
	}
}
