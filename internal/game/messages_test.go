package game

import "testing"

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(2, 0)
	l.Add("one", MsgInfo)
	l.Add("two", MsgInfo)
	l.Add("three", MsgWarning)

	got := l.Recent(5)
	if len(got) != 2 || got[0].Text != "two" || got[1].Text != "three" {
		t.Errorf("Expected [two three], got %+v", got)
	}
	if got[1].Priority != MsgWarning {
		t.Errorf("Expected warning priority, got %d", got[1].Priority)
	}
}

func TestMessageLogWraps(t *testing.T) {
	l := NewMessageLog(10, 10)
	l.Add("route found between far cells", MsgRoute)

	want := []string{"route", "found", "between", "far cells"}
	got := l.Recent(10)
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %+v", len(want), got)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("Line %d: expected %q, got %q", i, w, got[i].Text)
		}
	}
}
