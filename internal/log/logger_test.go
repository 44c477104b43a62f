package log

import "testing"

func TestMemoryLoggerAssignsMonotonicSeq(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewLogMessage("first"))
	l.Log(NewLogMessage("second"))

	events := l.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Seq != 1 || events[1].Seq != 2 {
		t.Errorf("expected monotonic Seq 1,2, got %d,%d", events[0].Seq, events[1].Seq)
	}
}

func TestDrainReturnsAndClearsEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewLogMessage("one"))
	l.Log(NewLogMessage("two"))

	drained := l.Drain()
	if len(drained) != 2 {
		t.Fatalf("expected Drain to return both events, got %d", len(drained))
	}
	if len(l.Events()) != 0 {
		t.Error("expected Drain to clear the buffer")
	}
}

func TestEventsOfTypeFilters(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewCardMoved(1, 0, 1))
	l.Log(NewCardDamaged(2, 3, 5, 1))
	l.Log(NewCardMoved(1, 1, 2))

	moved := l.EventsOfType(EventCardMoved)
	if len(moved) != 2 {
		t.Errorf("expected 2 CardMoved events, got %d", len(moved))
	}
}

func TestLastEventReturnsZeroValueWhenEmpty(t *testing.T) {
	l := NewMemoryLogger()
	if ev := l.LastEvent(); ev.Seq != 0 || ev.Details != "" {
		t.Errorf("expected a zero-value event from an empty logger, got %+v", ev)
	}
}

func TestNewCardDamagedFieldsAndDetails(t *testing.T) {
	ev := NewCardDamaged(5, 3, 12, 9)
	if ev.Type != EventCardDamaged || ev.CardID != 5 || ev.Amount != 3 || ev.Position != 12 || ev.SourceID != 9 {
		t.Errorf("expected all fields to round-trip, got %+v", ev)
	}
	if ev.Details == "" {
		t.Error("expected a human-readable Details string")
	}
}
