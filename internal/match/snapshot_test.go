package match

import (
	"testing"

	"github.com/berserk-vibe/matchd/internal/boardgeo"
)

func TestSnapshotRedactsFaceDownEnemyCards(t *testing.T) {
	e := newMainEngine(t, 20)
	hiddenID := place(t, e, "kobold", 2, boardgeo.Pos(3, 0))
	e.State.Board.CardByID(hiddenID).FaceDown = true
	ownID := place(t, e, "cyclops", 1, boardgeo.Pos(2, 0))

	snap := e.Snapshot(1)
	var hiddenView, ownView *CardView
	for i := range snap.Cards {
		switch snap.Cards[i].ID {
		case hiddenID:
			hiddenView = &snap.Cards[i]
		case ownID:
			ownView = &snap.Cards[i]
		}
	}
	if hiddenView == nil || !hiddenView.Hidden || hiddenView.DefID != "" {
		t.Errorf("expected the face-down enemy card to be redacted to {hidden, no defid}, got %+v", hiddenView)
	}
	if ownView == nil || ownView.DefID != "cyclops" {
		t.Errorf("expected the viewer's own card to be shown in full, got %+v", ownView)
	}

	// From the opposing player's own perspective the same card is fully
	// visible — only the opponent's face-down cards are redacted.
	snap2 := e.Snapshot(2)
	for i := range snap2.Cards {
		if snap2.Cards[i].ID == hiddenID && snap2.Cards[i].Hidden {
			t.Error("expected a player's own face-down card to be visible to that player")
		}
	}
}

func TestSnapshotExposesStatusTextForAbilityHolders(t *testing.T) {
	e := newMainEngine(t, 21)
	luckID := place(t, e, "lovec_udachi", 1, boardgeo.Pos(2, 2))

	snap := e.Snapshot(1)
	var view *CardView
	for i := range snap.Cards {
		if snap.Cards[i].ID == luckID {
			view = &snap.Cards[i]
		}
	}
	if view == nil {
		t.Fatal("expected to find the placed card in the snapshot")
	}
	if len(view.StatusTexts) != 1 || view.StatusTexts[0] != "удача" {
		t.Errorf("expected a single ready-made status string for luck, got %v", view.StatusTexts)
	}
}

func TestContentHashIsStableAndDeterministic(t *testing.T) {
	ensureContent(t)
	h1 := ContentHash()
	h2 := ContentHash()
	if h1 != h2 {
		t.Errorf("expected ContentHash to be deterministic across calls, got %q and %q", h1, h2)
	}
	if len(h1) != 16 {
		t.Errorf("expected a 16-hex-digit digest, got %q (len %d)", h1, len(h1))
	}
}
