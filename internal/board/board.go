package board

import "github.com/berserk-vibe/matchd/internal/boardgeo"

// Board is the fixed 5x6 ground grid plus two 5-slot flying zones and two
// graveyards. Cells are indexed 0-29 for ground, 30-34 for P1's flying
// zone, 35-39 for P2's.
type Board struct {
	Cells      [boardgeo.TotalCells]*CardInstance
	Graveyard1 []*CardInstance
	Graveyard2 []*CardInstance
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// At returns the card at a cell, or nil if the cell is empty or the
// index is out of range.
func (b *Board) At(pos int) *CardInstance {
	if pos < 0 || pos >= boardgeo.TotalCells {
		return nil
	}
	return b.Cells[pos]
}

// Place puts a card at pos, clearing any previous position it held. It is
// the caller's responsibility to ensure pos is empty and legal for the
// card (ground vs flying zone, owner's side for initial placement).
func (b *Board) Place(card *CardInstance, pos int) {
	if card.Position >= 0 && card.Position < boardgeo.TotalCells && b.Cells[card.Position] == card {
		b.Cells[card.Position] = nil
	}
	b.Cells[pos] = card
	card.Position = pos
}

// Remove clears a cell without touching the card's own Position field
// (callers that are moving/destroying a card update Position separately).
func (b *Board) Remove(pos int) {
	if pos >= 0 && pos < boardgeo.TotalCells {
		b.Cells[pos] = nil
	}
}

// Move relocates a card from its current cell to a new one.
func (b *Board) Move(card *CardInstance, to int) {
	from := card.Position
	b.Remove(from)
	b.Place(card, to)
}

// SendToGraveyard removes a card from the board and appends it to its
// owner's graveyard. The card's Position is reset to -1.
func (b *Board) SendToGraveyard(card *CardInstance) {
	b.Remove(card.Position)
	card.Position = -1
	if card.Player == 1 {
		b.Graveyard1 = append(b.Graveyard1, card)
	} else {
		b.Graveyard2 = append(b.Graveyard2, card)
	}
}

// Graveyard returns the graveyard slice for a player.
func (b *Board) Graveyard(player int) []*CardInstance {
	if player == 1 {
		return b.Graveyard1
	}
	return b.Graveyard2
}

// AllCards returns every live card on the board, optionally filtered by
// player (0 = both players).
func (b *Board) AllCards(player int) []*CardInstance {
	var out []*CardInstance
	for _, c := range b.Cells {
		if c == nil {
			continue
		}
		if player != 0 && c.Player != player {
			continue
		}
		out = append(out, c)
	}
	return out
}

// GroundCards returns every live card on the ground grid for a player (0 =
// both players).
func (b *Board) GroundCards(player int) []*CardInstance {
	var out []*CardInstance
	for pos := 0; pos < boardgeo.GroundCells; pos++ {
		c := b.Cells[pos]
		if c == nil {
			continue
		}
		if player != 0 && c.Player != player {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FlyingCards returns every live flyer for a player (0 = both players).
func (b *Board) FlyingCards(player int) []*CardInstance {
	var out []*CardInstance
	scan := func(start, end int) {
		for pos := start; pos <= end; pos++ {
			c := b.Cells[pos]
			if c == nil {
				continue
			}
			if player != 0 && c.Player != player {
				continue
			}
			out = append(out, c)
		}
	}
	if player == 0 || player == 1 {
		scan(boardgeo.FlyingZoneP1Start, boardgeo.FlyingZoneP1End)
	}
	if player == 0 || player == 2 {
		scan(boardgeo.FlyingZoneP2Start, boardgeo.FlyingZoneP2End)
	}
	return out
}

// FreeFlyingSlot returns the first empty flying-zone index for player, or
// -1 if the zone is full.
func (b *Board) FreeFlyingSlot(player int) int {
	start, end := boardgeo.FlyingZoneP1Start, boardgeo.FlyingZoneP1End
	if player == 2 {
		start, end = boardgeo.FlyingZoneP2Start, boardgeo.FlyingZoneP2End
	}
	for pos := start; pos <= end; pos++ {
		if b.Cells[pos] == nil {
			return pos
		}
	}
	return -1
}

// CardByID scans the whole board for a card by its match-unique ID. The
// engine's id-based back-references (pending valhalla entries,
// interactions, dice contexts) resolve through this rather than storing
// pointers directly.
func (b *Board) CardByID(id int) *CardInstance {
	for _, c := range b.Cells {
		if c != nil && c.ID == id {
			return c
		}
	}
	return nil
}
