package entity

import "sort"

// RingSet holds the centres of a player's live rings.
type RingSet map[Coord]struct{}

func NewRingSet(centers ...Coord) RingSet {
	rs := make(RingSet, len(centers))
	for _, c := range centers {
		rs[c] = struct{}{}
	}
	return rs
}

func (rs RingSet) Add(c Coord) {
	rs[c] = struct{}{}
}

func (rs RingSet) Remove(c Coord) {
	delete(rs, c)
}

func (rs RingSet) Has(c Coord) bool {
	_, ok := rs[c]
	return ok
}

func (rs RingSet) Len() int {
	return len(rs)
}

// Move relocates a tracked centre. It is a no-op when from is not tracked.
func (rs RingSet) Move(from, to Coord) {
	if !rs.Has(from) {
		return
	}
	delete(rs, from)
	rs[to] = struct{}{}
}

// Sole returns the only ring centre when exactly one ring is left.
func (rs RingSet) Sole() (Coord, bool) {
	if len(rs) != 1 {
		return Coord{}, false
	}
	for c := range rs {
		return c, true
	}
	return Coord{}, false
}

// Centers returns the ring centres ordered top to bottom, left to right.
func (rs RingSet) Centers() []Coord {
	out := make([]Coord, 0, len(rs))
	for c := range rs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func (rs RingSet) Labels() []string {
	centers := rs.Centers()
	out := make([]string, len(centers))
	for i, c := range centers {
		out[i] = c.Label()
	}
	return out
}

func (rs RingSet) Clone() RingSet {
	out := make(RingSet, len(rs))
	for c := range rs {
		out[c] = struct{}{}
	}
	return out
}

// Player is one side of the game and the rings it currently owns.
type Player struct {
	Color Color
	Rings RingSet
}

func NewPlayer(color Color, rings ...Coord) Player {
	return Player{Color: color, Rings: NewRingSet(rings...)}
}

func (that *Player) HasNoRings() bool {
	return that.Rings.Len() == 0
}

func (that *Player) Clone() Player {
	return Player{Color: that.Color, Rings: that.Rings.Clone()}
}
