package cellgrid

import "github.com/azulmaze/mazerunner/position"

// ScanOrder fixes the iteration order over the four cardinal
// directions. Different passes in the original source use different
// orders (see SPEC_FULL.md's supplemented-features section); rather
// than hardcode one, every DirSet consumer takes a ScanOrder.
type ScanOrder [4]position.Direction

var (
	// ScanOrderPainter is §4.4's mandated reverse-BFS scan order.
	ScanOrderPainter = ScanOrder{position.South, position.West, position.East, position.North}
	// ScanOrderWalker is the original ListDirection::front()/pop_front()
	// order, used by the forward corridor walker and the pruners.
	ScanOrderWalker = ScanOrder{position.South, position.East, position.West, position.North}
	// ScanOrderReverseAlt is the original ListDirection::frontBT()
	// order: present in the source as an alternate reverse-pass scan
	// order, not wired into the live pipeline by default, but
	// selectable via m1.WithScanOrder.
	ScanOrderReverseAlt = ScanOrder{position.North, position.West, position.East, position.South}
)

// DirSet is the small set of up to four directions available from
// some cell, encoded as a bitmask (one bit per Direction value).
type DirSet uint8

func bit(d position.Direction) DirSet { return 1 << uint(d) }

// Contains reports whether d is a member of the set.
func (s DirSet) Contains(d position.Direction) bool { return s&bit(d) != 0 }

// Size returns the number of directions currently in the set.
func (s DirSet) Size() int {
	n := 0
	for _, d := range [...]position.Direction{position.North, position.East, position.South, position.West} {
		if s.Contains(d) {
			n++
		}
	}
	return n
}

// Remove returns a copy of s with d cleared.
func (s DirSet) Remove(d position.Direction) DirSet { return s &^ bit(d) }

// First returns the first direction present in s under the given
// scan order, or Uninitialized if s is empty.
func (s DirSet) First(order ScanOrder) position.Direction {
	for _, d := range order {
		if s.Contains(d) {
			return d
		}
	}
	return position.Uninitialized
}

// PopFront returns the first direction under order and a copy of s
// with that direction removed. If s is empty it returns
// (Uninitialized, s).
func (s DirSet) PopFront(order ScanOrder) (position.Direction, DirSet) {
	d := s.First(order)
	if d == position.Uninitialized {
		return d, s
	}
	return d, s.Remove(d)
}

// GetMoves returns the subset of {N,E,S,W} for which CanMove(p, d) is
// true.
func (g *Grid) GetMoves(p position.Position) DirSet {
	var s DirSet
	for _, d := range [...]position.Direction{position.North, position.East, position.South, position.West} {
		if g.CanMove(p, d) {
			s |= bit(d)
		}
	}
	return s
}

// Branches wraps the same set GetMoves returns with an internal rotor
// index used by the bidirectional DFS workers (§4.6, §4.8) for fair
// round-robin branch selection: each worker seeds its rotor from a
// distinct value so lock-step contention between workers starting at
// the same junction is reduced.
//
// Branches unifies the original source's separately-duplicated
// Choice/ListDirection pair into one type, per the Design Notes.
type Branches struct {
	set   DirSet
	rotor int
}

// NewBranches builds a Branches over p's available moves, seeding the
// rotor from seed&3 as specified in §4.1.
func (g *Grid) NewBranches(p position.Position, seed int) Branches {
	return Branches{set: g.GetMoves(p), rotor: seed & 3}
}

// rotorOrder is the fixed direction table the rotor indexes into.
var rotorOrder = [4]position.Direction{position.North, position.East, position.South, position.West}

// Size reports how many directions remain untried.
func (b Branches) Size() int { return b.set.Size() }

// Remove discards d from the remaining set (used when a branch is
// proven dead or already taken).
func (b Branches) Remove(d position.Direction) Branches {
	b.set = b.set.Remove(d)
	return b
}

// Next implements §4.8's fair selector. It rotates the internal index
// through the four slots; for each candidate d it:
//  1. drops d from the set if CheckBranchDead(at, d) is true,
//  2. otherwise records it as a fallback,
//  3. skips it (without consuming the rotor) if CheckBranchOccupied(at, d) is true,
//  4. and otherwise returns d after marking the neighbor OCCUPIED.
//
// If every alive direction is occupied, it returns the fallback
// WITHOUT marking it occupied (the worker is blocked behind another
// at that edge and will revisit later). If no alive direction exists,
// it returns Uninitialized.
func (b *Branches) Next(g *Grid, at position.Position) position.Direction {
	fallback := position.Uninitialized
	for i := 0; i < 4; i++ {
		d := rotorOrder[(b.rotor+i)%4]
		if !b.set.Contains(d) {
			continue
		}
		if g.CheckBranchDead(at, d) {
			b.set = b.set.Remove(d)
			continue
		}
		fallback = d
		if g.CheckBranchOccupied(at, d) {
			continue
		}
		b.rotor = (b.rotor + i + 1) % 4
		g.SetBranchOccupied(at.Move(d))
		return d
	}
	return fallback
}
