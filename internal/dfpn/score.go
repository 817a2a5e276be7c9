package dfpn

import "sort"

// MoveConstraint is the structure a move type must satisfy before the
// solution extractor and scorer can run over it: comparable, so complete
// lines can be deduplicated, and rich enough to tell a drop from a normal
// move, compare destination squares, and name the piece type dropped.
type MoveConstraint[S comparable, PT comparable] interface {
	comparable
	IsDrop() bool
	To() S
	// DroppedPieceType is only meaningful when IsDrop() is true.
	DroppedPieceType() PT
}

// trimFutileInterposition repeatedly drops a trailing (Drop to=X, Normal
// to=X) pair: a defender's interposition at X immediately recaptured by the
// attacker's very next move is never a stronger defense than not
// interposing at all, so it adds nothing to the line as a puzzle solution.
// Each trimmed pair also decrements totalHands by one, mirroring the
// original solver's bookkeeping: the position is never rolled back to
// recompute hand counts at the (hypothetical) trimmed leaf, the running
// total is just adjusted by the one piece that recapture would have put in
// the attacker's hand.
func trimFutileInterposition[M MoveConstraint[S, PT], S comparable, PT comparable](moves []M, totalHands int) ([]M, int) {
	n := len(moves)
	for n > 2 {
		prev, last := moves[n-2], moves[n-1]
		if !prev.IsDrop() || last.IsDrop() || prev.To() != last.To() {
			break
		}
		n -= 2
		totalHands--
	}
	return moves[:n], totalHands
}

// detectWastedDrop implements the 無駄合 (wasted-interposition) heuristic
// over the trimmed line: for each attacker Normal move (even index) landing
// on a square a prior defender Drop (odd index) deposited a piece on, the
// interposition was wasted if the attacker still holds a spare of that piece
// type at the line's end (queried against pos, which sits at the line's
// untrimmed final state by construction — the trimmed suffix is excluded
// from consideration by iterating only over the trimmed slice, not by
// rewinding pos).
func detectWastedDrop[M MoveConstraint[S, PT], S comparable, PT comparable](pos ScoringPosition[M, PT], trimmed []M) bool {
	drops := make(map[S]PT)
	for i, m := range trimmed {
		if i%2 == 1 {
			if m.IsDrop() {
				drops[m.To()] = m.DroppedPieceType()
			}
			continue
		}
		if m.IsDrop() {
			continue
		}
		if pt, ok := drops[m.To()]; ok {
			delete(drops, m.To())
			if pos.OpponentHandCount(pt) > 0 {
				return true
			}
		}
	}
	return false
}

// scoreLine computes the tiebreak score for one trimmed mating line: n*100
// minus the attacker's remaining hand-piece count at the line's end, or 0 if
// a wasted-drop pattern was detected.
func scoreLine(n, totalHands int, zero bool) int {
	if zero {
		return 0
	}
	return n*100 - totalHands
}

// bestLine sorts the extractor's scored candidates ascending, removes
// consecutive duplicates (two candidates with the identical move sequence,
// which only ever arise adjacent to each other since equal lines are
// produced by the same DFS branch), and returns the last — i.e. the
// highest-scoring line. When every candidate scores 0 (all are wasted-drop
// lines), it returns the first one in extraction order instead.
func bestLine[M comparable](candidates []Candidate[M]) []M {
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score < candidates[j].Score
	})

	deduped := candidates[:0:0]
	for i, c := range candidates {
		if i > 0 && movesEqual(candidates[i-1].Moves, c.Moves) {
			continue
		}
		deduped = append(deduped, c)
	}

	if deduped[len(deduped)-1].Score == 0 {
		return deduped[0].Moves
	}
	return deduped[len(deduped)-1].Moves
}

func movesEqual[M comparable](a, b []M) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
