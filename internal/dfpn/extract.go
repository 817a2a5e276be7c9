package dfpn

// mateSignature is the table reading (in attacker-polarity storage) that
// marks a child as forcing the extractor down a principal-variation branch:
// at an Or node's child, (Inf, 0) means "proved mate for the side to move at
// the child"; at an And node's child, (0, Inf) means "proved unmate for the
// defender", i.e. forced.
func mateSignature(node Node) Pair {
	if node == Or {
		return Pair{P: Inf, D: 0}
	}
	return Pair{P: 0, D: Inf}
}

// ScoringPosition extends Position with the one extra query the scorer
// needs: how many pieces of a given type the side NOT to move currently
// holds in hand. internal/solver's adapter implements this directly against
// internal/shogi's hand counters.
type ScoringPosition[M any, PT comparable] interface {
	Position[M]
	OpponentHandCount(pt PT) int
}

// Candidate is one complete mating line produced by the extractor, together
// with its tiebreak score (see scoreLine).
type Candidate[M any] struct {
	Moves []M
	Score int
}

// ExtractPrincipalVariation performs the post-search solution-extraction
// DFS: starting at pos's current state (assumed to be the root the preceding
// Search/SearchWithContext call was run from), it walks every branch whose
// table entry matches the mate signature for its polarity, recording a
// candidate at each And node with no such children, then scores and returns
// the best one. An empty result means no mate was found in tbl — a legal
// outcome, not an error.
func ExtractPrincipalVariation[M MoveConstraint[S, PT], S comparable, PT comparable](
	pos ScoringPosition[M, PT],
	tbl Table,
	allHandPieceTypes []PT,
) []M {
	var candidates []Candidate[M]
	visited := make(map[uint64]bool)
	var line []M
	extract(pos, tbl, &line, visited, allHandPieceTypes, &candidates)

	return bestLine(candidates)
}

func extract[M MoveConstraint[S, PT], S comparable, PT comparable](
	pos ScoringPosition[M, PT],
	tbl Table,
	line *[]M,
	visited map[uint64]bool,
	allHandPieceTypes []PT,
	out *[]Candidate[M],
) {
	node := Or
	if len(*line)%2 == 1 {
		node = And
	}
	sig := mateSignature(node)

	children := pos.GenerateLegalMoves(node)
	type branch struct {
		move M
		hash uint64
	}
	var mateChildren []branch
	for _, c := range children {
		if visited[c.Hash] {
			continue
		}
		if tbl.LookUpHash(c.Hash) == sig {
			mateChildren = append(mateChildren, branch{c.Move, c.Hash})
		}
	}

	if len(mateChildren) == 0 {
		if node == And {
			*out = append(*out, recordCandidate(pos, *line, allHandPieceTypes))
		}
		return
	}

	for _, b := range mateChildren {
		*line = append(*line, b.move)
		visited[b.hash] = true
		pos.DoMove(b.move)
		extract(pos, tbl, line, visited, allHandPieceTypes, out)
		pos.UndoMove(b.move)
		delete(visited, b.hash)
		*line = (*line)[:len(*line)-1]
	}
}

// recordCandidate trims a trailing futile interposition from line and
// scores the result without ever rewinding pos for this: pos sits at the
// state reached after playing the full, untrimmed line, and every hand-count
// query below — the initial total and the wasted-drop check — reads that
// same final state.
func recordCandidate[M MoveConstraint[S, PT], S comparable, PT comparable](
	pos ScoringPosition[M, PT],
	line []M,
	allHandPieceTypes []PT,
) Candidate[M] {
	totalHands := 0
	for _, pt := range allHandPieceTypes {
		totalHands += pos.OpponentHandCount(pt)
	}

	trimmed, totalHands := trimFutileInterposition(line, totalHands)
	zero := detectWastedDrop(pos, trimmed)

	return Candidate[M]{
		Moves: append([]M(nil), trimmed...),
		Score: scoreLine(len(trimmed), totalHands, zero),
	}
}
