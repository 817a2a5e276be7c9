package dfpn

// Search runs root iterative deepening and leaves its proof in tbl: after it
// returns, every position the search touched has a final or cycle-placeholder
// entry in tbl, and the root's entry is a terminal reading if a verdict was
// reached within InfMinusOne/InfMinusOne and, failing that, within Inf/Inf.
//
// This is "Application of DF-PN to tsumeshogi" (Nagai, 2002)'s two-phase
// root: a loose first pass followed by a tight pass, which catches mates
// hidden behind repeated positions (the GHI hazard) without the expense of
// starting every position at the tightest thresholds.
func Search[M any](pos Position[M], tbl Table) {
	hash := pos.HashKey()
	pn, dn := mid(pos, tbl, hash, InfMinusOne, InfMinusOne, Or)
	if pn != Inf && dn != Inf {
		mid(pos, tbl, hash, Inf, Inf, Or)
	}
}

// mid expands the node at hash under thresholds (phi, delta), in node's
// polarity, and returns (phi, delta) read back in that same polarity.
//
// Steps follow Nagai 2002 directly: table probe and early return, expansion
// (empty children ⇒ immediate terminal), a cycle-avoidance placeholder write,
// then the multiple-iterative-deepening loop that recurses into the
// best-delta child under recomputed thresholds until the node's own
// thresholds are exceeded.
func mid[M any](pos Position[M], tbl Table, hash uint64, phi, delta U, node Node) (U, U) {
	// 1. Table probe.
	pd := tbl.LookUpHash(hash)
	if phi <= pd.P || delta <= pd.D {
		return orient(pd, node)
	}

	// 2. Expand.
	children := pos.GenerateLegalMoves(node)
	if len(children) == 0 {
		tbl.PutInHash(hash, Pair{P: Inf, D: 0})
		return orient(Pair{P: Inf, D: 0}, node)
	}

	// 3. Cycle tag: the deliberately swapped placeholder guarantees that any
	// re-entry via a transposition takes the step-1 early-return branch
	// instead of diving into the cycle again.
	tbl.PutInHash(hash, Pair{P: delta, D: phi})

	// 4. Multiple iterative deepening.
	for {
		sp := sumPhi(tbl, children)
		var md U
		if sp >= InfMinusOne {
			md = 0
		} else {
			md = minDelta(tbl, children)
		}
		if phi <= md || delta <= sp {
			tbl.PutInHash(hash, Pair{P: md, D: sp})
			return orient(Pair{P: md, D: sp}, node)
		}

		idx, phiC, deltaC, delta2 := selectChild(tbl, children)

		var phiNC U
		switch {
		case phiC == InfMinusOne:
			phiNC = Inf
		case delta >= InfMinusOne:
			phiNC = InfMinusOne
		default:
			phiNC = delta + phiC - sp
		}

		var deltaNC U
		if deltaC == InfMinusOne {
			deltaNC = Inf
		} else {
			deltaNC = minU(phi, satAddOne(delta2))
		}

		child := children[idx]
		pos.DoMove(child.Move)
		mid(pos, tbl, child.Hash, phiNC, deltaNC, node.Flip())
		pos.UndoMove(child.Move)
	}
}

// orient reinterprets a table entry, stored in attacker-polarity, as the
// (phi, delta) pair local to node's polarity.
func orient(pd Pair, node Node) (U, U) {
	if node == Or {
		return pd.P, pd.D
	}
	return pd.D, pd.P
}

// selectChild scans children tracking the minimum delta (the chosen child),
// the second-minimum delta, and the chosen child's proof number. A child
// already disproved (p == Inf) from the opponent's perspective is itself a
// proof for this side and is selected immediately.
func selectChild[M any](tbl Table, children []Child[M]) (idx int, phiC, deltaC, delta2 U) {
	deltaC, delta2 = Inf, Inf
	best := -1
	for i, c := range children {
		pd := tbl.LookUpHash(c.Hash)
		if pd.D < deltaC {
			best = i
			delta2 = deltaC
			phiC = pd.P
			deltaC = pd.D
		} else if pd.D < delta2 {
			delta2 = pd.D
		}
		if pd.P == Inf {
			return best, phiC, deltaC, delta2
		}
	}
	return best, phiC, deltaC, delta2
}

func minDelta[M any](tbl Table, children []Child[M]) U {
	m := Inf
	for _, c := range children {
		pd := tbl.LookUpHash(c.Hash)
		m = minU(m, pd.D)
	}
	return m
}

func sumPhi[M any](tbl Table, children []Child[M]) U {
	sum := U(0)
	for _, c := range children {
		pd := tbl.LookUpHash(c.Hash)
		sum = satAdd(sum, pd.P)
	}
	return sum
}
