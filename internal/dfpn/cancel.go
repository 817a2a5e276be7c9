package dfpn

import (
	"context"
	"errors"
)

// ErrTimeout is returned by SearchWithContext when ctx is cancelled or its
// deadline passes before a verdict is reached. It is the only error the
// kernel ever surfaces; a rule-engine precondition failure is a programmer
// error and is expected to panic out of Position, not return through here.
var ErrTimeout = errors.New("dfpn: search cancelled before a verdict was reached")

// SearchWithContext wraps Search with cooperative cancellation: ctx is
// polled once at the top of every multiple-iterative-deepening loop
// iteration in mid, amortizing the check across the expensive expand/score
// work of that iteration while still bounding latency, since every
// recursive call either terminates immediately or executes at least one
// loop iteration before recursing further.
//
// On cancellation, every in-progress mid call on the stack short-circuits
// and returns (0,0) without writing a cycle-placeholder past the point it
// had already written one; the table is left consistent (every entry a
// valid, possibly conservative, cache value) and the caller must not
// interpret the (0,0) values as a verdict.
func SearchWithContext[M any](ctx context.Context, pos Position[M], tbl Table) error {
	cancelled := false
	hash := pos.HashKey()
	pn, dn := midCancellable(ctx, pos, tbl, hash, InfMinusOne, InfMinusOne, Or, &cancelled)
	if !cancelled && pn != Inf && dn != Inf {
		midCancellable(ctx, pos, tbl, hash, Inf, Inf, Or, &cancelled)
	}
	if cancelled || ctx.Err() != nil {
		return ErrTimeout
	}
	return nil
}

// midCancellable is mid with a single added check at the top of the loop:
// once *cancelled latches true, every enclosing call observes it on its own
// next loop iteration and unwinds without further table writes.
func midCancellable[M any](ctx context.Context, pos Position[M], tbl Table, hash uint64, phi, delta U, node Node, cancelled *bool) (U, U) {
	pd := tbl.LookUpHash(hash)
	if phi <= pd.P || delta <= pd.D {
		return orient(pd, node)
	}

	children := pos.GenerateLegalMoves(node)
	if len(children) == 0 {
		tbl.PutInHash(hash, Pair{P: Inf, D: 0})
		return orient(Pair{P: Inf, D: 0}, node)
	}

	tbl.PutInHash(hash, Pair{P: delta, D: phi})

	for {
		if *cancelled || ctx.Err() != nil {
			*cancelled = true
			return 0, 0
		}

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
		midCancellable(ctx, pos, tbl, child.Hash, phiNC, deltaNC, node.Flip(), cancelled)
		pos.UndoMove(child.Move)

		if *cancelled {
			return 0, 0
		}
	}
}
