package solver

import (
	"context"

	"github.com/komadai/tsumedfpn/internal/dfpn"
	"github.com/komadai/tsumedfpn/internal/shogi"
)

// Solve runs the DFPN kernel to a verdict (or ctx cancellation) against the
// given transposition table, then extracts and scores the preferred mating
// line. An empty, nil-error result means the kernel proved no mate exists
// within tbl's representable thresholds; ctx cancellation surfaces as
// dfpn.ErrTimeout.
func Solve(ctx context.Context, pos *Position, tbl dfpn.Table) ([]shogi.Move, error) {
	if err := dfpn.SearchWithContext[shogi.Move](ctx, pos, tbl); err != nil {
		return nil, err
	}
	return dfpn.ExtractPrincipalVariation[shogi.Move, shogi.Square, shogi.PieceType](pos, tbl, shogi.HandPieceTypes[:]), nil
}

// RequireExactTable addresses VecTable/BadgerTable eviction: a lossy table
// can forget part of a proof the kernel already established, making
// extraction return a truncated (or empty) line even though mid proved a
// verdict. Rather than guess at a structural fix, this re-runs the whole
// search against a fresh, unbounded HashMapTable whenever extraction under
// the lossy table comes back empty, and returns that result instead.
//
// Only an empty line triggers the re-run: a non-empty line that eviction
// has shortened is returned as it is. The cost is a second full search
// whenever the lossy table's extraction is empty, which includes every
// position with no mate.
func RequireExactTable(ctx context.Context, pos *Position, lossy dfpn.Table) ([]shogi.Move, error) {
	line, err := Solve(ctx, pos, lossy)
	if err != nil {
		return nil, err
	}
	if len(line) > 0 {
		return line, nil
	}
	exact := dfpn.NewHashMapTable(0)
	return Solve(ctx, pos, exact)
}
