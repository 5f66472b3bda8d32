package qm

import (
	"github.com/nihei9/boolalg/expr"
	"github.com/nihei9/boolalg/rewrite"
)

// CompleteSimplify implements spec.md §4.3's complete_simplify operation in
// full: it runs rewrite.Normalize's algebraic fixed point, then — per
// spec.md §4.3's last line, "after the fixed point is reached, the engine
// invokes the Quine-McCluskey minimizer on the root Sum" — encodes the
// result into prime implicants, minimizes them, decodes each back into a
// product, and re-normalizes the resulting sum (decoding and re-combining
// terms can itself introduce flattening/collapse opportunities rewrite.
// Normalize needs a second pass to clean up).
//
// This lives in qm, not rewrite, because it depends on qm.Encode/Minimize/
// Decode; rewrite cannot depend on qm without an import cycle, since
// qm.Decode already depends on rewrite.Normalize.
//
// The returned []bool reports, per minimized implicant, whether it was
// encoded from a contradictory product (spec.md §9) — see Encode.
func CompleteSimplify(n expr.Node) (expr.Node, []bool, error) {
	normalized := rewrite.Normalize(n)

	order := VarOrder(normalized)
	implicants, contradictory, err := Encode(normalized, order)
	if err != nil {
		return nil, nil, err
	}

	minimized := Minimize(implicants)
	minimizedContradictory := make([]bool, len(minimized))
	for i, im := range minimized {
		for j, src := range implicants {
			if contradictory[j] && im.Vec == src.Vec {
				minimizedContradictory[i] = true
				break
			}
		}
	}

	terms := make([]expr.Node, len(minimized))
	for i, im := range minimized {
		terms[i] = Decode(im, order)
	}
	result := rewrite.Normalize(&expr.Sum{Children: terms})
	return result, minimizedContradictory, nil
}
