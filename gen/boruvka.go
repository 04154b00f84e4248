package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/foldgraph/core"
)

// boruvkaDefs contract components round by round: for every live label,
// find the cheapest edge crossing its component boundary (the XOR of
// the two endpoint-label tests), then merge the found edges, relabeling
// the losing component and accumulating the weight. @INF here is the
// small sentinel; weights must stay below it.
const boruvkaDefs = `@get = λ&i. λ{[]: 0; <>: λ&h. λt. λ{0: h; λk. @get(i - 1, t)}(i)}
@relabel = λ&old. λ&new. λ{[]: []; <>: λ&h. λt. λ{0: h; λk. new}(h == old) <> @relabel(old, new, t)}
@edge3 = λ&f. λ{[]: f(0, 0, @INF); <>: λ&u. λ{[]: f(u, 0, @INF); <>: λ&v. λ{[]: f(u, v, @INF); <>: λ&w. λrest. f(u, v, w)}}}
@xor_eq = λa. λb. λ{0: 0; λk. λ{0: 1; λk. 0}(k - 1)}(a + b)

@min_cross = λ&comp. λ&c. λ{[]: [0, 0, @INF]; <>: λ&edge. λrest.
  ! &best = @min_cross(comp, c, rest);
  @edge3(λ&u. λ&v. λ&w.
    ! &cu = @get(u, comp); ! &cv = @get(v, comp);
    ! &cross = @xor_eq(cu == c, cv == c);
    @edge3(λ&bu. λ&bv. λ&bw.
      @pick(cross, w, bw, [u, v, w], [bu, bv, bw]), best), edge)}

@pick = λ&cross. λ&w. λ&bw. λ&edge. λ&best. λ{0: best; λk. λ{0: best; λk. edge}(w < bw)}(cross)

@all_mins = λ&comp. λ&edges. λ&n. λ&c. λ{0: []; λk. @min_cross(comp, c, edges) <> @all_mins(comp, edges, n - 1, c + 1)}(n)

@merge = λ&comp. λ&total. λ{[]: [comp, total]; <>: λ&edge. λ&rest.
  @edge3(λ&u. λ&v. λ&w. ! &cu = @get(u, comp); ! &cv = @get(v, comp);
    λ{0: ! &nc = @relabel(cv, cu, comp); @merge(nc, total + w, rest);
    λk. @merge(comp, total, rest)}(cu == cv), edge)}

@round = λ&comp. λ&edges. λ&n. λ&total.
  ! &mins = @all_mins(comp, edges, n, 0);
  @merge(comp, total, mins)

@run = λ&iters. λ&comp. λ&edges. λ&n. λ&total. λ{0: total; λk.
  ! &state = @round(comp, edges, n, total);
  λ{<>: λ&nc. λst. λ{<>: λ&nt. λnil. @run(iters - 1, nc, edges, n, nt)}(st)}(state)}(iters)
`

// SuggestedRounds returns enough Borůvka rounds for any n-node graph:
// every round at least halves the component count, plus one slack
// round, so ceil(log2 n) + 1.
func SuggestedRounds(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	var r uint32
	for nn := n; nn > 1; nn = (nn + 1) / 2 {
		r++
	}

	return r + 1
}

// MSTBoruvka generates a Borůvka program whose single result is the
// total weight of the minimum spanning tree after the given number of
// contraction rounds. The round count is the caller's contract; too few
// rounds undercount a weakly connected graph (see SuggestedRounds).
// Edges are inlined as [u, v, w] triples in CSR order.
func MSTBoruvka(c *core.CSR, boruvkaRounds uint32) (string, error) {
	if err := checkCSR(c); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@INF = %d\n\n", NoPath)
	b.WriteString(boruvkaDefs)
	b.WriteString("\n@edges = [")
	first := true
	for u := uint32(0); u < c.Nodes; u++ {
		for i, deg := uint32(0), c.Degree(u); i < deg; i++ {
			if !first {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "[%d, %d, %d]", u, c.Target(u, i), c.Weight(u, i))
			first = false
		}
	}
	b.WriteString("]\n\n@comp = [")
	for i := uint32(0); i < c.Nodes; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d", i)
	}
	b.WriteString("]\n\n")
	fmt.Fprintf(&b, "@main = @run(%d, @comp, @edges, %d, 0)\n", boruvkaRounds, c.Nodes)

	return b.String(), nil
}
