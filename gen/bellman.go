package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/foldgraph/core"
)

// relaxHybrid drives one Bellman-Ford pass per round over the graph
// primitives, carrying #S{dist, changed} and bailing out of the round
// loop as soon as a full round relaxes nothing. @bf_loop re-enters
// @relax_round_et by name on purpose: the round body must not be
// captured under a shared binder.
const relaxHybrid = `@relax_edges = λ&u. λ&i. λ&deg. λ&du. λ{#S: λ&dist. λ&changed. λ{0: #S{dist, changed}; λn. ! &v = %graph_target(u, i); ! new_d = du + %graph_weight(u, i); λ{#P: λnew_dist. λc. @relax_edges(u, i + 1, deg, du, #S{new_dist, changed + c})}(@q4_min_update_f(v, new_d, @DEPTH, dist))}(i < deg)}
@relax_node_et = λ&u. λ{#S: λdist. λ&changed. λ{#P: λ&du. λdist2. @relax_node_go(du < @INF, u, du, dist2, changed)}(@q4_get_lin(u, @DEPTH, dist))}
@relax_node_go = λ{0: λu. λdu. λdist. λchanged. #S{dist, changed}; λn. λ&u. λ&du. λdist. λchanged. @relax_edges(u, 0, %graph_deg(u), du, #S{dist, changed})}
@node_loop = λ&i. λ&state. λ{0: state; λn. @node_loop(i + 1, @relax_node_et(i, state))}(i < @V)
@relax_round_et = λ{#S: λdist. λold_changed. @node_loop(0, #S{dist, 0})}
@bf_loop = λ{0: λstate. state; λn. λstate. @bf_check(n, @relax_round_et(state))}
@bf_check = λ&n. λ{#S: λdist. λchanged. @bf_check_go(changed, n, dist)}
@bf_check_go = λ{0: λn. λdist. #S{dist, 0}; λm. λn. λdist. @bf_loop(n - 1, %compact(#S{dist, 1}))}
`

// extractHybrid walks the final trie, reading every node's distance
// through the linear get so each lookup hands the trie forward.
const extractHybrid = `@extract_go = λ&i. λ{#P: λ&val. λdist. λ{0: [val]; λn. val <> @extract_go(i + 1, @q4_get_lin(i + 1, @DEPTH, dist))}(i + 1 < @V)}
@main = λ{#S: λdist. λc. λ{0: []; λn. @extract_go(0, @q4_get_lin(0, @DEPTH, dist))}(@V)}(@bf)
`

// relaxInline folds a relaxation pass over the inlined @edges list and
// repeats it a fixed number of rounds.
const relaxInline = `@relax_edge = λ&dist. λ{#E3: λ&u. λ&v. λw.
  ! &du = @q4_get(u, @DEPTH, dist);
  ! &new_d = du + w;
  ! &dv = @q4_get(v, @DEPTH, dist);
  λ{0: dist; λn. @q4_set(v, new_d, @DEPTH, dist)}(new_d < dv)}

@foldl = λ&f. λ&acc. λ{[]: acc; <>: λh. λt. @foldl(f, f(acc, h), t)}
@relax_round = λdist. @foldl(@relax_edge, dist, @edges)
@repeat = λ&f. λ&x. λ{0: x; λn. @repeat(f, f(x), n - 1)}
`

// ShortestPath generates a single-source Bellman-Ford program whose
// result is the full distance list [dist(0), …, dist(n-1)], with Inf
// for unreachable nodes. The default template requires the graph
// primitives bound by the bridge; WithInlineEdges selects the
// self-contained variant.
func ShortestPath(c *core.CSR, source uint32, opts ...Option) (string, error) {
	if err := checkCSR(c); err != nil {
		return "", err
	}
	if err := checkNode(c, source, "source"); err != nil {
		return "", err
	}
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}

	if o.inline {
		return shortestPathInline(c, source, o.chunkThreshold), nil
	}

	return shortestPathHybrid(c, source), nil
}

func rounds(n uint32) uint32 {
	if n > 1 {
		return n - 1
	}

	return 1
}

func shortestPathHybrid(c *core.CSR, source uint32) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@INF = %d\n@DEPTH = %d\n@V = %d\n", Inf, TrieDepth(c.Nodes), c.Nodes)
	b.WriteString(trieHybridOps)
	b.WriteString(relaxHybrid)
	fmt.Fprintf(&b, "@init_dist = @q4_set(%d, 0, @DEPTH, #QE{})\n", source)
	fmt.Fprintf(&b, "@bf = @bf_loop(%d, #S{@init_dist, 1})\n", rounds(c.Nodes))
	b.WriteString(extractHybrid)

	return b.String()
}

func shortestPathInline(c *core.CSR, source uint32, threshold int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@INF = %d\n@DEPTH = %d\n\n", Inf, TrieDepth(c.Nodes))
	b.WriteString(trieOps)
	b.WriteString("\n")
	b.WriteString(relaxInline)
	b.WriteString("\n")
	writeEdgeList(&b, c, threshold)
	b.WriteString("\n")
	fmt.Fprintf(&b, "@init_dist = @q4_set(%d, 0, @DEPTH, #QE{})\n", source)
	fmt.Fprintf(&b, "@bf = @repeat(@relax_round, @init_dist, %d)\n\n", rounds(c.Nodes))

	b.WriteString("@main = [")
	for i := uint32(0); i < c.Nodes; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "@q4_get(%d, @DEPTH, @bf)", i)
	}
	b.WriteString("]\n")

	return b.String()
}
