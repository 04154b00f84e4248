package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/foldgraph/core"
)

// bfsDefs search from both endpoints with alternating frontiers: each
// step intersects the frontiers, then expands one side through @adj and
// swaps roles. Frontiers tolerate duplicates; no visited set is kept,
// so the depth bound is what terminates a fruitless search.
const bfsDefs = `@member = λ&x. λ{[]: 0; <>: λ&h. λt. λ{0: @member(x, t); λn. 1}(h == x)}
@any_in = λ&ys. λ{[]: 0; <>: λ&h. λt. λ{0: @any_in(ys, t); λn. 1}(@member(h, ys))}
@append = λ{[]: λys. ys; <>: λh. λt. λys. h <> @append(t, ys)}
@concat_map = λ&f. λ{[]: []; <>: λh. λt. @append(f(h), @concat_map(f, t))}
@expand = λfrontier. @concat_map(@adj, frontier)

@bfs = λ&fwd. λ&bwd. λ&dist. λ&max. λ{
  0: λ{0: ! &new_fwd = @expand(fwd); @bfs(bwd, new_fwd, dist + 1, max);
  λn. dist}(@any_in(bwd, fwd));
  λn. 999}(dist > max)
`

// Reachable generates a bounded reachability probe whose single result
// is the meeting distance between source and target, or the NoPath
// sentinel once the depth bound is exceeded. Callers handle source ==
// target themselves; the search never tests it.
func Reachable(c *core.CSR, source, target, maxDepth uint32) (string, error) {
	if err := checkCSR(c); err != nil {
		return "", err
	}
	if err := checkNode(c, source, "source"); err != nil {
		return "", err
	}
	if err := checkNode(c, target, "target"); err != nil {
		return "", err
	}

	var b strings.Builder
	writeAdjacency(&b, c, false)
	b.WriteString("\n")
	b.WriteString(bfsDefs)
	fmt.Fprintf(&b, "\n@main = @bfs([%d], [%d], 0, %d)\n", source, target, maxDepth)

	return b.String(), nil
}
