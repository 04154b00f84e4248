package gen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/foldgraph/core"
)

// closureDefs probe one ordered pair: equal endpoints reach trivially,
// otherwise any neighbor must reach the destination within one less
// step before the depth runs out.
const closureDefs = `@any_reaches = λ&dst. λ&depth. λ{
  []: 0;
  <>: λ&next. λrest.
    λ{0: @any_reaches(dst, depth, rest); λk. 1}(@can_reach(next, dst, depth))
}

@can_reach = λ&src. λ&dst. λ&depth.
  λ{0: λ{0: 0; λk. 1}(src == dst); λd.
    λ{0: @any_reaches(dst, depth - 1, @adj(src)); λk. 1}(src == dst)
  }(depth)
`

// Closure generates the depth-bounded transitive closure: the result is
// the n*n reachability matrix flattened row-major into one list of 0/1
// values, probing @can_reach(i, j, depthLimit) per ordered pair.
func Closure(c *core.CSR, depthLimit uint32) (string, error) {
	if err := checkCSR(c); err != nil {
		return "", err
	}

	var b strings.Builder
	writeAdjacency(&b, c, false)
	b.WriteString("\n")
	b.WriteString(closureDefs)
	b.WriteString("\n@main = [")
	for i := uint32(0); i < c.Nodes; i++ {
		for j := uint32(0); j < c.Nodes; j++ {
			if i > 0 || j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "@can_reach(%d, %d, %d)", i, j, depthLimit)
		}
	}
	b.WriteString("]\n")

	return b.String(), nil
}
