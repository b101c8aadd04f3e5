package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	nodeIDPrefix = "N"
	edgeIDPrefix = "E"
	edgeIDSuffix = 6
)

// NextNodeID returns the first free ID of the form "N1", "N2", ...
// Complexity: O(V) per candidate ID.
func (g *Graph) NextNodeID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for k := 1; ; k++ {
		id := fmt.Sprintf("%s%d", nodeIDPrefix, k)
		if _, taken := g.nodeIndex[id]; !taken {
			return id
		}
	}
}

// NewEdgeID returns a fresh edge ID "E_<source>_<target>_<suffix>", where the
// suffix is drawn from a random UUID so repeated links between the same
// endpoints never collide.
func NewEdgeID(source, target string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:edgeIDSuffix]

	return fmt.Sprintf("%s_%s_%s_%s", edgeIDPrefix, source, target, suffix)
}
