package graph

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlath/bfs"
)

// Related returns the drugs reachable from drugID through shared pathways
// within depth drug-to-drug hops, nearest first. pathways must be the
// view built by Pathways.
func Related(ctx context.Context, pathways *View, drugID string, depth int) ([]Node, error) {
	if depth < 1 {
		depth = 1
	}
	start := NodeID(KindDrug, drugID)
	if !pathways.g.HasVertex(start) {
		return nil, fmt.Errorf("drug %s: %w", drugID, ErrNotFound)
	}

	// Each drug-to-drug hop crosses a pathway node.
	res, err := bfs.BFS(pathways.g, start,
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(2*depth),
	)
	if err != nil {
		return nil, fmt.Errorf("traverse pathways from %s: %w", drugID, err)
	}

	var related []Node
	for _, id := range res.Order {
		if id == start || !strings.HasPrefix(id, string(KindDrug)+":") {
			continue
		}
		related = append(related, pathways.nodes[id])
	}
	return related, nil
}
