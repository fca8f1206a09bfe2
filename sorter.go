package nodes

import (
	"slices"

	"github.com/gogpu/nodes/draw"
)

// Channel layout of a frame: channel 0 holds the canvas background, grid
// and links; the node submitted k-th owns channels 1+2k (background) and
// 2+2k (contents); a final channel holds the interaction overlay.
func nodeBackgroundChannel(k int) int { return 1 + 2*k }
func nodeForegroundChannel(k int) int { return 2 + 2*k }

// sortChannelsByDepth reorders the node channel pairs of layers from
// submission order into depth order. Both slices hold the same node
// indices; submission is permuted in place alongside the channels.
func sortChannelsByDepth(layers draw.Layers, depth, submission []int) {
	if len(submission) < 2 || len(depth) != len(submission) {
		return
	}

	// Nodes already in place at the top need no work.
	start := len(depth) - 1
	for depth[start] == submission[start] {
		if start == 0 {
			return
		}
		start--
	}

	// Bubble each node up to its depth slot. Everything above slot d is
	// final once slot d is filled.
	for d := start; d > 0; d-- {
		s := slices.Index(submission, depth[d])
		for j := s; j < d; j++ {
			swapNodeChannels(layers, j, j+1)
			submission[j], submission[j+1] = submission[j+1], submission[j]
		}
	}
}

func swapNodeChannels(layers draw.Layers, a, b int) {
	layers.Swap(nodeBackgroundChannel(a), nodeBackgroundChannel(b))
	layers.Swap(nodeForegroundChannel(a), nodeForegroundChannel(b))
}
