package nodes

import (
	"fmt"
	"slices"
	"testing"

	"github.com/gogpu/nodes/draw"
	"github.com/gogpu/nodes/geom"
)

var (
	geomZero geom.Vec2
	cWhite   = rgba8(255, 255, 255, 255)
)

// countingLayers wraps a draw.List and counts swaps.
type countingLayers struct {
	*draw.List
	swaps int
}

func (l *countingLayers) Swap(a, b int) {
	l.swaps++
	l.List.Swap(a, b)
}

// labelledList returns a list whose node channels carry text naming the
// node index in submission order.
func labelledList(submission []int) *draw.List {
	l := draw.NewList()
	l.Grow(2 * len(submission))
	for k, idx := range submission {
		l.SetCurrent(nodeBackgroundChannel(k))
		l.AddText(geomZero, cWhite, fmt.Sprintf("bg%d", idx))
		l.SetCurrent(nodeForegroundChannel(k))
		l.AddText(geomZero, cWhite, fmt.Sprintf("fg%d", idx))
	}
	return l
}

func channelText(l *draw.List, ch int) string {
	cmds := l.Channel(ch)
	if len(cmds) != 1 {
		return fmt.Sprintf("<%d commands>", len(cmds))
	}
	t, ok := cmds[0].(draw.Text)
	if !ok {
		return fmt.Sprintf("<%T>", cmds[0])
	}
	return t.Text
}

func TestSortChannelsByDepth(t *testing.T) {
	tests := []struct {
		name       string
		submission []int
		depth      []int
		swaps      int
	}{
		{"sorted", []int{0, 1, 2}, []int{0, 1, 2}, 0},
		{"raise first", []int{0, 1, 2}, []int{1, 2, 0}, 4},
		{"reverse", []int{0, 1, 2}, []int{2, 1, 0}, 6},
		{"bottom swap", []int{3, 5, 7}, []int{5, 3, 7}, 2},
		{"single", []int{4}, []int{4}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layers := &countingLayers{List: labelledList(tt.submission)}
			submission := slices.Clone(tt.submission)
			sortChannelsByDepth(layers, tt.depth, submission)

			if !slices.Equal(submission, tt.depth) {
				t.Errorf("submission = %v, want %v", submission, tt.depth)
			}
			for k, idx := range tt.depth {
				if got, want := channelText(layers.List, nodeBackgroundChannel(k)), fmt.Sprintf("bg%d", idx); got != want {
					t.Errorf("background slot %d = %q, want %q", k, got, want)
				}
				if got, want := channelText(layers.List, nodeForegroundChannel(k)), fmt.Sprintf("fg%d", idx); got != want {
					t.Errorf("foreground slot %d = %q, want %q", k, got, want)
				}
			}
			if layers.swaps != tt.swaps {
				t.Errorf("swaps = %d, want %d", layers.swaps, tt.swaps)
			}
		})
	}
}

func TestSortChannelsKeepsChannelZero(t *testing.T) {
	l := labelledList([]int{0, 1})
	l.SetCurrent(0)
	l.AddText(geomZero, cWhite, "base")
	sortChannelsByDepth(l, []int{1, 0}, []int{0, 1})
	if got := channelText(l, 0); got != "base" {
		t.Errorf("channel 0 = %q, want base", got)
	}
}
