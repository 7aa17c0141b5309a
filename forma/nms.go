package forma

import (
	"container/heap"

	"github.com/pkg/errors"
)

// scoredShape holds prepared shape with its detection score for priority queue
type scoredShape struct {
	score    float32
	original int
	shape    *Prepared
	index    int
}

// scoreHeap implements heap.Interface for max-heap by score
type scoreHeap []*scoredShape

func (h scoreHeap) Len() int { return len(h) }

// Less returns true if i has higher score (max-heap). Equal scores keep input order.
func (h scoreHeap) Less(i, j int) bool {
	if h[i].score == h[j].score {
		return h[i].original < h[j].original
	}
	return h[i].score > h[j].score
}

func (h scoreHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *scoreHeap) Push(x any) {
	n := len(*h)
	item := x.(*scoredShape)
	item.index = n
	*h = append(*h, item)
}

func (h *scoreHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[0 : n-1]
	return item
}

// Suppress performs greedy non-maximum suppression.
// Shapes are visited from highest score to lowest; a shape is dropped when its IoU with
// any already kept shape exceeds iouThreshold. Returns indices of kept shapes in visiting order.
// Works for any mix of boxes, masks and fences.
func Suppress(shapes []Shape, scores []float32, iouThreshold float32) ([]int, error) {
	if len(shapes) != len(scores) {
		return nil, errors.Errorf("Shapes and scores arrays must have the same length. Scores array size: %d. Shapes array size: %d", len(scores), len(shapes))
	}
	pq := &scoreHeap{}
	heap.Init(pq)
	for i := range shapes {
		heap.Push(pq, &scoredShape{
			score:    scores[i],
			original: i,
			shape:    Prepare(shapes[i]),
		})
	}

	kept := make([]*scoredShape, 0, len(shapes))
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*scoredShape)
		suppressed := false
		for _, k := range kept {
			if IoU(k.shape, item.shape) > iouThreshold {
				suppressed = true
				break
			}
		}
		if !suppressed {
			kept = append(kept, item)
		}
	}

	indices := make([]int, len(kept))
	for i, k := range kept {
		indices[i] = k.original
	}
	return indices, nil
}
