package forma

import (
	"context"
	"sort"

	"github.com/arthurkushman/go-hungarian"
	"github.com/pkg/errors"
)

// MatchingAlgorithm is for algorithm type for one-to-one shape association
type MatchingAlgorithm uint16

const (
	// MatchingAlgorithmHungarian uses the Hungarian algorithm (Kuhn-Munkres) for optimal assignment
	MatchingAlgorithmHungarian MatchingAlgorithm = iota
	// MatchingAlgorithmGreedy uses a greedy algorithm for faster but potentially suboptimal assignment
	MatchingAlgorithmGreedy
)

// Pair is a matched couple: index into first set, index into second set and their IoU
type Pair struct {
	First  int
	Second int
	IoU    float32
}

// Match associates shapes of two sets one-to-one maximizing IoU.
// Pairs with IoU below minIoU (or with no overlap at all) are not reported.
// Result is ordered by index into the first set.
func Match(ctx context.Context, first, second []Shape, minIoU float32, algorithm MatchingAlgorithm) ([]Pair, error) {
	if len(first) == 0 || len(second) == 0 {
		return []Pair{}, nil
	}
	iouMatrix, err := IoUMatrix(ctx, first, second)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build IoU matrix")
	}
	var matches [][2]int
	switch algorithm {
	case MatchingAlgorithmHungarian:
		matches = hungarianMatching(iouMatrix, len(first), len(second))
	case MatchingAlgorithmGreedy:
		matches = greedyMatching(iouMatrix, minIoU)
	default:
		return nil, errors.Errorf("Unknown matching algorithm %d", algorithm)
	}
	pairs := make([]Pair, 0, len(matches))
	for _, m := range matches {
		iouVal := iouMatrix[m[0]][m[1]]
		if iouVal <= 0 || iouVal < minIoU {
			continue
		}
		pairs = append(pairs, Pair{First: m[0], Second: m[1], IoU: iouVal})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].First < pairs[j].First })
	return pairs, nil
}

// hungarianMatching pads IoU matrix to square and solves maximization problem.
// Returns (row, column) pairs within original bounds.
func hungarianMatching(iouMatrix [][]float32, numRows, numCols int) [][2]int {
	size := maxInt(numRows, numCols)
	padded := make([][]float64, size)
	for i := 0; i < size; i++ {
		padded[i] = make([]float64, size)
		if i >= numRows {
			continue
		}
		for j := 0; j < numCols; j++ {
			padded[i][j] = float64(iouMatrix[i][j])
		}
	}
	assignments := hungarian.SolveMax(padded)
	matches := make([][2]int, 0, len(assignments))
	for row, cols := range assignments {
		for col := range cols {
			if row < numRows && col < numCols {
				matches = append(matches, [2]int{row, col})
			}
		}
	}
	return matches
}

// greedyMatching gives every row its best still free column
func greedyMatching(iouMatrix [][]float32, minIoU float32) [][2]int {
	matches := make([][2]int, 0)
	taken := make(map[int]struct{})
	for i := range iouMatrix {
		bestIoU := float32(-1.0)
		bestCol := -1
		for j, iouVal := range iouMatrix[i] {
			if _, found := taken[j]; found {
				continue
			}
			if iouVal > bestIoU && iouVal >= minIoU {
				bestIoU = iouVal
				bestCol = j
			}
		}
		if bestCol != -1 {
			matches = append(matches, [2]int{i, bestCol})
			taken[bestCol] = struct{}{}
		}
	}
	return matches
}
