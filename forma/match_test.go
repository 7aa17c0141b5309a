package forma

import (
	"context"
	"testing"
)

func TestMatch(t *testing.T) {
	first := []Shape{NewBox(0, 0, 10, 10), NewBox(20, 20, 30, 30)}
	second := []Shape{NewBox(21, 21, 31, 31), NewBox(1, 1, 11, 11), NewBox(100, 100, 110, 110)}
	correctAnswer := []Pair{{First: 0, Second: 1}, {First: 1, Second: 0}}
	for _, algorithm := range []MatchingAlgorithm{MatchingAlgorithmHungarian, MatchingAlgorithmGreedy} {
		pairs, err := Match(context.Background(), first, second, 0.3, algorithm)
		if err != nil {
			t.Fatalf("Unexpected error for algorithm %d: %v", algorithm, err)
		}
		if len(pairs) != len(correctAnswer) {
			t.Fatalf("Wrong pairs for algorithm %d: %v, correct answer: %v", algorithm, pairs, correctAnswer)
		}
		for i := range pairs {
			if pairs[i].First != correctAnswer[i].First || pairs[i].Second != correctAnswer[i].Second {
				t.Errorf("Wrong pair #%d for algorithm %d: %v, correct answer: %v", i, algorithm, pairs[i], correctAnswer[i])
			}
			if !almostEqual(pairs[i].IoU, 81.0/119.0, eps) {
				t.Errorf("Wrong IoU of pair #%d: %v, correct answer: %v", i, pairs[i].IoU, 81.0/119.0)
			}
		}
	}
}

func TestMatchThreshold(t *testing.T) {
	first := []Shape{NewBox(0, 0, 10, 10)}
	second := []Shape{NewBox(5, 5, 15, 15)}
	pairs, err := Match(context.Background(), first, second, 0.5, MatchingAlgorithmHungarian)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("Pairs below threshold must be dropped, got %v", pairs)
	}
}

func TestMatchErrors(t *testing.T) {
	if _, err := Match(context.Background(), []Shape{box1}, []Shape{box2}, 0.1, MatchingAlgorithm(42)); err == nil {
		t.Errorf("Expected error for unknown algorithm")
	}
	pairs, err := Match(context.Background(), nil, []Shape{box2}, 0.1, MatchingAlgorithmGreedy)
	if err != nil || len(pairs) != 0 {
		t.Errorf("Empty input must give no pairs, got %v, %v", pairs, err)
	}
}
