package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCorrect(t *testing.T) {
	key := []int{3, 2, 1, 0}

	assert.Equal(t, 4, countCorrect([]int{3, 2, 1, 0}, key))
	assert.Equal(t, 3, countCorrect([]int{3, 2, 2, 0}, key))
	assert.Equal(t, 0, countCorrect([]int{0, 1, 2, 3}, key))
}

func TestScoreAndClassification(t *testing.T) {
	key := []int{3, 2, 1, 0}

	// 3 of 4 correct → 75 → intermediate
	correct := countCorrect([]int{3, 2, 2, 0}, key)
	score := float64(correct) / float64(len(key)) * 100
	assert.InDelta(t, 75.0, score, 1e-9)
	assert.Equal(t, TierIntermediate, ClassifyScore(score))

	// All correct → 100 → advanced
	correct = countCorrect(key, key)
	score = float64(correct) / float64(len(key)) * 100
	assert.Equal(t, 100.0, score)
	assert.Equal(t, TierAdvanced, ClassifyScore(score))

	// None correct → 0 → beginner
	correct = countCorrect([]int{0, 0, 0, 1}, key)
	score = float64(correct) / float64(len(key)) * 100
	assert.Equal(t, 0.0, score)
	assert.Equal(t, TierBeginner, ClassifyScore(score))
}
