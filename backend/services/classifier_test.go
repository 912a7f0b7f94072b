package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScore(t *testing.T) {
	assert.Equal(t, TierBeginner, ClassifyScore(0))
	assert.Equal(t, TierBeginner, ClassifyScore(49.999))
	assert.Equal(t, TierIntermediate, ClassifyScore(50))
	assert.Equal(t, TierIntermediate, ClassifyScore(75))
	assert.Equal(t, TierIntermediate, ClassifyScore(79.999))
	assert.Equal(t, TierAdvanced, ClassifyScore(80))
	assert.Equal(t, TierAdvanced, ClassifyScore(100))
}

func TestClassifyScoreMonotonic(t *testing.T) {
	rank := map[string]int{
		TierBeginner:     0,
		TierIntermediate: 1,
		TierAdvanced:     2,
	}

	prev := rank[ClassifyScore(0)]
	for score := 0.5; score <= 100; score += 0.5 {
		tier := ClassifyScore(score)
		current, known := rank[tier]
		assert.True(t, known, "unknown tier %q for score %v", tier, score)
		assert.GreaterOrEqual(t, current, prev, "tier dropped at score %v", score)
		prev = current
	}
}

func TestValidTier(t *testing.T) {
	assert.True(t, ValidTier("beginner"))
	assert.True(t, ValidTier("intermediate"))
	assert.True(t, ValidTier("advanced"))
	assert.False(t, ValidTier("expert"))
	assert.False(t, ValidTier(""))
}
