package services

// Skill tiers assigned by the classifier.
const (
	TierBeginner     = "beginner"
	TierIntermediate = "intermediate"
	TierAdvanced     = "advanced"
)

// ClassifyScore maps an exam score to a skill tier. Boundary scores belong to
// the upper tier: 50 is intermediate, 80 is advanced.
func ClassifyScore(score float64) string {
	switch {
	case score < 50:
		return TierBeginner
	case score < 80:
		return TierIntermediate
	default:
		return TierAdvanced
	}
}

// ValidTier reports whether level names a known tier.
func ValidTier(level string) bool {
	return level == TierBeginner || level == TierIntermediate || level == TierAdvanced
}
