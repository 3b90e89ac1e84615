package domain

// KeyPrefix is the default storage key namespace.
const KeyPrefix = "learnrec:"

// RecommendDefaults holds engine-independent recommendation settings.
type RecommendDefaults struct {
	Limit         int
	MaxLimit      int
	FallbackScore int
}

// DefaultRecommendDefaults returns the limits used when config leaves them empty.
func DefaultRecommendDefaults() RecommendDefaults {
	return RecommendDefaults{
		Limit:         10,
		MaxLimit:      50,
		FallbackScore: 50,
	}
}
