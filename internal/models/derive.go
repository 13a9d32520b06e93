package models

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Derivation rules for campaign fields. All pure except NewCampaignID,
// which draws a random suffix.

// Reach estimates impressions from budget.
func Reach(budget int) int {
	return budget * 10
}

// DailySpend spreads the budget over a 30-day flight.
func DailySpend(budget int) int {
	return int(math.Round(float64(budget) / 30))
}

// EstimatedAudienceSize approximates how many people a targeting selection
// covers. Wide age spans can push the result to zero or below; that is
// accepted range behavior, not clamped.
func EstimatedAudienceSize(ageFrom, ageTo int, gender string) int {
	span := ageTo - ageFrom
	if span < 0 {
		span = -span
	}
	divisor := 2.0
	if gender == GenderAll {
		divisor = 1.0
	}
	return int(math.Round(float64(50000-span*1000) / divisor))
}

// NewCampaignID generates an AD-<year>-<nnnnnn> identifier. Uniqueness is
// probabilistic: the suffix is random and not checked against existing ids.
func NewCampaignID(now time.Time) string {
	return fmt.Sprintf("AD-%d-%06d", now.Year(), rand.Intn(1000000))
}

// CampaignName derives a display name from the product description,
// truncated to 30 characters plus an ellipsis.
func CampaignName(productDescription string) string {
	runes := []rune(productDescription)
	if len(runes) > 30 {
		runes = runes[:30]
	}
	return string(runes) + "..."
}
