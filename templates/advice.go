package templates

import (
	"fmt"

	"loungeadvisor-service/internal/domain/entity"
)

// LayoverAdvice renders the traveler-facing advice line for a connection
func LayoverAdvice(strategy string, layoverMinutes int, airport string) string {
	switch strategy {
	case entity.StrategyNoLounge:
		return fmt.Sprintf(
			"Only %d minutes at %s - head straight to your departure gate, there is no comfortable time for a lounge visit.",
			layoverMinutes, airport)
	case entity.StrategyQuickVisit:
		return fmt.Sprintf(
			"%d minutes at %s allows a quick lounge stop. Stick to lounges in your departure terminal and keep an eye on the clock.",
			layoverMinutes, airport)
	case entity.StrategyFullExperience:
		return fmt.Sprintf(
			"With %d minutes at %s you have time to settle in. Grab a meal, a shower or a quiet corner before your next flight.",
			layoverMinutes, airport)
	default:
		return fmt.Sprintf("%d minutes at %s.", layoverMinutes, airport)
	}
}

// RecommendationSummary renders a one-line summary for a scored lounge
func RecommendationSummary(rec entity.Recommendation) string {
	summary := fmt.Sprintf("%s (score %d, rating %.1f)", rec.Lounge.Name, rec.Score, rec.Lounge.Rating)
	if rec.Lounge.Terminal != "" {
		summary += fmt.Sprintf(", terminal %s", rec.Lounge.Terminal)
	}
	if rec.Timing != nil && rec.Timing.LatestExit != "" {
		summary += fmt.Sprintf(", leave by %s", rec.Timing.LatestExit)
	}
	return summary
}
