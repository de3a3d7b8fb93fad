package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
	"loungeadvisor-service/pkg/metrics"
	"loungeadvisor-service/pkg/utils"
	"loungeadvisor-service/templates"
)

const (
	// Travelers should be at the gate an hour before estimated departure,
	// and out of the lounge half an hour before that
	gateBufferMinutes       = 60
	loungeExitBufferMinutes = 30

	maxRecommendations = 5
)

// Scoring weights per signal
const (
	scoreSameTerminal  = 50
	scoreOtherTerminal = 20
	scoreQuietMatch    = 15
	scoreFoodMatch     = 15
	scoreWifiMatch     = 10
	scoreShowerMatch   = 20
	scoreShortWait     = 15
	scoreLongWait      = -10
	scoreTopRating     = 20
	scoreGoodRating    = 10
)

// Recommender ranks lounges for a single flight
type Recommender struct {
	flights    repository.FlightProvider
	lounges    repository.LoungeRepository
	timeParser *utils.FlightTimeParser
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewRecommender creates a new recommender
func NewRecommender(
	flights repository.FlightProvider,
	lounges repository.LoungeRepository,
	timeParser *utils.FlightTimeParser,
	logger logger.Logger,
	m *metrics.Metrics,
) *Recommender {
	return &Recommender{
		flights:    flights,
		lounges:    lounges,
		timeParser: timeParser,
		logger:     logger,
		metrics:    m,
	}
}

// GetFlightAwareRecommendations resolves the flight, filters the departure
// airport's lounges by access and ranks them. All failures are folded into
// the result envelope; nothing escapes as an error.
func (r *Recommender) GetFlightAwareRecommendations(ctx context.Context, req entity.RecommendationRequest) (envelope *entity.Envelope) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Recommendation scoring panicked", "panic", rec)
			envelope = entity.Failure(string(errs.KindInternal), "recommendation engine failure")
		}
	}()

	flight, err := r.ResolveFlight(ctx, req.FlightIdentifier, req.Date, req.OperationalSuffix)
	if err != nil {
		return EnvelopeFromError(err)
	}
	if flight == nil {
		return entity.NotFound(fmt.Sprintf("no flight found for %s on %s", strings.ToUpper(req.FlightIdentifier), req.Date))
	}
	if flight.Departure.Airport == "" {
		return entity.NotFound(fmt.Sprintf("flight %s has no departure airport on record", flight.Identifier()))
	}

	catalog, err := r.lounges.GetLoungesWithAccessRules(ctx, flight.Departure.Airport)
	if err != nil {
		r.logger.Error("Lounge catalog lookup failed", "airport", flight.Departure.Airport, "error", err)
		return EnvelopeFromError(err)
	}

	recommendations := r.ScoreLounges(ctx, flight, catalog.Lounges, req.Memberships, req.Preferences)
	r.metrics.IncRecommendationsServed()
	if len(recommendations) > 0 {
		r.logger.Info("Recommendations ready",
			"flight", flight.Identifier(),
			"accessible", len(recommendations),
			"top", templates.RecommendationSummary(recommendations[0]))
	}

	return entity.Success(&entity.RecommendationResult{
		Flight:          flight,
		Airport:         catalog.Airport,
		Recommendations: recommendations,
		TotalAccessible: len(recommendations),
	})
}

// SearchFlights wraps the provider's flight-offers search in the result
// envelope
func (r *Recommender) SearchFlights(ctx context.Context, query entity.FlightSearchQuery) *entity.Envelope {
	result, err := r.searchWithRetry(ctx, query)
	if err != nil {
		return EnvelopeFromError(err)
	}
	if result.TotalFound == 0 {
		return entity.NotFound(fmt.Sprintf("no flights found from %s to %s on %s", result.Origin, result.Destination, result.DepartureDate))
	}
	return entity.Success(result)
}

// ResolveFlight looks up a flight, retrying exactly once with a fresh token
// after an auth failure. The client has already invalidated the cached
// token by the time the AuthError surfaces here.
func (r *Recommender) ResolveFlight(ctx context.Context, identifier, date, suffix string) (*entity.FlightStatus, error) {
	status, err := r.flights.GetFlightStatus(ctx, identifier, date, suffix)
	if err != nil && errs.IsAuth(err) {
		r.logger.Warn("Flight lookup auth failure, retrying with fresh token", "identifier", identifier)
		status, err = r.flights.GetFlightStatus(ctx, identifier, date, suffix)
	}
	return status, err
}

func (r *Recommender) searchWithRetry(ctx context.Context, query entity.FlightSearchQuery) (*entity.FlightSearchResult, error) {
	result, err := r.flights.SearchFlights(ctx, query)
	if err != nil && errs.IsAuth(err) {
		r.logger.Warn("Flight search auth failure, retrying with fresh token")
		result, err = r.flights.SearchFlights(ctx, query)
	}
	return result, err
}

// ScoreLounges ranks the accessible lounges for a flight. Returns at most
// five recommendations; an empty slice when nothing is accessible.
func (r *Recommender) ScoreLounges(
	ctx context.Context,
	flight *entity.FlightStatus,
	lounges []entity.Lounge,
	memberships []string,
	prefs *entity.Preferences,
) []entity.Recommendation {
	recommendations := r.scoreAccessible(ctx, flight, lounges, memberships, prefs)

	sortRecommendations(recommendations)
	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

// scoreAccessible filters by access and scores every surviving lounge,
// without ordering or truncation
func (r *Recommender) scoreAccessible(
	ctx context.Context,
	flight *entity.FlightStatus,
	lounges []entity.Lounge,
	memberships []string,
	prefs *entity.Preferences,
) []entity.Recommendation {
	timing := r.timingWindow(ctx, flight)

	recommendations := make([]entity.Recommendation, 0, len(lounges))
	for _, lounge := range lounges {
		access := MatchAccess(memberships, lounge.AccessProviders)
		if !access.HasAccess {
			continue
		}

		score, reasons := scoreLounge(lounge, flight, prefs)
		recommendations = append(recommendations, entity.Recommendation{
			Lounge:        lounge,
			AccessMethods: access.Matches,
			Score:         score,
			Reasons:       reasons,
			Timing:        timing,
		})
	}
	return recommendations
}

// scoreLounge applies the additive point model to one lounge
func scoreLounge(lounge entity.Lounge, flight *entity.FlightStatus, prefs *entity.Preferences) (int, []string) {
	score := 0
	var reasons []string

	switch {
	case lounge.Terminal == "":
		// terminal unknown, no signal
	case lounge.Terminal == flight.Departure.Terminal && flight.Departure.Terminal != "":
		score += scoreSameTerminal
		reasons = append(reasons, fmt.Sprintf("in your departure terminal %s", lounge.Terminal))
	default:
		score += scoreOtherTerminal
		reasons = append(reasons, fmt.Sprintf("in terminal %s", lounge.Terminal))
	}

	if prefs != nil {
		if prefs.Quiet && amenityMatch(lounge.Amenities, "quiet") {
			score += scoreQuietMatch
			reasons = append(reasons, "has a quiet zone")
		}
		if prefs.Food && amenityMatch(lounge.Amenities, "food", "dining") {
			score += scoreFoodMatch
			reasons = append(reasons, "serves food")
		}
		if prefs.Wifi && amenityMatch(lounge.Amenities, "wifi") {
			score += scoreWifiMatch
			reasons = append(reasons, "has wifi")
		}
		if prefs.Showers && amenityMatch(lounge.Amenities, "shower") {
			score += scoreShowerMatch
			reasons = append(reasons, "has showers")
		}
	}

	switch {
	case lounge.AvgWaitMinutes < 10:
		score += scoreShortWait
		reasons = append(reasons, "short entry wait")
	case lounge.AvgWaitMinutes > 20:
		score += scoreLongWait
		reasons = append(reasons, fmt.Sprintf("entry wait around %d minutes", lounge.AvgWaitMinutes))
	}

	switch {
	case lounge.Rating >= 4.5:
		score += scoreTopRating
		reasons = append(reasons, fmt.Sprintf("rated %.1f", lounge.Rating))
	case lounge.Rating >= 4.0:
		score += scoreGoodRating
		reasons = append(reasons, fmt.Sprintf("rated %.1f", lounge.Rating))
	}

	return score, reasons
}

// amenityMatch reports whether any amenity contains one of the keywords,
// case-insensitively
func amenityMatch(amenities []string, keywords ...string) bool {
	for _, amenity := range amenities {
		a := strings.ToLower(amenity)
		for _, keyword := range keywords {
			if strings.Contains(a, keyword) {
				return true
			}
		}
	}
	return false
}

// sortRecommendations orders by score descending, breaking ties by rating
// descending then name ascending
func sortRecommendations(recs []entity.Recommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].Lounge.Rating != recs[j].Lounge.Rating {
			return recs[i].Lounge.Rating > recs[j].Lounge.Rating
		}
		return recs[i].Lounge.Name < recs[j].Lounge.Name
	})
}

// timingWindow derives the visit window from the estimated departure time.
// Returns nil when the provider timestamp cannot be resolved; the
// recommendation is still served without it.
func (r *Recommender) timingWindow(ctx context.Context, flight *entity.FlightStatus) *entity.TimingWindow {
	value := flight.Departure.EstimatedTime
	if value == "" {
		value = flight.Departure.ScheduledTime
	}
	if value == "" || r.timeParser == nil {
		return nil
	}

	departure, err := r.timeParser.ParseFlightTime(ctx, value, flight.DepartureDate, flight.Departure.Airport)
	if err != nil {
		r.logger.Debug("Cannot derive timing window", "flight", flight.Identifier(), "error", err)
		return nil
	}

	latestExit := departure.Add(-gateBufferMinutes * time.Minute)
	latestEntry := latestExit.Add(-loungeExitBufferMinutes * time.Minute)
	return &entity.TimingWindow{
		LatestEntry: latestEntry.Format(time.RFC3339),
		LatestExit:  latestExit.Format(time.RFC3339),
	}
}

// EnvelopeFromError folds a typed error into the uniform result envelope
func EnvelopeFromError(err error) *entity.Envelope {
	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return entity.Failure(string(appErr.Kind), appErr.Message)
	}
	return entity.Failure(string(errs.KindInternal), err.Error())
}
