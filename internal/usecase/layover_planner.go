package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/internal/domain/repository"
	"loungeadvisor-service/pkg/errs"
	"loungeadvisor-service/pkg/logger"
	"loungeadvisor-service/pkg/metrics"
	"loungeadvisor-service/pkg/utils"
	"loungeadvisor-service/templates"
)

// Layover bucket boundaries, in minutes
const (
	quickVisitThreshold     = 90
	fullExperienceThreshold = 180

	// full_experience keeps an hour clear of the lounge; visits are capped
	// at three hours however long the layover
	fullExperienceReserve = 60
	maxVisitMinutes       = 180

	maxQuickVisitLounges = 3
)

// LayoverPlanner turns a connecting itinerary into per-connection lounge
// strategies
type LayoverPlanner struct {
	recommender *Recommender
	lounges     repository.LoungeRepository
	timeParser  *utils.FlightTimeParser
	logger      logger.Logger
	metrics     *metrics.Metrics
	workers     int
}

// NewLayoverPlanner creates a new layover planner. workers bounds the
// parallel per-leg flight lookups.
func NewLayoverPlanner(
	recommender *Recommender,
	lounges repository.LoungeRepository,
	timeParser *utils.FlightTimeParser,
	logger logger.Logger,
	m *metrics.Metrics,
	workers int,
) *LayoverPlanner {
	if workers <= 0 {
		workers = 4
	}
	return &LayoverPlanner{
		recommender: recommender,
		lounges:     lounges,
		timeParser:  timeParser,
		logger:      logger,
		metrics:     m,
		workers:     workers,
	}
}

// PlanLayoverStrategy produces one strategy per adjacent pair of legs.
// Connections whose flights cannot be resolved are skipped rather than
// failing the whole itinerary; malformed leg input fails everything.
func (p *LayoverPlanner) PlanLayoverStrategy(ctx context.Context, req entity.LayoverPlanRequest) (envelope *entity.Envelope) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("Layover planning panicked", "panic", rec)
			envelope = entity.Failure(string(errs.KindInternal), "layover planning failure")
		}
	}()

	if len(req.Legs) == 0 {
		return EnvelopeFromError(errs.Validation("itinerary legs are required"))
	}
	for _, leg := range req.Legs {
		if _, err := utils.ParseFlightIdentifier(leg.Identifier); err != nil {
			return EnvelopeFromError(err)
		}
		if err := utils.ValidateDepartureDate(leg.Date); err != nil {
			return EnvelopeFromError(err)
		}
	}

	statuses := p.resolveLegs(ctx, req.Legs)

	strategies := []entity.LayoverStrategy{}
	for i := 0; i+1 < len(req.Legs); i++ {
		arrival, departure := statuses[i], statuses[i+1]
		if arrival == nil || departure == nil {
			p.logger.Warn("Skipping connection with unresolved flight",
				"arrivalLeg", req.Legs[i].Identifier,
				"departureLeg", req.Legs[i+1].Identifier)
			continue
		}

		minutes, ok := p.layoverMinutes(ctx, arrival, departure)
		if !ok {
			p.logger.Warn("Skipping connection with unresolvable timing",
				"airport", arrival.Arrival.Airport)
			continue
		}

		strategies = append(strategies, p.planConnection(ctx, arrival, departure, minutes, req.Memberships, req.Preferences))
	}

	p.metrics.IncLayoverPlansServed()
	return entity.Success(strategies)
}

// resolveLegs looks up every leg's flight status in a bounded worker pool,
// reassembling results in leg order. A leg that cannot be resolved stays
// nil; its connections are skipped later.
func (p *LayoverPlanner) resolveLegs(ctx context.Context, legs []entity.FlightLeg) []*entity.FlightStatus {
	statuses := make([]*entity.FlightStatus, len(legs))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, leg := range legs {
		i, leg := i, leg
		g.Go(func() error {
			status, err := p.recommender.ResolveFlight(ctx, leg.Identifier, leg.Date, leg.OperationalSuffix)
			if err != nil {
				p.logger.Warn("Leg lookup failed", "identifier", leg.Identifier, "date", leg.Date, "error", err)
				return nil
			}
			statuses[i] = status
			return nil
		})
	}
	g.Wait()

	return statuses
}

// layoverMinutes computes the dwell time between an arriving and a
// departing leg from their estimated times
func (p *LayoverPlanner) layoverMinutes(ctx context.Context, arrival, departure *entity.FlightStatus) (int, bool) {
	arriveAt, err := p.timeParser.ParseFlightTime(ctx, bestTime(arrival.Arrival), arrival.DepartureDate, arrival.Arrival.Airport)
	if err != nil {
		return 0, false
	}
	departAt, err := p.timeParser.ParseFlightTime(ctx, bestTime(departure.Departure), departure.DepartureDate, departure.Departure.Airport)
	if err != nil {
		return 0, false
	}
	return int(departAt.Sub(arriveAt).Minutes()), true
}

func bestTime(point entity.FlightPoint) string {
	if point.EstimatedTime != "" {
		return point.EstimatedTime
	}
	return point.ScheduledTime
}

// planConnection classifies one connection and, when there is time for a
// lounge, ranks candidates against the departing flight
func (p *LayoverPlanner) planConnection(
	ctx context.Context,
	arrival, departure *entity.FlightStatus,
	minutes int,
	memberships []string,
	prefs *entity.Preferences,
) entity.LayoverStrategy {
	airport := arrival.Arrival.Airport
	strategy := entity.LayoverStrategy{
		ConnectionAirport: airport,
		ArrivalFlight:     arrival.Identifier(),
		DepartureFlight:   departure.Identifier(),
		LayoverMinutes:    minutes,
	}

	switch {
	case minutes < quickVisitThreshold:
		// Too tight for any lounge; no catalog lookup
		strategy.Recommendation = entity.StrategyNoLounge

	case minutes < fullExperienceThreshold:
		strategy.Recommendation = entity.StrategyQuickVisit
		strategy.SuggestedLounges = p.quickVisitLounges(ctx, airport, departure, memberships, prefs)

	default:
		strategy.Recommendation = entity.StrategyFullExperience
		strategy.SuggestedLounges = p.fullExperienceLounges(ctx, airport, departure, minutes, memberships, prefs)
	}

	strategy.Advice = templates.LayoverAdvice(strategy.Recommendation, minutes, airport)
	return strategy
}

// quickVisitLounges ranks lounges in the next departure's terminal with a
// low-wait bias, capped at three
func (p *LayoverPlanner) quickVisitLounges(
	ctx context.Context,
	airport string,
	departure *entity.FlightStatus,
	memberships []string,
	prefs *entity.Preferences,
) []entity.Recommendation {
	lounges := p.loungesAt(ctx, airport)

	if terminal := departure.Departure.Terminal; terminal != "" {
		sameTerminal := lounges[:0:0]
		for _, lounge := range lounges {
			if lounge.Terminal == terminal {
				sameTerminal = append(sameTerminal, lounge)
			}
		}
		lounges = sameTerminal
	}

	recs := p.recommender.scoreAccessible(ctx, departure, lounges, memberships, prefs)

	// Low-wait bias ranks ahead of the usual rating tie-break
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].Lounge.AvgWaitMinutes != recs[j].Lounge.AvgWaitMinutes {
			return recs[i].Lounge.AvgWaitMinutes < recs[j].Lounge.AvgWaitMinutes
		}
		if recs[i].Lounge.Rating != recs[j].Lounge.Rating {
			return recs[i].Lounge.Rating > recs[j].Lounge.Rating
		}
		return recs[i].Lounge.Name < recs[j].Lounge.Name
	})

	if len(recs) > maxQuickVisitLounges {
		recs = recs[:maxQuickVisitLounges]
	}
	return recs
}

// fullExperienceLounges applies the full scorer semantics, replacing the
// entry/exit window with a recommended visit duration
func (p *LayoverPlanner) fullExperienceLounges(
	ctx context.Context,
	airport string,
	departure *entity.FlightStatus,
	minutes int,
	memberships []string,
	prefs *entity.Preferences,
) []entity.Recommendation {
	lounges := p.loungesAt(ctx, airport)
	recs := p.recommender.ScoreLounges(ctx, departure, lounges, memberships, prefs)

	duration := minutes - fullExperienceReserve
	if duration > maxVisitMinutes {
		duration = maxVisitMinutes
	}
	for i := range recs {
		recs[i].Timing = &entity.TimingWindow{RecommendedDurationMinutes: duration}
	}
	return recs
}

// loungesAt fetches the catalog for a connection airport, degrading to an
// empty candidate list when the gateway fails
func (p *LayoverPlanner) loungesAt(ctx context.Context, airport string) []entity.Lounge {
	catalog, err := p.lounges.GetLoungesWithAccessRules(ctx, airport)
	if err != nil {
		p.logger.Error("Lounge catalog lookup failed", "airport", airport, "error", err)
		return nil
	}
	return catalog.Lounges
}
