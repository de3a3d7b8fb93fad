package amadeus

import (
	"encoding/json"

	"loungeadvisor-service/internal/domain/entity"
	"loungeadvisor-service/pkg/utils"
)

// Wire shapes for the schedule API. Scheduled times live under the flight
// designator; terminals, gates and operational times live at the top level.

type scheduleResponse struct {
	Data []scheduleFlight `json:"data"`
}

type scheduleFlight struct {
	FlightDesignator struct {
		CarrierCode  string          `json:"carrierCode"`
		FlightNumber json.Number     `json:"flightNumber"`
		Departure    designatorPoint `json:"departure"`
		Arrival      designatorPoint `json:"arrival"`
	} `json:"flightDesignator"`
	Departure operationalPoint `json:"departure"`
	Arrival   operationalPoint `json:"arrival"`
	Aircraft  struct {
		AircraftType string `json:"aircraftType"`
	} `json:"aircraft"`
	OperatingCarrier struct {
		CarrierCode string `json:"carrierCode"`
	} `json:"operatingCarrier"`
}

type designatorPoint struct {
	IataCode      string `json:"iataCode"`
	ScheduledTime string `json:"scheduledTime"`
}

type operationalPoint struct {
	IataCode      string `json:"iataCode"`
	Terminal      string `json:"terminal"`
	Gate          string `json:"gate"`
	EstimatedTime string `json:"estimatedTime"`
	ActualTime    string `json:"actualTime"`
}

// toEntity normalizes one provider record into the canonical shape, one
// level deep. Absent estimated/actual times default to the scheduled time.
func (f scheduleFlight) toEntity(designator utils.FlightDesignator, date, suffix string) *entity.FlightStatus {
	return &entity.FlightStatus{
		CarrierCode:       designator.CarrierCode,
		FlightNumber:      designator.FlightNumber,
		DepartureDate:     date,
		OperationalSuffix: suffix,
		Departure:         normalizePoint(f.FlightDesignator.Departure, f.Departure),
		Arrival:           normalizePoint(f.FlightDesignator.Arrival, f.Arrival),
		Aircraft:          f.Aircraft.AircraftType,
		OperatingCarrier:  f.OperatingCarrier.CarrierCode,
	}
}

func normalizePoint(scheduled designatorPoint, ops operationalPoint) entity.FlightPoint {
	airport := scheduled.IataCode
	if airport == "" {
		airport = ops.IataCode
	}

	estimated := ops.EstimatedTime
	if estimated == "" {
		estimated = scheduled.ScheduledTime
	}
	actual := ops.ActualTime
	if actual == "" {
		actual = scheduled.ScheduledTime
	}

	return entity.FlightPoint{
		Airport:       airport,
		Terminal:      ops.Terminal,
		Gate:          ops.Gate,
		ScheduledTime: scheduled.ScheduledTime,
		EstimatedTime: estimated,
		ActualTime:    actual,
	}
}

// Wire shapes for the flight-offers API.

type offersResponse struct {
	Data []offer `json:"data"`
}

type offer struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			Departure   offerPoint `json:"departure"`
			Arrival     offerPoint `json:"arrival"`
			CarrierCode string     `json:"carrierCode"`
			Number      string     `json:"number"`
			Duration    string     `json:"duration"`
			Aircraft    struct {
				Code string `json:"code"`
			} `json:"aircraft"`
		} `json:"segments"`
	} `json:"itineraries"`
}

type offerPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal"`
	At       string `json:"at"`
}

func (o offer) toEntity() entity.FlightOption {
	option := entity.FlightOption{
		ID: o.ID,
		Price: entity.Price{
			Total:    o.Price.Total,
			Currency: o.Price.Currency,
		},
		Itineraries: make([]entity.Itinerary, 0, len(o.Itineraries)),
	}

	for _, it := range o.Itineraries {
		itinerary := entity.Itinerary{
			Duration: it.Duration,
			Segments: make([]entity.Segment, 0, len(it.Segments)),
		}
		for _, seg := range it.Segments {
			itinerary.Segments = append(itinerary.Segments, entity.Segment{
				Departure: entity.SegmentPoint{
					Airport:  seg.Departure.IataCode,
					Terminal: seg.Departure.Terminal,
					Time:     seg.Departure.At,
				},
				Arrival: entity.SegmentPoint{
					Airport:  seg.Arrival.IataCode,
					Terminal: seg.Arrival.Terminal,
					Time:     seg.Arrival.At,
				},
				Carrier:          seg.CarrierCode,
				FlightNumber:     seg.Number,
				FullFlightNumber: seg.CarrierCode + seg.Number,
				Duration:         seg.Duration,
				Aircraft:         seg.Aircraft.Code,
			})
		}
		option.Itineraries = append(option.Itineraries, itinerary)
	}

	return option
}
