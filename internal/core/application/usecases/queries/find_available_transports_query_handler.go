package queries

import (
	"context"
	"sort"

	"ecomove/internal/core/domain/model/transport"
	"ecomove/internal/core/ports"
)

// FindAvailableTransportsQueryHandler resolves transport searches against the
// repositories. Station enrichment is best-effort: one broken station record
// must not hide every transport docked elsewhere.
type FindAvailableTransportsQueryHandler struct {
	transportRepository ports.TransportRepository
	stationRepository   ports.StationRepository
}

// NewFindAvailableTransportsQueryHandler creates a handler for transport
// searches.
func NewFindAvailableTransportsQueryHandler(
	transportRepository ports.TransportRepository,
	stationRepository ports.StationRepository,
) FindAvailableTransportsQueryHandler {
	return FindAvailableTransportsQueryHandler{
		transportRepository: transportRepository,
		stationRepository:   stationRepository,
	}
}

// Handle executes the search: candidate resolution, availability and type
// filters, station/distance enrichment, distance sort for proximity searches
// and final truncation. TotalFound counts matches before truncation.
func (h FindAvailableTransportsQueryHandler) Handle(
	ctx context.Context,
	query FindAvailableTransportsQuery,
) (FindAvailableTransportsResult, error) {
	if err := query.Validate(); err != nil {
		return FindAvailableTransportsResult{}, err
	}

	candidates, err := h.resolveCandidates(ctx, query)
	if err != nil {
		return FindAvailableTransportsResult{}, err
	}

	hits := make([]AvailableTransport, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.IsAvailable() {
			continue
		}
		if query.TransportType() != transport.TypeUnknown && candidate.Type() != query.TransportType() {
			continue
		}

		hits = append(hits, h.enrich(ctx, candidate, query))
	}

	if query.UserLocation() != nil {
		// Missing distances sort as zero and therefore come first.
		sort.SliceStable(hits, func(i, j int) bool {
			return distanceOrZero(hits[i]) < distanceOrZero(hits[j])
		})
	}

	totalFound := len(hits)
	if limit := query.MaxResults(); limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}

	return FindAvailableTransportsResult{
		Transports:   hits,
		TotalFound:   totalFound,
		SearchCenter: query.UserLocation(),
		SearchRadius: query.RadiusKm(),
	}, nil
}

func (h FindAvailableTransportsQueryHandler) resolveCandidates(
	ctx context.Context,
	query FindAvailableTransportsQuery,
) ([]*transport.Transport, error) {
	switch {
	case query.StationID() != nil:
		return h.transportRepository.FindByStation(ctx, *query.StationID())
	case query.UserLocation() != nil:
		return h.transportRepository.FindNearby(ctx, *query.UserLocation(), query.RadiusKm(), 0)
	default:
		return h.transportRepository.FindAvailable(ctx, nil)
	}
}

func (h FindAvailableTransportsQueryHandler) enrich(
	ctx context.Context,
	candidate *transport.Transport,
	query FindAvailableTransportsQuery,
) AvailableTransport {
	hit := AvailableTransport{Transport: candidate}

	stationID := candidate.CurrentStationID()
	if stationID == nil {
		return hit
	}

	dock, err := h.stationRepository.FindByID(ctx, *stationID)
	if err != nil || dock == nil {
		return hit
	}
	hit.Station = dock

	if query.UserLocation() != nil {
		if distance, distErr := dock.DistanceTo(*query.UserLocation()); distErr == nil {
			hit.DistanceKm = &distance
		}
	}

	return hit
}

func distanceOrZero(hit AvailableTransport) float64 {
	if hit.DistanceKm == nil {
		return 0
	}
	return *hit.DistanceKm
}
