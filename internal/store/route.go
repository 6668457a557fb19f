package store

import (
	"fmt"
	"log"

	"github.com/scslimpo/hotspots-backend-go/internal/engine"
	"github.com/scslimpo/hotspots-backend-go/internal/metrics"
	"github.com/scslimpo/hotspots-backend-go/internal/models"
)

// CreateRoute plans a route over the caller-ordered hotspot selection.
// Visited cells are marked in_service in the persisted overlay, so the
// status survives the next aggregation pass; the current hotspot snapshot
// is updated in place as well.
func (s *Store) CreateRoute(hotspotIDs []string, requesterID string) (models.Route, error) {
	if requesterID == "" {
		requesterID = "operator"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	route, gridKeys := engine.BuildRoute(hotspotIDs, s.hotspots, requesterID, s.now())
	s.routes = append(s.routes, route)
	metrics.RoutesCreatedTotal.Inc()

	for _, key := range gridKeys {
		s.cellStatus[key] = models.CellInService
	}
	for i := range s.hotspots {
		if s.cellStatus[s.hotspots[i].GridKey] == models.CellInService {
			s.hotspots[i].Status = models.CellInService
		}
	}

	log.Printf("[store] route %s created with %d stops", route.ID, len(route.Stops))
	return route, nil
}

// routeTransitions enumerates the legal route status moves
var routeTransitions = map[models.RouteStatus][]models.RouteStatus{
	models.RoutePlanned:    {models.RouteInProgress, models.RouteCanceled},
	models.RouteInProgress: {models.RouteCompleted, models.RouteCanceled},
}

// UpdateRouteStatus applies a state-machine transition. Completed and
// canceled are terminal. Completing a route marks its visited cells
// cleaned in the overlay.
func (s *Store) UpdateRouteStatus(id string, status models.RouteStatus) (models.Route, error) {
	if !models.ValidRouteStatus(status) {
		return models.Route{}, fmt.Errorf("%w: unknown route status %q", ErrInvalidInput, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var route *models.Route
	for i := range s.routes {
		if s.routes[i].ID == id {
			route = &s.routes[i]
			break
		}
	}
	if route == nil {
		return models.Route{}, fmt.Errorf("route %s: %w", id, ErrNotFound)
	}

	allowed := false
	for _, next := range routeTransitions[route.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.Route{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, route.Status, status)
	}

	now := s.now()
	route.Status = status
	switch status {
	case models.RouteInProgress:
		route.StartedAt = &now
	case models.RouteCompleted:
		route.CompletedAt = &now
		for _, stop := range route.Stops {
			s.cellStatus[stop.GridKey] = models.CellCleaned
		}
		s.recomputeLocked()
	}

	return *route, nil
}
