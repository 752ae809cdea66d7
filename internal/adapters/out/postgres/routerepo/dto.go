// Package routerepo persists pick routes, one row per outbound order.
package routerepo

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/route"

	"github.com/google/uuid"
)

type PickRouteDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_pick_routes_order"`
	LayoutID        uuid.UUID   `gorm:"type:uuid;not null;index:idx_pick_routes_layout_computed,priority:1"`
	Strategy        string      `gorm:"type:varchar(32);not null"`
	Sequence        []uuid.UUID `gorm:"type:jsonb;not null;serializer:json"`
	TotalDistance   float64     `gorm:"not null"`
	EstimatedTimeMs int64       `gorm:"column:estimated_time_ms;not null"`
	ComputedAt      time.Time   `gorm:"not null;index:idx_pick_routes_layout_computed,priority:2"`
}

func (PickRouteDTO) TableName() string {
	return "pick_routes"
}

func fromDomain(r *route.PickRoute) PickRouteDTO {
	sequence := make([]uuid.UUID, 0, r.BinCount())
	for _, binID := range r.Sequence() {
		sequence = append(sequence, binID.Bytes())
	}

	return PickRouteDTO{
		ID:              r.ID().Bytes(),
		OrderID:         r.OrderID().Bytes(),
		LayoutID:        r.LayoutID().Bytes(),
		Strategy:        r.Strategy().String(),
		Sequence:        sequence,
		TotalDistance:   r.TotalDistance(),
		EstimatedTimeMs: r.EstimatedTime().Milliseconds(),
		ComputedAt:      r.ComputedAt(),
	}
}

func toDomain(dto PickRouteDTO) (*route.PickRoute, error) {
	id, idErr := kernel.UUIDFromBytes(dto.ID[:])
	orderID, orderErr := kernel.UUIDFromBytes(dto.OrderID[:])
	layoutID, layoutErr := kernel.UUIDFromBytes(dto.LayoutID[:])
	strategy, strategyErr := route.ParseStrategy(dto.Strategy)
	if err := errors.Join(idErr, orderErr, layoutErr, strategyErr); err != nil {
		return nil, err
	}

	sequence := make([]kernel.UUID, 0, len(dto.Sequence))
	for _, raw := range dto.Sequence {
		binID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, binID)
	}

	return route.NewPickRoute(
		id, orderID, layoutID, strategy, sequence,
		dto.TotalDistance,
		time.Duration(dto.EstimatedTimeMs)*time.Millisecond,
		dto.ComputedAt,
	)
}
