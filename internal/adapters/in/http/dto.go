package http

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Size struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

type GridSpec struct {
	Rows   int `json:"rows"`
	Cols   int `json:"cols"`
	Levels int `json:"levels"`
}

type CapacitySpec struct {
	MaxWeight decimal.Decimal `json:"maxWeight"`
	MaxItems  int64           `json:"maxItems"`
}

func (p Point) toDomain() (kernel.Position, error) {
	return kernel.NewPosition(p.X, p.Y, p.Z)
}

func (s Size) toDomain() (kernel.Dimensions, error) {
	return kernel.NewDimensions(s.Width, s.Depth, s.Height)
}

func (g GridSpec) toDomain() (location.Grid, error) {
	return location.NewGrid(g.Rows, g.Cols, g.Levels)
}

func (c *CapacitySpec) toDomain() (location.Capacity, error) {
	if c == nil {
		return location.Capacity{}, nil
	}
	return location.NewCapacity(c.MaxWeight, c.MaxItems)
}

func pointOf(p kernel.Position) Point {
	return Point{X: p.X(), Y: p.Y(), Z: p.Z()}
}

func sizeOf(d kernel.Dimensions) Size {
	return Size{Width: d.Width(), Depth: d.Depth(), Height: d.Height()}
}

func idOf(id kernel.UUID) uuid.UUID {
	return id.Bytes()
}

func optionalIDOf(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	u := id.Bytes()
	return &u
}

func toKernelID(u uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(u[:])
}

func toOptionalKernelID(u *uuid.UUID) (*kernel.UUID, error) {
	if u == nil {
		return nil, nil
	}
	id, err := toKernelID(*u)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// placement is the geometry shared by every node creation request.
type placement struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Position   Point  `json:"position"`
	Dimensions Size   `json:"dimensions"`
}

func (p placement) geometry() (kernel.Position, kernel.Dimensions, error) {
	pos, posErr := p.Position.toDomain()
	dims, dimsErr := p.Dimensions.toDomain()
	if err := errors.Join(posErr, dimsErr); err != nil {
		return kernel.Position{}, kernel.Dimensions{}, err
	}
	return pos, dims, nil
}

type CreateLayoutRequest struct {
	Name       string `json:"name"`
	Dimensions Size   `json:"dimensions"`
}

type CreateZoneRequest struct {
	Name      string  `json:"name"`
	Sequence  int     `json:"sequence"`
	Origin    Point   `json:"origin"`
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	Reference Point   `json:"reference"`
}

type CreateAreaRequest struct {
	placement
}

type CreateShelfRequest struct {
	placement
	Grid        *GridSpec     `json:"grid,omitempty"`
	BinCapacity *CapacitySpec `json:"binCapacity,omitempty"`
}

type CreateBinRequest struct {
	placement
	Capacity *CapacitySpec `json:"capacity,omitempty"`
}

type ResizeShelfRequest struct {
	Dimensions  Size          `json:"dimensions"`
	Grid        GridSpec      `json:"grid"`
	BinCapacity *CapacitySpec `json:"binCapacity,omitempty"`
}

type RelocateBinRequest struct {
	ShelfID    *uuid.UUID `json:"shelfId,omitempty"`
	Position   Point      `json:"position"`
	Dimensions Size       `json:"dimensions"`
}

type SetBinBlockedRequest struct {
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason"`
}

type RecordMovementRequest struct {
	ProductID        uuid.UUID       `json:"productId"`
	Quantity         decimal.Decimal `json:"quantity"`
	SourceBinID      *uuid.UUID      `json:"sourceBinId,omitempty"`
	DestinationBinID uuid.UUID       `json:"destinationBinId"`
	Type             string          `json:"type"`
	OccurredAt       *time.Time      `json:"occurredAt,omitempty"`
	OrderRef         *uuid.UUID      `json:"orderRef,omitempty"`
}

type OptimizeRouteRequest struct {
	Strategy string `json:"strategy"`
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

type CreatedShelf struct {
	ID     uuid.UUID   `json:"id"`
	BinIDs []uuid.UUID `json:"binIds"`
}

type BinIDs struct {
	BinIDs []uuid.UUID `json:"binIds"`
}

func idsOf(ids []kernel.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}
