package storage

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/timshannon/bolthold"

	"github.com/kibi-sigz/zed-f9p-gnss-viewer/internal/domain"
)

type trackRepository struct {
	store     *bolthold.Store
	maxPoints int
}

// NewTrackRepository wraps store as a position history repository. A
// maxPoints of zero or less disables pruning.
func NewTrackRepository(store *bolthold.Store, maxPoints int) domain.TrackRepository {
	return &trackRepository{store: store, maxPoints: maxPoints}
}

func (r *trackRepository) Insert(ctx context.Context, point *domain.TrackPoint) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.store.Insert(point.Timestamp.UnixNano(), point); err != nil {
		return fmt.Errorf("inserting track point: %w", err)
	}
	return r.prune()
}

// prune removes the oldest points beyond the history limit.
func (r *trackRepository) prune() error {
	if r.maxPoints <= 0 {
		return nil
	}

	count, err := r.store.Count(&domain.TrackPoint{}, nil)
	if err != nil {
		return fmt.Errorf("counting track points: %w", err)
	}
	excess := count - r.maxPoints
	if excess <= 0 {
		return nil
	}

	var oldest []domain.TrackPoint
	err = r.store.Find(&oldest, bolthold.Where("Timestamp").Ge(time.Time{}).SortBy("Timestamp").Limit(excess))
	if err != nil {
		return fmt.Errorf("finding oldest track points: %w", err)
	}
	for _, point := range oldest {
		if err := r.store.Delete(point.Timestamp.UnixNano(), &domain.TrackPoint{}); err != nil {
			return fmt.Errorf("pruning track point: %w", err)
		}
	}

	log.WithFields(log.Fields{
		"component": "track_store",
		"removed":   len(oldest),
		"limit":     r.maxPoints,
	}).Debug("pruned position history")
	return nil
}

func (r *trackRepository) Recent(ctx context.Context, limit int) ([]domain.TrackPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return r.All(ctx)
	}

	var points []domain.TrackPoint
	err := r.store.Find(&points, bolthold.Where("Timestamp").Ge(time.Time{}).SortBy("Timestamp").Reverse().Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("finding recent track points: %w", err)
	}
	if len(points) == 0 {
		return nil, domain.ErrNoTrackPoints
	}

	// The query returns newest first, callers expect ascending time.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

func (r *trackRepository) All(ctx context.Context) ([]domain.TrackPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var points []domain.TrackPoint
	err := r.store.Find(&points, bolthold.Where("Timestamp").Ge(time.Time{}).SortBy("Timestamp"))
	if err != nil {
		return nil, fmt.Errorf("finding track points: %w", err)
	}
	if len(points) == 0 {
		return nil, domain.ErrNoTrackPoints
	}
	return points, nil
}

func (r *trackRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count, err := r.store.Count(&domain.TrackPoint{}, nil)
	if err != nil {
		return 0, fmt.Errorf("counting track points: %w", err)
	}
	return count, nil
}

func (r *trackRepository) Close() error {
	return r.store.Close()
}
