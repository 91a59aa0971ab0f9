package domain

import (
	"context"
	"time"
)

// TrackPoint is a single recorded position fix.
type TrackPoint struct {
	Timestamp  time.Time `boltholdIndex:"Timestamp" json:"timestamp"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Altitude   float64   `json:"altitude"`
	Speed      float64   `json:"speed"`
	Course     float64   `json:"course"`
	FixQuality int       `json:"fix_quality"`
	Satellites int       `json:"satellites"`
	HDOP       float64   `json:"hdop"`
}

type TrackRepository interface {
	Insert(ctx context.Context, point *TrackPoint) error
	Recent(ctx context.Context, limit int) ([]TrackPoint, error)
	All(ctx context.Context) ([]TrackPoint, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
