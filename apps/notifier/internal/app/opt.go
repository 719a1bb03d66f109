package app

import (
	"errors"
	"time"
)

type Option func(*Deliverer) error

// WithBatchSize specifies how many pending announcements are delivered per run.
func WithBatchSize(n int) Option {
	return func(d *Deliverer) error {
		if n >= 1 && n <= 100 {
			d.batchSize = n

			return nil
		}

		return errors.New("batch size must be gte 1 and lte 100")
	}
}

// WithLockTTL specifies how long the delivery lock is held at most.
func WithLockTTL(ttl time.Duration) Option {
	return func(d *Deliverer) error {
		if ttl >= time.Second*10 && ttl <= time.Minute*10 {
			d.lockTTL = ttl

			return nil
		}

		return errors.New("lock ttl must be gte 10 seconds and lte 10 minutes")
	}
}
