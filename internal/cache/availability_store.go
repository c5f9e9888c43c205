package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/CarePulseLabs/clinic-scheduler/internal/domain/availability"
	"github.com/CarePulseLabs/clinic-scheduler/internal/logger"
)

const (
	weekTTL = 10 * time.Minute

	// How long after a save the undo affordance stays alive.
	snapshotTTL = 5 * time.Minute
)

// AvailabilityStore keeps two things in redis per doctor: the cached
// persisted week (read path) and the pre-save snapshot backing undo.
// Every operation is best-effort; a cache failure never fails a request.
type AvailabilityStore struct {
	rdb *redis.Client
}

func NewAvailabilityStore(rdb *redis.Client) *AvailabilityStore {
	return &AvailabilityStore{rdb: rdb}
}

func weekKey(doctorID uint) string {
	return fmt.Sprintf("availability:week:%d", doctorID)
}

func snapshotKey(doctorID uint) string {
	return fmt.Sprintf("availability:snapshot:%d", doctorID)
}

func (s *AvailabilityStore) GetWeek(ctx context.Context, doctorID uint) ([]availability.DayAvailability, bool) {
	return s.get(ctx, weekKey(doctorID))
}

func (s *AvailabilityStore) SetWeek(ctx context.Context, doctorID uint, days []availability.DayAvailability) {
	s.set(ctx, weekKey(doctorID), days, weekTTL)
}

func (s *AvailabilityStore) InvalidateWeek(ctx context.Context, doctorID uint) {
	if err := s.rdb.Del(ctx, weekKey(doctorID)).Err(); err != nil {
		logger.Get().Warn("availability cache invalidate failed", zap.Uint("doctor_id", doctorID), zap.Error(err))
	}
}

func (s *AvailabilityStore) PutSnapshot(ctx context.Context, doctorID uint, days []availability.DayAvailability) {
	s.set(ctx, snapshotKey(doctorID), days, snapshotTTL)
}

func (s *AvailabilityStore) GetSnapshot(ctx context.Context, doctorID uint) ([]availability.DayAvailability, bool) {
	return s.get(ctx, snapshotKey(doctorID))
}

func (s *AvailabilityStore) get(ctx context.Context, key string) ([]availability.DayAvailability, bool) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Get().Warn("availability cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var days []availability.DayAvailability
	if err := json.Unmarshal(raw, &days); err != nil {
		logger.Get().Warn("availability cache decode failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return days, true
}

func (s *AvailabilityStore) set(ctx context.Context, key string, days []availability.DayAvailability, ttl time.Duration) {
	raw, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		logger.Get().Warn("availability cache write failed", zap.String("key", key), zap.Error(err))
	}
}
