package otp

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/renthub/internal/model"
	appErr "github.com/xxxsen/renthub/internal/pkg/errors"
)

const defaultCapacity = 10000

// Store keeps at most one passcode per email. All compound operations run
// under one mutex so that a verify never observes a record that a concurrent
// initiate or eviction is replacing.
//
// Once capacity is reached, a new email pushes out the least recently
// issued record even if it is still live; that user then gets an invalid
// code answer and has to request a new one.
type Store struct {
	mu        sync.Mutex
	items     *lru.Cache[string, model.OtpRecord]
	removed   *model.OtpRecord
	evictions int
}

func NewStore(capacity int) (*Store, error) {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	s := &Store{}
	items, err := lru.NewWithEvict[string, model.OtpRecord](capacity, s.onRemove)
	if err != nil {
		return nil, err
	}
	s.items = items
	return s, nil
}

// onRemove runs for every removal, explicit or not, while s.mu is held.
func (s *Store) onRemove(_ string, rec model.OtpRecord) {
	s.removed = &rec
}

// Put stores rec, replacing any previous record for the same email.
func (s *Store) Put(rec model.OtpRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = nil
	if !s.items.Add(rec.Email, rec) {
		return
	}
	s.evictions++
	fields := []zap.Field{zap.Int("capacity", s.items.Len()), zap.Int("evictions", s.evictions)}
	if old := s.removed; old != nil {
		fields = append(fields,
			zap.String("email", old.Email),
			zap.Bool("live", !old.Expired(time.Now())),
		)
	}
	logutil.GetLogger(context.Background()).Warn("otp store full, oldest record evicted", fields...)
}

// Evictions reports how many records were pushed out by capacity.
func (s *Store) Evictions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evictions
}

// Verify checks code against the record for email. A matching record past
// its expiry is evicted and reported as expired; later calls then see no
// record at all.
func (s *Store) Verify(email, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.items.Peek(email)
	if !ok || rec.Code != code {
		return appErr.ErrInvalidOtp
	}
	if rec.Expired(now) {
		s.items.Remove(email)
		return appErr.ErrOtpExpired
	}
	return nil
}

// CompareAndDelete removes the record for email only if it still holds code.
func (s *Store) CompareAndDelete(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.items.Peek(email)
	if !ok || rec.Code != code {
		return false
	}
	s.items.Remove(email)
	return true
}

func (s *Store) Get(email string) (model.OtpRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Peek(email)
}

// Sweep drops records that expired more than grace before now and returns
// how many were removed.
func (s *Store) Sweep(now time.Time, grace time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-grace)
	removed := 0
	for _, email := range s.items.Keys() {
		rec, ok := s.items.Peek(email)
		if !ok {
			continue
		}
		if rec.Expired(cutoff) {
			s.items.Remove(email)
			removed++
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items.Len()
}
