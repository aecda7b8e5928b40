package services

import (
	"sync"
	"time"
)

// IDSource hands out millisecond-timestamp ids. Two ids requested in the
// same millisecond get consecutive values instead of colliding.
type IDSource struct {
	mutex sync.Mutex
	last  int64
	now   func() time.Time
}

// NewIDSource returns a source driven by the wall clock.
func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// Next returns an id greater than every id returned before.
func (s *IDSource) Next() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

var defaultIDs = NewIDSource()
