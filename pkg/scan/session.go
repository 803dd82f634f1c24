package scan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"nutriscan-api/domain"
)

const (
	stateIdle     = "Idle"
	stateScanning = "Scanning"
	stateStopped  = "Stopped"
)

// Session wraps a Detector as a cancellable asynchronous operation yielding
// at most one detection. The underlying capture is stopped before the result
// is surfaced, so duplicate frames for one physical barcode placement never
// produce a second event.
type Session struct {
	detector Detector
	timeout  time.Duration

	mu     sync.Mutex
	state  string
	once   sync.Once
	result chan Detection
}

func NewSession(detector Detector, timeout time.Duration) *Session {
	return &Session{
		detector: detector,
		timeout:  timeout,
		state:    stateIdle,
		result:   make(chan Detection, 1),
	}
}

// Start initializes and starts the detector. Init or start failure leaves the
// session stopped; retrying is the caller's decision.
func (s *Session) Start() error {
	s.mu.Lock()
	if s.state != stateIdle {
		s.mu.Unlock()
		return domain.ErrScanInProgress
	}
	s.state = stateScanning
	s.mu.Unlock()

	s.detector.Subscribe(func(d Detection) {
		if d.Code == "" {
			return
		}
		s.once.Do(func() {
			// Stop capture before surfacing the result.
			_ = s.detector.Stop()
			s.setState(stateStopped)
			s.result <- d
		})
	})

	if err := s.detector.Init(DefaultDetectorConfig()); err != nil {
		s.setState(stateStopped)
		return fmt.Errorf("%w: %v", domain.ErrScanInitFailed, err)
	}
	if err := s.detector.Start(); err != nil {
		s.setState(stateStopped)
		return fmt.Errorf("%w: %v", domain.ErrScanInitFailed, err)
	}
	return nil
}

// Wait blocks until the single detection, caller cancellation, or the session
// deadline. Timeout and cancellation both release the capture.
func (s *Session) Wait(ctx context.Context) (Detection, error) {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case d := <-s.result:
		return d, nil
	case <-ctx.Done():
		s.Cancel()
		return Detection{}, domain.ErrScanCancelled
	case <-timer.C:
		s.Cancel()
		return Detection{}, domain.ErrScanTimeout
	}
}

// Cancel stops the capture and releases the camera unconditionally. Safe to
// call more than once and after a detection has already landed.
func (s *Session) Cancel() {
	s.once.Do(func() {
		_ = s.detector.Stop()
	})
	s.setState(stateStopped)
}

// Detector exposes the underlying capture so transports can feed it.
func (s *Session) Detector() Detector {
	return s.detector
}

func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateScanning
}

func (s *Session) setState(state string) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
