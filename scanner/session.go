package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/storescout/storescout/utils/logger"
	"go.uber.org/zap"
)

// Session is one scan attempt, created on screen focus and discarded on
// navigation away. All fields are owned by the session and guarded by
// its mutex; timer callbacks read state through the same lock at fire
// time, so there is no shadow copy of the torch flag to drift out of
// sync.
type Session struct {
	mu sync.Mutex

	camera Camera
	lookup Lookup
	nav    Navigator

	timeout     time.Duration
	symbologies map[string]struct{}

	status          Status
	cameraActive    bool
	scanningEnabled bool
	torchEnabled    bool
	frontFacing     bool

	// timerGen invalidates timers armed for an earlier Scanning entry;
	// a stale callback that lost the race with a transition is ignored
	timer    *time.Timer
	timerGen uint64
}

// NewSession wires a session to its collaborators. The session starts
// Idle; call Focus to begin scanning.
func NewSession(cfg Config, camera Camera, lookup Lookup, nav Navigator) *Session {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	symbologies := cfg.Symbologies
	if len(symbologies) == 0 {
		symbologies = defaultSymbologies
	}
	set := make(map[string]struct{}, len(symbologies))
	for _, s := range symbologies {
		set[s] = struct{}{}
	}

	return &Session{
		camera:      camera,
		lookup:      lookup,
		nav:         nav,
		timeout:     timeout,
		symbologies: set,
		status:      StatusIdle,
	}
}

// Focus activates the camera and arms scanning. Called on screen focus
// and on app foregrounding while the screen is focused.
func (s *Session) Focus() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanningEnabled {
		return
	}
	s.enterScanning()
}

// Blur deactivates the camera and cancels the timeout. Called on screen
// blur, navigation away and app backgrounding.
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelTimer()
	s.scanningEnabled = false
	if s.cameraActive {
		s.camera.Deactivate()
		s.cameraActive = false
	}
	s.status = StatusIdle
}

// HandleDecode feeds one decode event into the session. Only the first
// event after arming is accepted; the camera keeps decoding frames for
// the same gesture and every follow-up is dropped until the session
// re-arms on retry or re-focus.
func (s *Session) HandleDecode(ctx context.Context, symbology, barcode string) {
	s.mu.Lock()

	if !s.scanningEnabled {
		s.mu.Unlock()
		return
	}

	if _, ok := s.symbologies[symbology]; !ok {
		// Recoverable without a retry prompt: decoding stays armed and
		// the timeout window starts over.
		s.status = StatusUnsupported
		s.restartTimer()
		s.mu.Unlock()
		logger.Warn("unsupported barcode symbology", zap.String("symbology", symbology))
		return
	}

	s.scanningEnabled = false
	s.cancelTimer()
	s.status = StatusFound
	s.mu.Unlock()

	product, err := s.lookup.LookupByBarcode(ctx, barcode)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Torch state is deliberately untouched across the lookup so a
	// retry resumes with the flash exactly as the user left it.
	switch {
	case err != nil:
		logger.Error("barcode lookup failed", zap.String("barcode", barcode), zap.Error(err))
		s.status = StatusError
	case product == nil:
		s.status = StatusNotFound
	default:
		if s.cameraActive {
			s.camera.Deactivate()
			s.cameraActive = false
		}
		s.status = StatusIdle
		s.nav.GoToProduct(product)
	}
}

// Retry re-arms scanning after a NotFound, Error or timeout prompt.
// Torch state carries over unchanged.
func (s *Session) Retry() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusNotFound, StatusError:
		s.enterScanning()
	}
}

// ToggleTorch flips the flash. Allowed in any state with an active
// camera; the flag survives lookup round-trips and retry prompts.
func (s *Session) ToggleTorch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.torchEnabled = !s.torchEnabled
	s.camera.SetTorch(s.torchEnabled)
}

// ToggleFacing flips between the back and front camera
func (s *Session) ToggleFacing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.frontFacing = !s.frontFacing
	s.camera.SetFacing(s.frontFacing)
}

// Status returns the current session state
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// TorchEnabled reports the canonical torch flag
func (s *Session) TorchEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.torchEnabled
}

// enterScanning arms decoding and starts the timeout. Caller holds the lock.
func (s *Session) enterScanning() {
	if !s.cameraActive {
		s.camera.Activate()
		s.cameraActive = true
	}
	s.scanningEnabled = true
	s.status = StatusScanning
	s.restartTimer()
}

// restartTimer replaces any armed timer with a fresh one. Caller holds the lock.
func (s *Session) restartTimer() {
	s.cancelTimer()
	s.timerGen++
	gen := s.timerGen
	s.timer = time.AfterFunc(s.timeout, func() {
		s.onTimeout(gen)
	})
}

// cancelTimer stops the pending timeout if any. Caller holds the lock.
func (s *Session) cancelTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerGen++
}

func (s *Session) onTimeout(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.timerGen || !s.scanningEnabled {
		return
	}

	s.scanningEnabled = false
	s.timer = nil
	s.status = StatusNotFound
}
