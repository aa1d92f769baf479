package appointments

import "sync"

// InFlight tracks which appointment each status action is currently running
// for. It never blocks a second submission; Begin only reports it.
type InFlight struct {
	mu      sync.Mutex
	current map[string]string
	pending map[string]int
}

func NewInFlight() *InFlight {
	return &InFlight{
		current: make(map[string]string),
		pending: make(map[string]int),
	}
}

// Begin marks appointmentID as in flight for action and reports whether a
// request for the same appointment was already running.
func (f *InFlight) Begin(action, appointmentID string) (duplicate bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	duplicate = f.pending[appointmentID] > 0
	f.pending[appointmentID]++
	f.current[action] = appointmentID
	return duplicate
}

// End releases appointmentID. The action's current id is cleared only if it
// still points at appointmentID.
func (f *InFlight) End(action, appointmentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.pending[appointmentID] <= 1 {
		delete(f.pending, appointmentID)
	} else {
		f.pending[appointmentID]--
	}
	if f.current[action] == appointmentID {
		delete(f.current, action)
	}
}

// runningFor returns the appointment id the action is running for, if any.
func (f *InFlight) runningFor(action string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current[action]
}

func (f *InFlight) isInFlight(appointmentID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending[appointmentID] > 0
}
