package swpll

// LockStatus is the lock state reported by a Controller.
type LockStatus int8

const (
	// UnlockedLow means the recovered clock is below the lockable range and
	// the divider is pinned at the bottom of the lookup table.
	UnlockedLow LockStatus = -1
	Locked      LockStatus = 0
	// UnlockedHigh means the recovered clock is above the lockable range.
	UnlockedHigh LockStatus = 1
)

func (s LockStatus) String() string {
	switch s {
	case UnlockedLow:
		return "UNLOCKED LOW"
	case Locked:
		return "LOCKED"
	case UnlockedHigh:
		return "UNLOCKED HIGH"
	}
	return "UNKNOWN"
}

// Monitor tracks the last reported LockStatus. The zero value starts out
// Locked, as a freshly initialised PLL reports.
type Monitor struct {
	status LockStatus
}

// Status returns the last status passed to Update.
func (m *Monitor) Status() LockStatus { return m.status }

// Update records s and reports whether it differs from the previous status.
func (m *Monitor) Update(s LockStatus) (changed bool) {
	if s == m.status {
		return false
	}
	m.status = s
	return true
}
