package circuit_breaker

import "time"

// SetClock replaces the breaker clock in tests.
func SetClock(cb CircuitBreaker, now func() time.Time) {
	cb.(*circuitBreaker).now = now
}
