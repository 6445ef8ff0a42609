package scheduling

import (
	"fmt"
	"time"
)

// IterationCapError is returned when a forward day-walk exceeds its safety
// cap. It indicates a data or configuration anomaly (for example a weekly
// pattern with no working days at all) and carries enough state to diagnose
// without reproducing the request.
type IterationCapError struct {
	Target     int       // days the walk was asked to accumulate
	Iterations int       // iterations performed before giving up
	Cursor     time.Time // zoned day the walk stopped on
}

func (e *IterationCapError) Error() string {
	return fmt.Sprintf("iteration cap exceeded: target %d days, %d iterations, cursor %s",
		e.Target, e.Iterations, e.Cursor.Format("2006-01-02"))
}
