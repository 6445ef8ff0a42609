package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIterationCapError_Message(t *testing.T) {
	err := &IterationCapError{
		Target:     3,
		Iterations: iterationCapDays,
		Cursor:     utcDay(2028, time.January, 5),
	}
	msg := err.Error()
	assert.Contains(t, msg, "730")
	assert.Contains(t, msg, "2028-01-05")
}
