package testenv

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunID returns a random identifier tagging one bootstrap run.
func RunID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		// Extremely rare; fall back to something unique-ish.
		return fmt.Sprintf("run-%d", time.Now().UTC().UnixNano())
	}
	return "run-" + id.String()
}
