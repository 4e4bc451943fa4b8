package generator

import (
	"time"

	"github.com/hashicorp/go-uuid"
	"github.com/pkg/errors"
)

// Generator is responsible for randomly generating new strings and tokens
// that might need to be mocked out to produce consistent output for tests
type Generator struct{}

// New returns a new Generator
func New() *Generator {
	return &Generator{}
}

// Timestamp generates a timestamp of the current time
func (g *Generator) Timestamp() time.Time {
	return time.Now()
}

// UniqueID returns a new UUID, used to build unique CSV export filenames
func (g *Generator) UniqueID() (string, error) {
	generatedUUID, err := uuid.GenerateUUID()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate a UUID for the export filename")
	}
	return generatedUUID, nil
}
