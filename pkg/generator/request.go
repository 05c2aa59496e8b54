package generator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grovetools/readmegen/pkg/config"
)

var ErrInvalidRequest = errors.New("invalid generation request")

// Request holds everything needed for one generation.
type Request struct {
	ProjectName string
	Description string
	Language    string // optional; detected from Directory when empty and Scan is set
	License     string
	Scan        bool
	Directory   string
}

// Validate checks the request fields that every front end must provide.
func (r Request) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return fmt.Errorf("%w: project name is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidRequest)
	}
	if !config.IsKnownLicense(r.License) {
		return fmt.Errorf("%w: license %q must be one of %s", ErrInvalidRequest, r.License, strings.Join(config.Licenses, ", "))
	}
	return nil
}

// SaveError reports a failure writing the generated README.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save README to %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
