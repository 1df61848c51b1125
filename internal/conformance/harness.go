// Package conformance binds the schema store, the validator cache and the
// three validation modes into a suite that checks documents for equal verdicts.
package conformance

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-covjson/internal/schema"
	"github.com/goliatone/go-covjson/internal/validation"
	"github.com/goliatone/go-covjson/schemas"
)

// ErrModeDisagreement reports a document accepted by some modes and rejected by others.
var ErrModeDisagreement = errors.New("conformance: validation modes disagree")

// Suite validates documents against store schemas in any mode.
type Suite struct {
	Store *schema.Store
	Cache *validation.Cache
}

// NewSuite returns a suite compiling validators from store on demand.
func NewSuite(store *schema.Store, opts ...validation.CompileOption) *Suite {
	return &Suite{
		Store: store,
		Cache: validation.NewCache(store, opts...),
	}
}

var defaultSuite = sync.OnceValues(func() (*Suite, error) {
	store, err := schemas.Load()
	if err != nil {
		return nil, err
	}
	return NewSuite(store), nil
})

// DefaultSuite returns the process-wide suite over the embedded schema set.
// Validators compiled through it are shared by every caller.
func DefaultSuite() (*Suite, error) {
	return defaultSuite()
}

// Validator returns the cached validator for id in mode.
func (s *Suite) Validator(mode validation.Mode, id string) (*validation.Validator, error) {
	return s.Cache.Validator(mode, id)
}

// Check validates doc against id in mode. A nil error means the document is valid.
func (s *Suite) Check(mode validation.Mode, id string, doc any) error {
	validator, err := s.Validator(mode, id)
	if err != nil {
		return err
	}
	return validator.Validate(doc)
}

// Verdict is the outcome of validating one document in one mode.
type Verdict struct {
	Mode validation.Mode
	Err  error
}

// Valid reports whether the mode accepted the document.
func (v Verdict) Valid() bool { return v.Err == nil }

// Verdicts validates doc against id in every mode. Compile failures abort the run.
func (s *Suite) Verdicts(id string, doc any) ([]Verdict, error) {
	verdicts := make([]Verdict, 0, len(validation.Modes))
	for _, mode := range validation.Modes {
		validator, err := s.Validator(mode, id)
		if err != nil {
			return nil, err
		}
		verdicts = append(verdicts, Verdict{Mode: mode, Err: validator.Validate(doc)})
	}
	return verdicts, nil
}

// Agree validates doc in every mode and returns the shared verdict. When the
// modes disagree the error matches ErrModeDisagreement and lists each verdict.
func (s *Suite) Agree(id string, doc any) (bool, error) {
	verdicts, err := s.Verdicts(id, doc)
	if err != nil {
		return false, err
	}
	valid := verdicts[0].Valid()
	for _, verdict := range verdicts[1:] {
		if verdict.Valid() != valid {
			return false, disagreement(id, verdicts)
		}
	}
	return valid, nil
}

func disagreement(id string, verdicts []Verdict) error {
	parts := make([]string, 0, len(verdicts))
	for _, verdict := range verdicts {
		if verdict.Valid() {
			parts = append(parts, fmt.Sprintf("%s=valid", verdict.Mode))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=invalid (%v)", verdict.Mode, verdict.Err))
	}
	return fmt.Errorf("%w: %s: %s", ErrModeDisagreement, id, strings.Join(parts, ", "))
}
