package models

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel targets for errors.Is checks across the error taxonomy.
var (
	ErrLoad              = errors.New("feed load failed")
	ErrInvalidOdds       = errors.New("invalid odds")
	ErrMissingDispersion = errors.New("missing dispersion")
	ErrFetchExhausted    = errors.New("fetch retries exhausted")
)

// LoadError reports a structurally invalid feed: missing required columns or
// a malformed row. Load errors abort the run.
type LoadError struct {
	Source  string
	Missing []string
	Err     error
}

func (e *LoadError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s: missing required columns: %s", e.Source, strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
	return e.Source + ": load failed"
}

func (e *LoadError) Unwrap() error { return ErrLoad }

// InvalidOddsError reports an unparseable or degenerate odds value.
type InvalidOddsError struct {
	Raw    string
	Reason string
}

func (e *InvalidOddsError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid odds %q: %s", e.Raw, e.Reason)
	}
	return "invalid odds: " + e.Reason
}

func (e *InvalidOddsError) Unwrap() error { return ErrInvalidOdds }

// MissingDispersionError reports that no usable stdev exists for a market, so
// a projection probability cannot be computed.
type MissingDispersionError struct {
	Market Market
}

func (e *MissingDispersionError) Error() string {
	return fmt.Sprintf("no usable stdev for market %s", e.Market)
}

func (e *MissingDispersionError) Unwrap() error { return ErrMissingDispersion }

// FetchExhaustedError reports that the external odds fetch failed after all
// retry attempts. The pipeline treats it as a hard stop for the run.
type FetchExhaustedError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchExhaustedError) Error() string {
	return fmt.Sprintf("fetch %s failed after %d attempts: %v", e.URL, e.Attempts, e.Err)
}

func (e *FetchExhaustedError) Unwrap() error { return ErrFetchExhausted }

// Unavailable reports whether err is a per-row probability error that should
// surface as "edge unavailable" rather than aborting the run.
func Unavailable(err error) bool {
	return errors.Is(err, ErrInvalidOdds) || errors.Is(err, ErrMissingDispersion)
}
