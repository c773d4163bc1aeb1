// Package a11y holds the error and advisory types shared by every widget:
// fatal configuration errors raised at setup, and non-fatal advisories that
// are reported on a side channel without changing behaviour.
package a11y

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/atomicstack/composite-widgets/internal/logging/events"
)

// ErrConfiguration matches every ConfigError through errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigError reports a caller contract violation detected at setup.
type ConfigError struct {
	Widget string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: invalid %s: %s", e.Widget, e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// Advisory codes.
const (
	CodeRedundantProp        = "redundant-prop"
	CodeConflictingProp      = "conflicting-prop"
	CodeMissingName          = "missing-accessible-name"
	CodeMissingControls      = "indeterminate-without-controls"
	CodeControlledAndDefault = "controlled-and-default"
)

// Advisory is a non-fatal warning about widget configuration.
type Advisory struct {
	Widget string
	Code   string
	Detail string
}

// Advisor receives advisories.
type Advisor func(Advisory)

// LogAdvisor writes advisories to the shared log.
func LogAdvisor(a Advisory) {
	events.Advisory.Warn(a.Widget, a.Code, a.Detail)
}

// Report sends a to advisor, falling back to LogAdvisor.
func Report(advisor Advisor, a Advisory) {
	if advisor == nil {
		advisor = LogAdvisor
	}
	advisor(a)
}

var labelToken = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)

// ValidateLabel checks a label descriptor: a whitespace separated list of
// element ids. An empty descriptor is valid and means "no reference".
func ValidateLabel(widget, desc string) error {
	if desc == "" {
		return nil
	}
	tokens := strings.Fields(desc)
	if len(tokens) == 0 {
		return &ConfigError{Widget: widget, Field: "label", Reason: "descriptor is blank"}
	}
	for _, tok := range tokens {
		if !labelToken.MatchString(tok) {
			return &ConfigError{Widget: widget, Field: "label", Reason: fmt.Sprintf("malformed id reference %q", tok)}
		}
	}
	return nil
}
