package rules

import (
	"fmt"
	"strings"
)

// Mode is the direction a rule applies in.
type Mode string

const (
	Upgrade   Mode = "UPGRADE"
	Downgrade Mode = "DOWNGRADE"
	UpDown    Mode = "UPDOWN"
	Write     Mode = "WRITE"
	Read      Mode = "READ"
	WriteRead Mode = "WRITEREAD"
)

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(s))
	switch m {
	case Upgrade, Downgrade, UpDown, Write, Read, WriteRead:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrBadMode, s)
}

// Applies reports whether a rule declared with mode m runs when executing
// in the active mode.
func (m Mode) Applies(active Mode) bool {
	switch m {
	case UpDown:
		return active == Upgrade || active == Downgrade
	case WriteRead:
		return active == Write || active == Read
	}
	return m == active
}

// IsMigration reports whether m is one of the migration modes.
func (m Mode) IsMigration() bool {
	return m == Upgrade || m == Downgrade || m == UpDown
}

// reversed reports whether rules run last to first in mode m.
func (m Mode) reversed() bool {
	return m == Downgrade || m == Read
}

type Kind string

const (
	Transform Kind = "TRANSFORM"
	Condition Kind = "CONDITION"
)

// Rule names an executor and the expression it runs. An empty Kind
// accepts the kind of the executor.
type Rule struct {
	Name     string            `json:"name"`
	Doc      string            `json:"doc,omitempty"`
	Kind     Kind              `json:"kind"`
	Mode     Mode              `json:"mode"`
	Type     string            `json:"type"`
	Tags     []string          `json:"tags,omitempty"`
	Params   map[string]string `json:"params,omitempty"`
	Expr     string            `json:"expr"`
	Disabled bool              `json:"disabled,omitempty"`
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s(%s %s %s)", r.Name, r.Kind, r.Mode, r.Type)
}

type RuleSet struct {
	MigrationRules []Rule `json:"migrationRules,omitempty"`
	DomainRules    []Rule `json:"domainRules,omitempty"`
}

// RuleContext is passed to an executor for one rule invocation.
type RuleContext struct {
	Rule *Rule
	Mode Mode
}

// Param returns the named rule parameter.
func (rc *RuleContext) Param(name string) string {
	return rc.Rule.Params[name]
}
