package rules

import (
	"fmt"
	"slices"

	"github.com/blang/semver/v4"
	json "github.com/goccy/go-json"

	"github.com/signadot/jsonlens/format"
)

// Version is a schema version with the rules that migrate a message into
// it from the previous version.
type Version struct {
	Version semver.Version `json:"version"`
	RuleSet RuleSet        `json:"ruleSet"`
}

// Migrate moves msg from version from to version to. Upgrading runs the
// migration rules of every version after from up to and including to, in
// ascending order. Downgrading runs the versions after to up to and
// including from, in descending order.
func Migrate(versions []Version, from, to semver.Version, msg any) (any, error) {
	vs := slices.Clone(versions)
	slices.SortFunc(vs, func(a, b Version) int { return a.Version.Compare(b.Version) })
	if !hasVersion(vs, from) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVersion, from)
	}
	if !hasVersion(vs, to) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVersion, to)
	}
	switch from.Compare(to) {
	case 0:
		return msg, nil
	case -1:
		for i := range vs {
			v := &vs[i]
			if v.Version.LTE(from) || v.Version.GT(to) {
				continue
			}
			res, err := Execute(&v.RuleSet, Upgrade, msg)
			if err != nil {
				return nil, fmt.Errorf("upgrading to %s: %w", v.Version, err)
			}
			msg = res
		}
	default:
		for i := len(vs) - 1; i >= 0; i-- {
			v := &vs[i]
			if v.Version.LTE(to) || v.Version.GT(from) {
				continue
			}
			res, err := Execute(&v.RuleSet, Downgrade, msg)
			if err != nil {
				return nil, fmt.Errorf("downgrading from %s: %w", v.Version, err)
			}
			msg = res
		}
	}
	return msg, nil
}

func hasVersion(vs []Version, v semver.Version) bool {
	for i := range vs {
		if vs[i].Version.EQ(v) {
			return true
		}
	}
	return false
}

// ParseVersions decodes a list of versions in the given format.
func ParseVersions(d []byte, f format.Format) ([]Version, error) {
	d, err := f.ToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuleParse, err)
	}
	var vs []Version
	if err := json.Unmarshal(d, &vs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRuleParse, err)
	}
	return vs, nil
}
