package match

import (
	"errors"
	"fmt"

	"github.com/ib-77/vary/pkg/vary"
)

// ErrExhausted reports that no branch, pattern, or default applied to the
// subject. It is the only failure the engine itself produces, and it is
// reported before any branch result is computed.
var ErrExhausted = errors.New("match: no branch matched")

// errNoBranch is the internal sentinel for "no branch at this nesting level".
// Each recursive mapped-match call catches it and retries against its own
// default, so default resolution stays lexically scoped to the nearest
// enclosing specification. Only the outermost entry translates it into
// ErrExhausted.
var errNoBranch = errors.New("match: no local branch")

// Case is one pattern/result pair of the chained form. A Case whose When is
// nil is the unconditional default and must be the trailing case; test for a
// nil subject with Any plus a predicate, or with a Pred. Then is either a
// literal result or a func(any) any computing one from the candidate.
type Case struct {
	When any
	Then any
}

// Cases is the ordered chained form: the first matching pair wins.
type Cases []Case

// When builds a pattern/result pair.
func When(pattern, result any) Case {
	return Case{When: pattern, Then: result}
}

// Otherwise builds the trailing unconditional default.
func Otherwise(result any) Case {
	return Case{Then: result}
}

// Branches is the mapped form: result branches keyed by variant tag, with
// vary.TagDefault as the optional fallback. A branch value is a func(any) any
// taking the unwrapped payload, a literal result, or a nested Branches/Cases
// specification dispatching on the payload. Keys of both container families
// may share one specification; a subject only ever reaches its own family's
// tags, and a subject that is no container at all reaches only the default.
type Branches map[vary.Tag]any

// Match finds the first branch of spec (a Cases or Branches value) applying
// to subject and returns its computed result. Pattern testing is always
// synchronous; a branch result that is itself a deferred value flows through
// unchanged. With no applicable branch and no default, Match reports
// ErrExhausted.
func Match(subject, spec any) (any, error) {
	out, err := eval(subject, spec)
	if errors.Is(err, errNoBranch) {
		return nil, ErrExhausted
	}
	return out, err
}

// MustMatch is Match, panicking on failure.
func MustMatch(subject, spec any) any {
	out, err := Match(subject, spec)
	if err != nil {
		panic(err)
	}
	return out
}

func eval(subject, spec any) (any, error) {
	switch s := spec.(type) {
	case Cases:
		return evalCases(subject, s)
	case Branches:
		return evalBranches(subject, s)
	}
	return nil, fmt.Errorf("match: invalid specification of type %T", spec)
}

func evalCases(subject any, cases Cases) (any, error) {
	for i, c := range cases {
		if c.When == nil {
			if i != len(cases)-1 {
				return nil, fmt.Errorf("match: default case at position %d is not last", i)
			}
			return resolve(c.Then, subject), nil
		}
		if Matches(c.When, subject) {
			return resolve(c.Then, subject), nil
		}
	}
	return nil, errNoBranch
}

func evalBranches(subject any, branches Branches) (any, error) {
	v, ok := subject.(vary.Variant)
	if !ok {
		// A subject with no tag at all is the limiting case of "tag absent
		// from the specification": only the default can apply.
		return evalDefault(subject, branches)
	}

	if branch, ok := branches[v.Tag()]; ok {
		payload, _ := v.Payload()
		switch nested := branch.(type) {
		case Cases, Branches:
			out, err := eval(payload, nested)
			if errors.Is(err, errNoBranch) {
				return evalDefault(subject, branches)
			}
			return out, err
		default:
			return resolve(branch, payload), nil
		}
	}
	return evalDefault(subject, branches)
}

// evalDefault applies this level's fallback. The default receives the
// still-wrapped subject of its own nesting level, not an unwrapped payload.
func evalDefault(subject any, branches Branches) (any, error) {
	def, ok := branches[vary.TagDefault]
	if !ok {
		return nil, errNoBranch
	}
	return resolve(def, subject), nil
}

func resolve(result, arg any) any {
	if f, ok := result.(func(any) any); ok {
		return f(arg)
	}
	return result
}
