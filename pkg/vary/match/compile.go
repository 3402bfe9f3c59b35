package match

import (
	"errors"
	"fmt"
)

// Matcher is a pre-validated specification closed over as a reusable
// function. Matching semantics are identical to calling Match fresh each
// time; only the specification walk is validated once up front.
type Matcher func(subject any) (any, error)

// Compile validates spec (a Cases or Branches value, recursively) and
// returns the reusable matcher for it.
func Compile(spec any) (Matcher, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}
	return func(subject any) (any, error) {
		out, err := eval(subject, spec)
		if errors.Is(err, errNoBranch) {
			return nil, ErrExhausted
		}
		return out, err
	}, nil
}

// MustCompile is Compile, panicking on an invalid specification.
func MustCompile(spec any) Matcher {
	m, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return m
}

func validate(spec any) error {
	switch s := spec.(type) {
	case Cases:
		return validateCases(s)
	case Branches:
		return validateBranches(s)
	}
	return fmt.Errorf("match: invalid specification of type %T", spec)
}

func validateCases(cases Cases) error {
	for i, c := range cases {
		// Only the trailing case may be the unconditional default; anything
		// after it is unreachable.
		if c.When == nil && i != len(cases)-1 {
			return fmt.Errorf("match: default case at position %d is not last", i)
		}
		if c.Then == nil {
			return fmt.Errorf("match: case at position %d has no result", i)
		}
	}
	return nil
}

func validateBranches(branches Branches) error {
	for tag, branch := range branches {
		if branch == nil {
			return fmt.Errorf("match: branch %q has no result", tag)
		}
		switch branch.(type) {
		case Cases, Branches:
			if err := validate(branch); err != nil {
				return err
			}
		}
	}
	return nil
}
