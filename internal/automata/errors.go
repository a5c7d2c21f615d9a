package automata

import (
	"errors"
	"fmt"
	"strconv"
)

// Parse error kinds. A *ParseError unwraps to exactly one of these.
var (
	ErrFieldCount    = errors.New("wrong number of fields")
	ErrBadInteger    = errors.New("malformed integer")
	ErrUnknownTag    = errors.New("unknown field tag")
	ErrOutOfRange    = errors.New("value out of range")
	ErrBadToken      = errors.New("unrecognized token")
	ErrUnknownFamily = errors.New("unknown automaton family")
)

// ParseError describes why a rule string could not be turned into an
// automaton.
type ParseError struct {
	Family Family
	Rules  string
	// Field is the offending field or token, empty when the error concerns
	// the string as a whole.
	Field  string
	Kind   error
	Detail string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s rule %q", e.Family, e.Rules)
	if e.Field != "" {
		msg += fmt.Sprintf(": field %q", e.Field)
	}
	msg += ": " + e.Kind.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Kind }

// parser accumulates the family and source text so each rule file can raise
// errors tersely.
type parser struct {
	family Family
	rules  string
}

func (p parser) fail(kind error, field, format string, args ...any) *ParseError {
	return &ParseError{
		Family: p.family,
		Rules:  p.rules,
		Field:  field,
		Kind:   kind,
		Detail: fmt.Sprintf(format, args...),
	}
}

// intIn parses s as a decimal integer in [lo, hi]. field names the token in
// errors.
func (p parser) intIn(field, s string, lo, hi int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.fail(ErrBadInteger, field, "%q is not an integer", s)
	}
	if v < lo || v > hi {
		return 0, p.fail(ErrOutOfRange, field, "%d not in [%d, %d]", v, lo, hi)
	}
	return v, nil
}

// digit parses a single decimal digit in [0, hi].
func (p parser) digit(field string, ch byte, hi int) (int, error) {
	if ch < '0' || ch > '9' {
		return 0, p.fail(ErrBadInteger, field, "%q is not a digit", ch)
	}
	v := int(ch - '0')
	if v > hi {
		return 0, p.fail(ErrOutOfRange, field, "%d exceeds %d", v, hi)
	}
	return v, nil
}
