package eccerr

import (
	"errors"
	"testing"
)

func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidInput, "ErrInvalidInput"},
		{ErrInverseDoesNotExist, "ErrInverseDoesNotExist"},
		{ErrInconsistentResult, "ErrInconsistentResult"},
	}

	for i, test := range tests {
		if result := test.in.Error(); result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{Error{Description: "some error"}, "some error"},
		{Error{Description: "human-readable error"}, "human-readable error"},
	}

	for i, test := range tests {
		if result := test.in.Error(); result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidInput == ErrInvalidInput",
		err:       ErrInvalidInput,
		target:    ErrInvalidInput,
		wantMatch: true,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "Error.ErrInvalidInput == ErrInvalidInput",
		err:       New(ErrInvalidInput, ""),
		target:    ErrInvalidInput,
		wantMatch: true,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "Error.ErrInvalidInput == Error.ErrInvalidInput",
		err:       New(ErrInvalidInput, ""),
		target:    New(ErrInvalidInput, ""),
		wantMatch: true,
		wantAs:    ErrInvalidInput,
	}, {
		name:      "ErrInverseDoesNotExist != ErrInvalidInput",
		err:       ErrInverseDoesNotExist,
		target:    ErrInvalidInput,
		wantMatch: false,
		wantAs:    ErrInverseDoesNotExist,
	}, {
		name:      "Error.ErrInconsistentResult != ErrInvalidInput",
		err:       New(ErrInconsistentResult, ""),
		target:    ErrInvalidInput,
		wantMatch: false,
		wantAs:    ErrInconsistentResult,
	}}

	for _, test := range tests {
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
		}
	}
}
