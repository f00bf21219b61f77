package assetbake

import (
	"errors"
	"testing"
)

func TestResultFailed(t *testing.T) {
	r := &Result{Task: "material"}
	if r.Failed() {
		t.Error("empty result should not be failed")
	}

	r.Errors = append(r.Errors, InputError{Path: "bad.mat", Err: errors.New("exit status 1")})
	if !r.Failed() {
		t.Error("result with errors should be failed")
	}
}

func TestInputErrorWrapping(t *testing.T) {
	cause := errors.New("exit status 1")
	e := InputError{Path: "bad.mat", Err: cause}

	if got, want := e.Error(), "bad.mat: exit status 1"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(e, cause) {
		t.Error("InputError should unwrap to its cause")
	}
}
