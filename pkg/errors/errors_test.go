package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestGlassErrorString(t *testing.T) {
	err := New("config.Resolve", KindConfig, stderrors.New("unknown shape"))
	got := err.Error()
	if !strings.Contains(got, "config.Resolve") {
		t.Errorf("Error() = %q, missing op", got)
	}
	if !strings.Contains(got, "[config]") {
		t.Errorf("Error() = %q, missing kind", got)
	}
	if !strings.Contains(got, "unknown shape") {
		t.Errorf("Error() = %q, missing cause", got)
	}
}

func TestGlassErrorWithPath(t *testing.T) {
	err := NewPath("config.LoadScene", KindIO, "scene.yaml", stderrors.New("no such file"))
	got := err.Error()
	if !strings.Contains(got, "path=scene.yaml") {
		t.Errorf("Error() = %q, missing path", got)
	}
}

func TestGlassErrorUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := New("render.Encode", KindRender, cause)
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable through Unwrap")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindRender, "render"},
		{KindIO, "io"},
		{ErrorKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
