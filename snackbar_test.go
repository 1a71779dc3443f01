package tacit

import (
	"testing"
	"time"
)

func TestSnackbarShowAndDismiss(t *testing.T) {
	s := SnackbarUncontrolled()

	out, window := s.Show(LevelSuccess, "saved")
	if !out.Applied || !s.IsOpen() {
		t.Fatalf("Show = %+v open=%v", out, s.IsOpen())
	}
	if window != DefaultSnackbarDismiss {
		t.Errorf("dismiss window = %v, want default %v", window, DefaultSnackbarDismiss)
	}
	if s.Message() != "saved" || s.Level() != LevelSuccess {
		t.Errorf("message=%q level=%q", s.Message(), s.Level())
	}

	if out := s.Dismiss(); !out.Applied || s.IsOpen() {
		t.Errorf("Dismiss = %+v open=%v", out, s.IsOpen())
	}
}

func TestSnackbarShowReplacesMessage(t *testing.T) {
	s := SnackbarUncontrolled()
	s.Show(LevelInfo, "first")
	out, _ := s.Show(LevelWarning, "second")
	if out.Applied {
		t.Error("showing while visible must not re-apply the open flag")
	}
	if s.Message() != "second" || s.Level() != LevelWarning {
		t.Errorf("message=%q level=%q, want replacement", s.Message(), s.Level())
	}
}

func TestSnackbarAutoDismissWindow(t *testing.T) {
	s := SnackbarUncontrolled()
	s.SetAutoDismiss(10 * time.Second)
	if _, window := s.Show(LevelInfo, "hi"); window != 10*time.Second {
		t.Errorf("window = %v, want 10s", window)
	}

	s.SetAutoDismiss(-1)
	if s.AutoDismiss() != 0 {
		t.Errorf("negative window must clamp to zero, got %v", s.AutoDismiss())
	}
}

func TestSnackbarControlled(t *testing.T) {
	s := SnackbarControlled()
	out, _ := s.Show(LevelInfo, "hello")
	if out.Applied || s.IsOpen() {
		t.Fatalf("controlled Show = %+v open=%v", out, s.IsOpen())
	}
	// The message is recorded even though the open flag is host-owned.
	if s.Message() != "hello" {
		t.Errorf("Message() = %q", s.Message())
	}
	s.SyncOpen(true, false)
	if !s.IsOpen() {
		t.Error("SyncOpen(true) must open the snackbar")
	}
}

func TestSnackbarLiveRegion(t *testing.T) {
	s := SnackbarUncontrolled()
	s.Show(LevelError, "failed")

	got := ReadAttrs(s.SurfaceAttrs())
	if !got.Is("role", "status") || !got.Is("aria-live", "assertive") || !got.Is("data-level", "error") {
		t.Errorf("attrs = %s", s.SurfaceAttrs())
	}

	s.Show(LevelInfo, "ok")
	if got := ReadAttrs(s.SurfaceAttrs()); !got.Is("aria-live", "polite") {
		t.Errorf("aria-live = %q, want polite for non-errors", got.Value("aria-live"))
	}
}
