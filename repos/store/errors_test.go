package store

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWrapErrKinds(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", status.Error(codes.NotFound, "missing"), KindNotFound},
		{"permission denied", status.Error(codes.PermissionDenied, "rules"), KindPermissionDenied},
		{"unauthenticated", status.Error(codes.Unauthenticated, "token"), KindPermissionDenied},
		{"unavailable", status.Error(codes.Unavailable, "down"), KindUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), KindUnavailable},
		{"invalid argument", status.Error(codes.InvalidArgument, "bad"), KindValidation},
		{"plain error", errors.New("boom"), KindUnknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			wrapped := wrapErr("store.test", c.err)
			if got := KindOf(wrapped); got != c.want {
				t.Errorf("KindOf = %v, want %v", got, c.want)
			}
		})
	}
}

func TestWrapErrNil(t *testing.T) {
	if wrapErr("store.test", nil) != nil {
		t.Error("nil error must stay nil")
	}
}

func TestIsNotFound(t *testing.T) {
	err := wrapErr("store.test", status.Error(codes.NotFound, "missing"))
	if !IsNotFound(err) {
		t.Error("expected IsNotFound to see through the wrap")
	}
	if IsNotFound(errors.New("other")) {
		t.Error("unrelated errors are not not-found")
	}
}

func TestAttendanceDocID(t *testing.T) {
	if got := AttendanceDocID("a@f.fc", "ev1"); got != "a@f.fc_ev1" {
		t.Errorf("unexpected doc id %q", got)
	}
}

func TestIsAttendingLegacyFallback(t *testing.T) {
	if (Attendance{Attending: true}).IsAttending() != true {
		t.Error("legacy bool should decide when status is absent")
	}
	if (Attendance{Attending: true, Status: StatusNotAttending}).IsAttending() {
		t.Error("status must win over the legacy bool")
	}
}
