package exitcode

import (
	"errors"
	"testing"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: Success},
		{name: "not logged in", err: errors.New("[SESSION-001] not logged in"), want: AuthError},
		{name: "unauthorized", err: errors.New("[API-001] unauthorized: the server rejected the session token"), want: AuthError},
		{name: "session expired", err: errors.New("[SESSION-003] session has expired"), want: AuthError},
		{name: "role not permitted", err: errors.New("[ROLE-002] role TREASURER is not permitted to access members"), want: ForbiddenError},
		{name: "connection refused", err: errors.New("request failed: connection refused"), want: NetworkError},
		{name: "timeout", err: errors.New("request timeout exceeded"), want: NetworkError},
		{name: "unknown command", err: errors.New(`unknown command "fund" for "sabha"`), want: UsageError},
		{name: "anything else", err: errors.New("something broke"), want: GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.want {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDescription(t *testing.T) {
	codes := []int{Success, GeneralError, UsageError, AuthError, ForbiddenError, NetworkError, Interrupted, 99}
	for _, code := range codes {
		if Description(code) == "" {
			t.Errorf("Description(%d) is empty", code)
		}
	}
}
