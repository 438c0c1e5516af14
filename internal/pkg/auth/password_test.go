package auth

import (
	"errors"
	"testing"

	"github.com/yigit/feedbackd/internal/pkg/apperrors"
)

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}
	if !v.Verify("Secret1", "Secret1") {
		t.Error("identical passwords rejected")
	}
	if v.Verify("Secret1", "secret1") {
		t.Error("compare must be case sensitive")
	}
	if v.Verify("Secret1", "") {
		t.Error("empty password accepted")
	}
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}
	stored, err := v.Prepare("hunter2")
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	if stored == "hunter2" {
		t.Fatal("Prepare returned the clear password")
	}
	if !v.Verify(stored, "hunter2") {
		t.Error("correct password rejected")
	}
	if v.Verify(stored, "hunter3") {
		t.Error("wrong password accepted")
	}
	if v.Verify("not-a-hash", "not-a-hash") {
		t.Error("non-hash stored value accepted")
	}
}

func TestNewPasswordVerifier(t *testing.T) {
	tests := []struct {
		mode    string
		want    PasswordVerifier
		wantErr bool
	}{
		{mode: "", want: PlaintextVerifier{}},
		{mode: "plaintext", want: PlaintextVerifier{}},
		{mode: " BCRYPT ", want: BcryptVerifier{}},
		{mode: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			got, err := NewPasswordVerifier(tt.mode)
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidConfig) {
					t.Fatalf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %T, want %T", got, tt.want)
			}
		})
	}
}
