package prompt

import (
	"errors"
	"testing"
)

func TestRequiredRejectsBlankAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answer  interface{}
		wantErr bool
	}{
		{name: "empty string", answer: "", wantErr: true},
		{name: "whitespace only", answer: "   ", wantErr: true},
		{name: "non string", answer: 42, wantErr: true},
		{name: "valid answer", answer: "octocat", wantErr: false},
	}

	validate := Required("username")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(tc.answer)
			if tc.wantErr {
				var inputErr *InputError
				if !errors.As(err, &inputErr) {
					t.Fatalf("validator error = %v, want *InputError", err)
				}
				if inputErr.Field != "username" {
					t.Fatalf("InputError.Field = %q, want %q", inputErr.Field, "username")
				}
				return
			}
			if err != nil {
				t.Fatalf("validator rejected %v: %v", tc.answer, err)
			}
		})
	}
}

func TestInputErrorMessageNamesField(t *testing.T) {
	err := &InputError{Field: "password"}
	if err.Error() != "password is required" {
		t.Fatalf("InputError.Error() = %q", err.Error())
	}
}
