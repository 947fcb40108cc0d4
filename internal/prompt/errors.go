package prompt

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// InputError reports an empty answer to a required question.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Required builds a survey validator that rejects blank answers.
func Required(field string) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		if strings.TrimSpace(s) == "" {
			return &InputError{Field: field}
		}

		return nil
	}
}
