// Package prompt collects the interactive answers for auth and init.
// Each method blocks on terminal input until the user answers; there is
// no timeout. Non-interactive runs never construct a Prompter at all.
package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Details describes the remote repository to create.
type Details struct {
	Name        string
	Description string
	Private     bool
}

// Prompter is implemented by Survey and replaced with a fake in tests.
type Prompter interface {
	Credentials() (username, password string, err error)
	RepoDetails(defaultName string) (Details, error)
	ConfirmReadme() (bool, error)
	ConfirmIgnore() (bool, error)
	SelectIgnoreEntries(candidates []string) ([]string, error)
}

// Survey asks the questions on the terminal.
type Survey struct{}

func (Survey) Credentials() (string, string, error) {
	answers := struct {
		Username string
		Password string
	}{}

	qs := []*survey.Question{
		{
			Name:     "username",
			Prompt:   &survey.Input{Message: "GitHub username:"},
			Validate: Required("username"),
		},
		{
			Name:     "password",
			Prompt:   &survey.Password{Message: "GitHub password:"},
			Validate: Required("password"),
		},
	}

	if err := survey.Ask(qs, &answers); err != nil {
		return "", "", err
	}

	return answers.Username, answers.Password, nil
}

func (Survey) RepoDetails(defaultName string) (Details, error) {
	answers := struct {
		Name        string
		Description string
		Visibility  string
	}{}

	qs := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Repository name:", Default: defaultName},
			Validate: Required("repository name"),
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description (optional):"},
		},
		{
			Name: "visibility",
			Prompt: &survey.Select{
				Message: "Repository visibility:",
				Options: []string{VisibilityPublic, VisibilityPrivate},
				Default: VisibilityPublic,
			},
		},
	}

	if err := survey.Ask(qs, &answers); err != nil {
		return Details{}, err
	}

	return Details{
		Name:        strings.TrimSpace(answers.Name),
		Description: strings.TrimSpace(answers.Description),
		Private:     answers.Visibility == VisibilityPrivate,
	}, nil
}

func (Survey) ConfirmReadme() (bool, error) {
	create := false
	err := survey.AskOne(&survey.Confirm{Message: "Create a README.md?", Default: true}, &create)

	return create, err
}

func (Survey) ConfirmIgnore() (bool, error) {
	create := false
	err := survey.AskOne(&survey.Confirm{Message: "Create a .gitignore?", Default: true}, &create)

	return create, err
}

func (Survey) SelectIgnoreEntries(candidates []string) ([]string, error) {
	var selected []string
	err := survey.AskOne(&survey.MultiSelect{
		Message: "Select files and directories to ignore:",
		Options: candidates,
	}, &selected)

	return selected, err
}
