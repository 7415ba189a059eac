package audit

import "github.com/AlecAivazis/survey/v2"

// Choice is an operator decision for one finding.
type Choice string

const (
	ChoiceRemove   Choice = "Remove the dependency"
	ChoiceRevert   Choice = "Switch to a safe version"
	ChoiceOverride Choice = "Pin a safe version via overrides"
	ChoiceSkip     Choice = "Skip"
)

// Prompter asks the operator to pick one of a fixed set of choices.
// It blocks until input arrives.
type Prompter interface {
	Select(message string, choices []Choice) (Choice, error)
}

// SurveyPrompter asks on the controlling terminal.
type SurveyPrompter struct{}

func (SurveyPrompter) Select(message string, choices []Choice) (Choice, error) {
	options := make([]string, len(choices))
	for i, c := range choices {
		options[i] = string(c)
	}
	var answer string
	err := survey.AskOne(&survey.Select{
		Message: message,
		Options: options,
	}, &answer)
	return Choice(answer), err
}
