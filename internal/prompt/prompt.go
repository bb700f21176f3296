// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package prompt

import (
	"errors"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the operator aborts a prompt with Ctrl-C
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter asks the operator a question and returns the raw answer
type Prompter interface {
	Ask(message string) (string, error)
}

// Survey prompts on the controlling terminal
type Survey struct {
	opts []survey.AskOpt
}

// NewSurvey returns a terminal prompter. Options are passed through to
// survey, e.g. survey.WithStdio for non-default streams.
func NewSurvey(opts ...survey.AskOpt) *Survey {
	return &Survey{opts: opts}
}

// Ask shows message and returns the answer as typed
func (s *Survey) Ask(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer, s.opts...)
	if errors.Is(err, terminal.InterruptErr) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	return answer, nil
}

// IsYes reports whether answer is an explicit "y". Anything else is a no.
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
