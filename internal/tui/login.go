// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Trippr Contributors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel renders two text inputs (email and password) for the admin
// sign-in screen. Submission is handled by the app model, which dispatches an
// async login command and routes the result.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{emailInput, passwordInput}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Email    │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	return renderPage("TRIPPR ADMIN — SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: submit")
}
