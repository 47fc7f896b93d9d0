package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/trippr-app/trippr-admin/models"
)

type userFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	userID     string
	favorites  map[string]models.FavoritePlace
	submitting bool
}

// newUserFormModel builds the user form. Creation shows a password field for
// the linked auth account; editing hides it since the account credentials are
// never rewritten from here.
func newUserFormModel(user *models.User) userFormModel {
	count := 4
	if user != nil {
		count = 3
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "name"
	inputs[1].Placeholder = "email"
	inputs[2].Placeholder = "npm"
	if count == 4 {
		inputs[3].Placeholder = "password"
		inputs[3].EchoMode = textinput.EchoPassword
		inputs[3].EchoCharacter = '*'
	}
	inputs[0].Focus()

	m := userFormModel{inputs: inputs}
	if user == nil {
		return m
	}

	m.editing = true
	m.userID = user.ID
	m.favorites = user.Favorites
	m.inputs[0].SetValue(user.Name)
	m.inputs[1].SetValue(user.Email)
	m.inputs[2].SetValue(user.NPM)
	return m
}

func (m userFormModel) toUser() models.User {
	return models.User{
		ID:        m.userID,
		Name:      strings.TrimSpace(m.inputs[0].Value()),
		Email:     strings.TrimSpace(m.inputs[1].Value()),
		NPM:       strings.TrimSpace(m.inputs[2].Value()),
		Favorites: m.favorites,
	}
}

func (m userFormModel) password() string {
	if m.editing {
		return ""
	}
	return m.inputs[3].Value()
}

func (m userFormModel) View() string {
	title := "New user"
	if m.editing {
		title = "Editing: " + m.inputs[0].Value()
	}

	out := viewTitle(title) + "\n"
	out += "Name:     [" + m.inputs[0].View() + "]\n"
	out += "Email:    [" + m.inputs[1].View() + "]\n"
	out += "NPM:      [" + m.inputs[2].View() + "]\n"
	if !m.editing {
		out += "Password: [" + m.inputs[3].View() + "]\n"
	}
	out += "\n"

	if m.submitting {
		out += "[Saving...]\n\n"
	}
	out += helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}
