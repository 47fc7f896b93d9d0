package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/trippr-app/trippr-admin/models"
)

type usersModel struct {
	users   []models.User
	idx     int
	loading bool
	spinner spinner.Model
	status  string
}

func newUsersModel() usersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return usersModel{spinner: s}
}

func (m usersModel) current() (models.User, bool) {
	if len(m.users) == 0 || m.idx < 0 || m.idx >= len(m.users) {
		return models.User{}, false
	}
	return m.users[m.idx], true
}

func (m *usersModel) clampIdx() {
	if m.idx >= len(m.users) {
		m.idx = len(m.users) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m usersModel) View() string {
	header := "USERS"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := viewTitle(header)

	if m.loading {
		out += "\nLoading...\n"
	} else if len(m.users) == 0 {
		out += "\nNo users\n"
	} else {
		out += "\n"
		for i, user := range m.users {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%-25s %-30s npm:%-12s favorites:%d\n",
				cursor, fitText(user.Name, 25), fitText(user.Email, 30), user.NPM, len(user.Favorites))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "n new  e edit  d delete  r refresh  c copy email  tab places  l logout  q quit"
	out += "\n" + helpStyle.Render(strings.TrimSpace(help))
	return out
}
