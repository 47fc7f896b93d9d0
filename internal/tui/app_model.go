package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trippr-app/trippr-admin/internal/service"
	"github.com/trippr-app/trippr-admin/models"
)

type screen int

const (
	screenLogin screen = iota
	screenPlaces
	screenUsers
	screenPlaceForm
	screenUserForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.Services
	mode          appMode
	currentScreen screen

	login      loginModel
	placesList placesModel
	usersList  usersModel
	placeForm  placeFormModel
	userForm   userFormModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	deleteFrom    screen

	logout        bool
	resultSession models.AdminSession
	authenticated bool
}

func newLoginAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		placesList:    newPlacesModel(),
		usersList:     newUsersModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.Services) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenPlaces
	m.refreshFromMirrors()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
				m.services.ClearError()
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.deleteFrom, m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorSlot(msg.err)
			return m, nil
		}
		m.resultSession = msg.session
		m.authenticated = true
		return m, tea.Quit
	case mirrorReloadedMsg:
		m.placesList.loading = false
		m.usersList.loading = false
		m.refreshFromMirrors()
		if msg.err != nil {
			m.showErrorSlot(msg.err)
		}
		return m, nil
	case searchDoneMsg:
		m.placesList.loading = false
		m.refreshFromMirrors()
		if msg.err != nil {
			m.showErrorSlot(msg.err)
		}
		return m, nil
	case savedMsg:
		m.placeForm.submitting = false
		m.userForm.submitting = false
		if msg.err != nil {
			m.showErrorSlot(msg.err)
			return m, nil
		}
		switch m.currentScreen {
		case screenPlaceForm:
			m.currentScreen = screenPlaces
		case screenUserForm:
			m.currentScreen = screenUsers
		}
		m.refreshFromMirrors()
		return m, nil
	case deletedMsg:
		m.pendingDelete = ""
		m.refreshFromMirrors()
		if msg.err != nil {
			m.showErrorSlot(msg.err)
		}
		return m, nil
	case copiedMsg:
		m.placesList.status = "Copied!"
		m.usersList.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.placesList.status = ""
		m.usersList.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.placesList.loading {
			var cmd tea.Cmd
			m.placesList.spinner, cmd = m.placesList.spinner.Update(msg)
			return m, cmd
		}
		if m.usersList.loading {
			var cmd tea.Cmd
			m.usersList.spinner, cmd = m.usersList.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenPlaces:
		return m.updatePlaces(msg)
	case screenUsers:
		return m.updateUsers(msg)
	case screenPlaceForm:
		return m.updatePlaceForm(msg)
	case screenUserForm:
		return m.updateUserForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenLogin:
		body = m.login.View()
	case screenPlaces:
		body = m.placesList.View()
	case screenUsers:
		body = m.usersList.View()
	case screenPlaceForm:
		body = m.placeForm.View()
	case screenUserForm:
		body = m.userForm.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// showErrorSlot surfaces the service layer's outstanding error message,
// falling back to the raw error when the slot is empty.
func (m *appModel) showErrorSlot(err error) {
	message := m.services.CurrentError()
	if message == "" && err != nil {
		message = err.Error()
	}
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) refreshFromMirrors() {
	m.placesList.places = m.services.Places.All()
	m.placesList.clampIdx()
	m.usersList.users = m.services.Users.All()
	m.usersList.clampIdx()
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if email == "" || pass == "" {
				m.showError = true
				m.errorOverlay.message = "Email and password are required"
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePlaces(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.placesList.searching {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.placesList.searching = false
			m.placesList.search.Blur()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			term := strings.TrimSpace(m.placesList.search.Value())
			m.placesList.searching = false
			m.placesList.search.Blur()
			m.placesList.term = term
			m.placesList.loading = true
			return m, tea.Batch(m.placesList.spinner.Tick, m.cmdSearch(term))
		}

		var cmd tea.Cmd
		m.placesList.search, cmd = m.placesList.search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.placesList.idx > 0 {
			m.placesList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.placesList.idx < len(m.placesList.places)-1 {
			m.placesList.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		m.currentScreen = screenUsers
	case key.Matches(keyMsg, keys.newItem):
		m.placeForm = newPlaceFormModel(nil)
		m.currentScreen = screenPlaceForm
	case key.Matches(keyMsg, keys.edit):
		place, ok := m.placesList.current()
		if !ok {
			return m, nil
		}
		m.placeForm = newPlaceFormModel(&place)
		m.currentScreen = screenPlaceForm
	case key.Matches(keyMsg, keys.delete):
		place, ok := m.placesList.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = place.Title
		m.pendingDelete = place.ID
		m.deleteFrom = screenPlaces
	case key.Matches(keyMsg, keys.search):
		m.placesList.searching = true
		m.placesList.search.SetValue("")
		m.placesList.search.Focus()
	case key.Matches(keyMsg, keys.refresh):
		m.placesList.term = ""
		m.placesList.loading = true
		return m, tea.Batch(m.placesList.spinner.Tick, m.cmdReloadPlaces())
	case key.Matches(keyMsg, keys.copy):
		place, ok := m.placesList.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(place.ID)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateUsers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.usersList.idx > 0 {
			m.usersList.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.usersList.idx < len(m.usersList.users)-1 {
			m.usersList.idx++
		}
	case key.Matches(keyMsg, keys.tab):
		m.currentScreen = screenPlaces
	case key.Matches(keyMsg, keys.newItem):
		m.userForm = newUserFormModel(nil)
		m.currentScreen = screenUserForm
	case key.Matches(keyMsg, keys.edit):
		user, ok := m.usersList.current()
		if !ok {
			return m, nil
		}
		m.userForm = newUserFormModel(&user)
		m.currentScreen = screenUserForm
	case key.Matches(keyMsg, keys.delete):
		user, ok := m.usersList.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = user.Name
		m.pendingDelete = user.ID
		m.deleteFrom = screenUsers
	case key.Matches(keyMsg, keys.refresh):
		m.usersList.loading = true
		return m, tea.Batch(m.usersList.spinner.Tick, m.cmdReloadUsers())
	case key.Matches(keyMsg, keys.copy):
		user, ok := m.usersList.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(user.Email)
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updatePlaceForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenPlaces
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.placeForm = focusNextPlaceForm(m.placeForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.placeForm = focusPrevPlaceForm(m.placeForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.placeForm.submitting {
				return m, nil
			}
			place, err := m.placeForm.toPlace()
			if err != nil {
				m.showError = true
				m.errorOverlay.message = err.Error()
				return m, nil
			}
			if place.Title == "" {
				m.showError = true
				m.errorOverlay.message = "Title is required"
				return m, nil
			}
			m.placeForm.submitting = true
			return m, m.cmdSavePlace(place, m.placeForm.editing)
		}
	}

	var cmd tea.Cmd
	m.placeForm.inputs[m.placeForm.focus], cmd = m.placeForm.inputs[m.placeForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateUserForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenUsers
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.userForm = focusNextUserForm(m.userForm)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.userForm = focusPrevUserForm(m.userForm)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.userForm.submitting {
				return m, nil
			}
			user := m.userForm.toUser()
			if user.Name == "" || user.Email == "" {
				m.showError = true
				m.errorOverlay.message = "Name and email are required"
				return m, nil
			}
			m.userForm.submitting = true
			return m, m.cmdSaveUser(user, m.userForm.password(), m.userForm.editing)
		}
	}

	var cmd tea.Cmd
	m.userForm.inputs[m.userForm.focus], cmd = m.userForm.inputs[m.userForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.Auth
	return func() tea.Msg {
		adminSession, err := auth.Login(ctx, email, password)
		return loginDoneMsg{session: adminSession, err: err}
	}
}

func (m appModel) cmdReloadPlaces() tea.Cmd {
	ctx := m.ctx
	places := m.services.Places
	return func() tea.Msg {
		return mirrorReloadedMsg{err: places.FetchAll(ctx)}
	}
}

func (m appModel) cmdReloadUsers() tea.Cmd {
	ctx := m.ctx
	users := m.services.Users
	return func() tea.Msg {
		return mirrorReloadedMsg{err: users.FetchAll(ctx)}
	}
}

func (m appModel) cmdSearch(term string) tea.Cmd {
	ctx := m.ctx
	places := m.services.Places
	return func() tea.Msg {
		return searchDoneMsg{err: places.Search(ctx, term)}
	}
}

func (m appModel) cmdSavePlace(place models.Place, editing bool) tea.Cmd {
	ctx := m.ctx
	places := m.services.Places
	return func() tea.Msg {
		if editing {
			return savedMsg{err: places.Update(ctx, place)}
		}
		_, err := places.Create(ctx, place)
		return savedMsg{err: err}
	}
}

func (m appModel) cmdSaveUser(user models.User, password string, editing bool) tea.Cmd {
	ctx := m.ctx
	users := m.services.Users
	return func() tea.Msg {
		if editing {
			return savedMsg{err: users.Update(ctx, user)}
		}
		_, err := users.Create(ctx, user, password)
		return savedMsg{err: err}
	}
}

func (m appModel) cmdDelete(from screen, id string) tea.Cmd {
	ctx := m.ctx
	places := m.services.Places
	users := m.services.Users
	return func() tea.Msg {
		if from == screenUsers {
			return deletedMsg{err: users.Delete(ctx, id)}
		}
		return deletedMsg{err: places.Delete(ctx, id)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return savedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextPlaceForm(m placeFormModel) placeFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevPlaceForm(m placeFormModel) placeFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextUserForm(m userFormModel) userFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevUserForm(m userFormModel) userFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
