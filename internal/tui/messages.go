package tui

import "github.com/trippr-app/trippr-admin/models"

type loginDoneMsg struct {
	session models.AdminSession
	err     error
}

type mirrorReloadedMsg struct {
	err error
}

type searchDoneMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
