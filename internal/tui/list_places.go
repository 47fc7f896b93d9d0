package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/trippr-app/trippr-admin/models"
)

type placesModel struct {
	places    []models.Place
	idx       int
	loading   bool
	searching bool
	search    textinput.Model
	term      string
	spinner   spinner.Model
	status    string
}

func newPlacesModel() placesModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "title prefix"
	search.CharLimit = 64
	search.Width = 30

	return placesModel{spinner: s, search: search}
}

func (m placesModel) current() (models.Place, bool) {
	if len(m.places) == 0 || m.idx < 0 || m.idx >= len(m.places) {
		return models.Place{}, false
	}
	return m.places[m.idx], true
}

func (m *placesModel) clampIdx() {
	if m.idx >= len(m.places) {
		m.idx = len(m.places) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func placeTypeTag(t models.PlaceType) string {
	switch t {
	case models.PlaceTypePopular:
		return "[pop]"
	case models.PlaceTypeInspiration:
		return "[ins]"
	default:
		return "[def]"
	}
}

func (m placesModel) View() string {
	header := "PLACES"
	if m.loading {
		header += "  " + m.spinner.View()
	}
	if m.term != "" {
		header += fmt.Sprintf("  (filter: %q)", m.term)
	}
	out := viewTitle(header)

	if m.searching {
		out += "\nSearch: [" + m.search.View() + "]\n"
	}

	if m.loading {
		out += "\nLoading...\n"
	} else if len(m.places) == 0 {
		out += "\nNo places\n"
	} else {
		out += "\n"
		for i, place := range m.places {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %-30s %s ★%d\n",
				cursor, placeTypeTag(place.Type), fitText(place.Title, 30), fitText(place.Location, 20), place.Rating)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "n new  e edit  d delete  / search  r refresh  c copy id  tab users  l logout  q quit"
	out += "\n" + helpStyle.Render(strings.TrimSpace(help))
	return out
}
