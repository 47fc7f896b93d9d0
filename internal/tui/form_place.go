package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/trippr-app/trippr-admin/models"
)

type placeFormModel struct {
	inputs     []textinput.Model
	focus      int
	editing    bool
	placeID    string
	submitting bool
}

func newPlaceFormModel(place *models.Place) placeFormModel {
	inputs := make([]textinput.Model, 7)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}
	inputs[0].Placeholder = "title"
	inputs[1].Placeholder = "description"
	inputs[2].Placeholder = "image url"
	inputs[3].Placeholder = "location"
	inputs[4].Placeholder = "location key"
	inputs[5].Placeholder = "rating 1-5"
	inputs[6].Placeholder = "default | popular | inspiration"
	inputs[0].Focus()

	m := placeFormModel{inputs: inputs}
	if place == nil {
		m.inputs[6].SetValue(string(models.PlaceTypeDefault))
		return m
	}

	m.editing = true
	m.placeID = place.ID
	m.inputs[0].SetValue(place.Title)
	m.inputs[1].SetValue(place.Description)
	m.inputs[2].SetValue(place.Image)
	m.inputs[3].SetValue(place.Location)
	m.inputs[4].SetValue(place.LocationKey)
	m.inputs[5].SetValue(strconv.Itoa(place.Rating))
	m.inputs[6].SetValue(string(place.Type))
	return m
}

// toPlace assembles the record from the form fields. The rating field must
// parse as an integer; range and type checks stay with [models.Place.Validate].
func (m placeFormModel) toPlace() (models.Place, error) {
	rating, err := strconv.Atoi(strings.TrimSpace(m.inputs[5].Value()))
	if err != nil {
		return models.Place{}, fmt.Errorf("rating must be a whole number")
	}

	return models.Place{
		ID:          m.placeID,
		Title:       strings.TrimSpace(m.inputs[0].Value()),
		Description: m.inputs[1].Value(),
		Image:       strings.TrimSpace(m.inputs[2].Value()),
		Location:    strings.TrimSpace(m.inputs[3].Value()),
		LocationKey: strings.TrimSpace(m.inputs[4].Value()),
		Rating:      rating,
		Type:        models.PlaceType(strings.TrimSpace(m.inputs[6].Value())),
	}, nil
}

func (m placeFormModel) View() string {
	title := "New place"
	if m.editing {
		title = "Editing: " + m.inputs[0].Value()
	}

	out := viewTitle(title) + "\n"
	out += "Title:        [" + m.inputs[0].View() + "]\n"
	out += "Description:  [" + m.inputs[1].View() + "]\n"
	out += "Image:        [" + m.inputs[2].View() + "]\n"
	out += "Location:     [" + m.inputs[3].View() + "]\n"
	out += "Location key: [" + m.inputs[4].View() + "]\n"
	out += "Rating:       [" + m.inputs[5].View() + "]\n"
	out += "Type:         [" + m.inputs[6].View() + "]\n\n"

	if m.submitting {
		out += "[Saving...]\n\n"
	}
	out += helpStyle.Render("esc cancel  tab next field  enter save")
	return out
}
