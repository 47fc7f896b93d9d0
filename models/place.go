package models

import (
	"errors"
	"fmt"
)

// PlaceType categorizes how a place is surfaced in the Trippr app.
type PlaceType string

const (
	PlaceTypeDefault     PlaceType = "default"
	PlaceTypePopular     PlaceType = "popular"
	PlaceTypeInspiration PlaceType = "inspiration"
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrUnknownPlaceType = errors.New("unknown place type")
)

// Place is a point-of-interest record with display metadata and a lookup key
// for the external mapping/weather service.
type Place struct {
	// ID is assigned by the document store on creation and is never
	// rewritten afterwards.
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Location    string    `json:"location"`
	LocationKey string    `json:"location_key"`
	Rating      int       `json:"rating"`
	Type        PlaceType `json:"type"`
}

// Validate checks the rating range and the type enum. It is called before any
// remote write so an invalid record never reaches the store.
func (p Place) Validate() error {
	if p.Rating < 1 || p.Rating > 5 {
		return fmt.Errorf("%w: got %d", ErrRatingOutOfRange, p.Rating)
	}
	switch p.Type {
	case PlaceTypeDefault, PlaceTypePopular, PlaceTypeInspiration:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlaceType, p.Type)
	}
}

// FavoritePlace is the reduced projection of a Place stored inside a user's
// favorites map. It deliberately omits description, location_key and rating;
// it is a distinct narrower record, not a subtype of Place.
type FavoritePlace struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Image    string    `json:"image"`
	Location string    `json:"location"`
	Type     PlaceType `json:"type"`
}
