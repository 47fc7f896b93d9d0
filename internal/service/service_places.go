package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/trippr-app/trippr-admin/internal/adapter"
	"github.com/trippr-app/trippr-admin/internal/app"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

// titleRangeSentinel is the highest-codepoint bound appended to a search term
// so that [term, term+sentinel] covers every title starting with term.
const titleRangeSentinel = "\uf8ff"

type placeService struct {
	store  adapter.StoreAdapter
	status *Status
	logger *logger.Logger

	mu     sync.RWMutex
	mirror []models.Place
}

// NewPlaceService builds the places mirror over the document store.
func NewPlaceService(store adapter.StoreAdapter, status *Status, log *logger.Logger) PlaceService {
	return &placeService{store: store, status: status, logger: log}
}

func (p *placeService) All() []models.Place {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]models.Place, len(p.mirror))
	copy(out, p.mirror)
	return out
}

func (p *placeService) FetchAll(ctx context.Context) error {
	p.status.setLoading(true)
	defer p.status.setLoading(false)

	docs, err := p.store.List(ctx, adapter.CollectionPlaces)
	if err != nil {
		p.status.fail(app.MsgFailedToFetchPlaces)
		p.logger.Error().Err(err).Msg("fetch places")
		return fmt.Errorf("%w: fetch places: %v", ErrRemoteOperationFailed, err)
	}

	places, err := decodePlaces(docs)
	if err != nil {
		p.status.fail(app.MsgFailedToFetchPlaces)
		p.logger.Error().Err(err).Msg("decode places")
		return fmt.Errorf("%w: %v", ErrRemoteOperationFailed, err)
	}

	p.replace(places)
	return nil
}

func (p *placeService) Search(ctx context.Context, term string) error {
	if term == "" {
		return p.FetchAll(ctx)
	}

	p.status.setLoading(true)
	defer p.status.setLoading(false)

	lower := strings.ToLower(term)
	docs, err := p.store.Query(ctx, adapter.CollectionPlaces, []models.Filter{
		{Field: "title", Op: models.OpGreaterOrEqual, Value: lower, Fold: true},
		{Field: "title", Op: models.OpLessOrEqual, Value: lower + titleRangeSentinel, Fold: true},
	})
	if err != nil {
		p.status.fail(app.MsgFailedToSearchPlaces)
		p.logger.Error().Err(err).Str("term", term).Msg("search places")
		return fmt.Errorf("%w: search places: %v", ErrRemoteOperationFailed, err)
	}

	places, err := decodePlaces(docs)
	if err != nil {
		p.status.fail(app.MsgFailedToSearchPlaces)
		p.logger.Error().Err(err).Msg("decode places")
		return fmt.Errorf("%w: %v", ErrRemoteOperationFailed, err)
	}

	// Search results replace the mirror; they are never merged with the
	// previous contents.
	p.replace(places)
	return nil
}

func (p *placeService) Create(ctx context.Context, place models.Place) (models.Place, error) {
	if err := place.Validate(); err != nil {
		p.status.fail(err.Error())
		return models.Place{}, err
	}

	place.ID = ""
	id, err := p.store.Create(ctx, adapter.CollectionPlaces, place)
	if err != nil {
		p.status.fail(app.MsgFailedToAddPlace)
		p.logger.Error().Err(err).Str("title", place.Title).Msg("add place")
		return models.Place{}, fmt.Errorf("%w: add place: %v", ErrRemoteOperationFailed, err)
	}

	place.ID = id
	p.mu.Lock()
	p.mirror = append(p.mirror, place)
	p.mu.Unlock()

	return place, nil
}

func (p *placeService) Update(ctx context.Context, place models.Place) error {
	if err := place.Validate(); err != nil {
		p.status.fail(err.Error())
		return err
	}

	if err := p.store.Update(ctx, adapter.CollectionPlaces, place.ID, place); err != nil {
		p.status.fail(app.MsgFailedToUpdatePlace)
		p.logger.Error().Err(err).Str("id", place.ID).Msg("update place")
		return fmt.Errorf("%w: update place: %v", ErrRemoteOperationFailed, err)
	}

	p.mu.Lock()
	for i := range p.mirror {
		if p.mirror[i].ID == place.ID {
			p.mirror[i] = place
			break
		}
	}
	p.mu.Unlock()

	return nil
}

func (p *placeService) Delete(ctx context.Context, id string) error {
	if err := p.store.Delete(ctx, adapter.CollectionPlaces, id); err != nil {
		p.status.fail(app.MsgFailedToDeletePlace)
		p.logger.Error().Err(err).Str("id", id).Msg("delete place")
		return fmt.Errorf("%w: delete place: %v", ErrRemoteOperationFailed, err)
	}

	p.mu.Lock()
	kept := p.mirror[:0]
	for _, place := range p.mirror {
		if place.ID != id {
			kept = append(kept, place)
		}
	}
	p.mirror = kept
	p.mu.Unlock()

	return nil
}

func (p *placeService) Reset() {
	p.replace(nil)
}

func (p *placeService) replace(places []models.Place) {
	p.mu.Lock()
	p.mirror = places
	p.mu.Unlock()
}

func decodePlaces(docs []json.RawMessage) ([]models.Place, error) {
	places := make([]models.Place, 0, len(docs))
	for _, doc := range docs {
		var place models.Place
		if err := json.Unmarshal(doc, &place); err != nil {
			return nil, fmt.Errorf("decode place document: %w", err)
		}
		places = append(places, place)
	}
	return places, nil
}
