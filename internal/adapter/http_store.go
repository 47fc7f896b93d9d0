package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/trippr-app/trippr-admin/internal/config"
	"github.com/trippr-app/trippr-admin/internal/logger"
	"github.com/trippr-app/trippr-admin/models"
)

type httpStoreAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPStoreAdapter builds a document-store client for the configured base
// URL. The project API key, when set, is sent as the `key` query parameter on
// every call; each request carries a fresh X-Request-Id for correlation with
// server-side logs.
func NewHTTPStoreAdapter(cfg config.ConsoleAdapter, app config.ConsoleApp, log *logger.Logger) (StoreAdapter, error) {
	if cfg.StoreAddress == "" {
		return nil, fmt.Errorf("store address is required")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.StoreAddress, "/")).
		SetTimeout(cfg.RequestTimeout)

	if app.APIKey != "" {
		cli.SetQueryParam("key", app.APIKey)
	}
	cli.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		return nil
	})

	return &httpStoreAdapter{client: cli, logger: log}, nil
}

func (h *httpStoreAdapter) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/v1/collections/" + collection + "/documents")
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", collection, err)
	}
	if err = mapStoreError(resp); err != nil {
		return nil, err
	}

	return decodeDocuments(resp.Body())
}

func (h *httpStoreAdapter) Query(ctx context.Context, collection string, filters []models.Filter) ([]json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.QueryRequest{Filters: filters}).
		Post("/v1/collections/" + collection + "/query")
	if err != nil {
		return nil, fmt.Errorf("query %s request: %w", collection, err)
	}
	if err = mapStoreError(resp); err != nil {
		return nil, err
	}

	return decodeDocuments(resp.Body())
}

func (h *httpStoreAdapter) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/v1/collections/" + collection + "/documents/" + id)
	if err != nil {
		return nil, fmt.Errorf("get %s/%s request: %w", collection, id, err)
	}
	if err = mapStoreError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func (h *httpStoreAdapter) Create(ctx context.Context, collection string, doc any) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Post("/v1/collections/" + collection + "/documents")
	if err != nil {
		return "", fmt.Errorf("create in %s request: %w", collection, err)
	}
	if err = mapStoreError(resp); err != nil {
		return "", err
	}

	var created struct {
		ID string `json:"id"`
	}
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("store did not assign an id")
	}

	return created.ID, nil
}

func (h *httpStoreAdapter) Set(ctx context.Context, collection, id string, doc any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(doc).
		Put("/v1/collections/" + collection + "/documents/" + id)
	if err != nil {
		return fmt.Errorf("set %s/%s request: %w", collection, id, err)
	}

	return mapStoreError(resp)
}

func (h *httpStoreAdapter) Update(ctx context.Context, collection, id string, fields any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Patch("/v1/collections/" + collection + "/documents/" + id)
	if err != nil {
		return fmt.Errorf("update %s/%s request: %w", collection, id, err)
	}

	return mapStoreError(resp)
}

func (h *httpStoreAdapter) Delete(ctx context.Context, collection, id string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/v1/collections/" + collection + "/documents/" + id)
	if err != nil {
		return fmt.Errorf("delete %s/%s request: %w", collection, id, err)
	}

	return mapStoreError(resp)
}

func decodeDocuments(body []byte) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("decode documents response: %w", err)
	}
	return docs, nil
}
