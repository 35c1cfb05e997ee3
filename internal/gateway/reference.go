package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"alcyxob/fitlife/internal/domain"
)

// ReferenceGateway reads the muscle and equipment taxonomy from the
// reference API. One request per call, no retry, no caching.
type ReferenceGateway struct {
	baseURL string
	client  *http.Client
}

// NewReferenceGateway creates a gateway rooted at baseURL (e.g. https://wger.de/api/v2).
func NewReferenceGateway(baseURL string, client *http.Client) *ReferenceGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &ReferenceGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// referencePage is the envelope of the reference API list endpoints.
// Only id and name of each result are used.
type referencePage struct {
	Results []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"results"`
}

// FetchBodyParts lists the muscles known to the reference API.
func (g *ReferenceGateway) FetchBodyParts(ctx context.Context) ([]domain.Category, error) {
	return g.fetch(ctx, "/muscle/")
}

// FetchEquipment lists the equipment known to the reference API.
func (g *ReferenceGateway) FetchEquipment(ctx context.Context) ([]domain.Category, error) {
	return g.fetch(ctx, "/equipment/")
}

// Fetch dispatches on kind.
func (g *ReferenceGateway) Fetch(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	if kind == domain.KindBodyPart {
		return g.FetchBodyParts(ctx)
	}
	return g.FetchEquipment(ctx)
}

func (g *ReferenceGateway) fetch(ctx context.Context, path string) ([]domain.Category, error) {
	body, err := get(ctx, g.client, g.baseURL+path)
	if err != nil {
		return nil, err
	}

	var page referencePage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrNetworkFailure, path, err)
	}

	categories := make([]domain.Category, 0, len(page.Results))
	for _, r := range page.Results {
		categories = append(categories, domain.Category{ID: r.ID, Name: r.Name})
	}
	return categories, nil
}
