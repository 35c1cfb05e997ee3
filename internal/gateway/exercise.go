package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"alcyxob/fitlife/internal/domain"
)

// ExerciseGateway queries the exercise database.
type ExerciseGateway struct {
	baseURL string
	client  *http.Client
}

// NewExerciseGateway creates a gateway rooted at baseURL. Credentials are the
// client's concern (see RapidAPITransport).
func NewExerciseGateway(baseURL string, client *http.Client) *ExerciseGateway {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExerciseGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// FetchByCategory lists the exercises for a body part or a piece of
// equipment. The value is lower-cased before it goes into the path.
func (g *ExerciseGateway) FetchByCategory(ctx context.Context, kind domain.CategoryKind, value string) ([]domain.Exercise, error) {
	segment := "equipment"
	if kind == domain.KindBodyPart {
		segment = "bodyPart"
	}
	endpoint := fmt.Sprintf("%s/exercises/%s/%s", g.baseURL, segment, url.PathEscape(strings.ToLower(value)))

	body, err := get(ctx, g.client, endpoint)
	if err != nil {
		return nil, err
	}

	var exercises []domain.Exercise
	if len(bytes.TrimSpace(body)) == 0 {
		return []domain.Exercise{}, nil
	}
	if err := json.Unmarshal(body, &exercises); err != nil {
		return nil, fmt.Errorf("%w: decode exercises: %v", ErrNetworkFailure, err)
	}
	if exercises == nil {
		exercises = []domain.Exercise{}
	}
	return exercises, nil
}

// FetchByID returns one exercise. A successful response without a record
// is ErrNotFound.
func (g *ExerciseGateway) FetchByID(ctx context.Context, id string) (*domain.Exercise, error) {
	endpoint := fmt.Sprintf("%s/exercises/exercise/%s", g.baseURL, url.PathEscape(id))

	body, err := get(ctx, g.client, endpoint)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, ErrNotFound
	}

	var exercise domain.Exercise
	if err := json.Unmarshal(trimmed, &exercise); err != nil {
		return nil, fmt.Errorf("%w: decode exercise %s: %v", ErrNetworkFailure, id, err)
	}
	if exercise.IsEmpty() {
		return nil, ErrNotFound
	}
	return &exercise, nil
}
