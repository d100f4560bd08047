package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkramer/wayfare/backend/internal/assist"
	"github.com/tkramer/wayfare/backend/internal/handler"
)

func TestGetHealth_200(t *testing.T) {
	h := newHTTPHandler(nil, nil, nil, nil, nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

// ---- settings --------------------------------------------------------------

type mockSettingsServicer struct {
	darkMode    func() (bool, error)
	setDarkMode func(on bool) error
}

func (m *mockSettingsServicer) DarkMode() (bool, error) { return m.darkMode() }
func (m *mockSettingsServicer) SetDarkMode(on bool) error { return m.setDarkMode(on) }

var _ handler.SettingsServicer = (*mockSettingsServicer)(nil)

func TestGetDarkMode_200(t *testing.T) {
	svc := &mockSettingsServicer{
		darkMode: func() (bool, error) { return true, nil },
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc, nil)

	rec := doRequest(t, h, http.MethodGet, "/settings/dark-mode", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]bool
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp["dark_mode"])
}

func TestSetDarkMode_200(t *testing.T) {
	var got bool
	svc := &mockSettingsServicer{
		setDarkMode: func(on bool) error { got = on; return nil },
	}
	h := newHTTPHandler(nil, nil, nil, nil, svc, nil)

	body := jsonBody(t, map[string]any{"dark_mode": true})
	rec := doRequest(t, h, http.MethodPut, "/settings/dark-mode", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, got)
}

// ---- assist ----------------------------------------------------------------

type mockSuggester struct {
	itinerary func(ctx context.Context, p assist.ItineraryParams) ([]assist.ItineraryDay, error)
	packing   func(ctx context.Context, p assist.PackingParams) ([]assist.PackingGroup, error)
	phrases   func(ctx context.Context, p assist.PhraseParams) ([]assist.Phrase, error)
	food      func(ctx context.Context, p assist.FoodParams) ([]assist.FoodItem, error)
}

func (m *mockSuggester) SuggestItinerary(ctx context.Context, p assist.ItineraryParams) ([]assist.ItineraryDay, error) {
	return m.itinerary(ctx, p)
}
func (m *mockSuggester) SuggestPacking(ctx context.Context, p assist.PackingParams) ([]assist.PackingGroup, error) {
	return m.packing(ctx, p)
}
func (m *mockSuggester) SuggestPhrases(ctx context.Context, p assist.PhraseParams) ([]assist.Phrase, error) {
	return m.phrases(ctx, p)
}
func (m *mockSuggester) SuggestFood(ctx context.Context, p assist.FoodParams) ([]assist.FoodItem, error) {
	return m.food(ctx, p)
}

var _ handler.Suggester = (*mockSuggester)(nil)

func assistHandler(svc handler.Suggester) http.Handler {
	return newHTTPHandler(nil, nil, nil, nil, nil, svc)
}

func TestAssistItinerary_200(t *testing.T) {
	svc := &mockSuggester{
		itinerary: func(_ context.Context, p assist.ItineraryParams) ([]assist.ItineraryDay, error) {
			assert.Equal(t, "Tokyo", p.Destination)
			assert.Equal(t, 3, p.Days)
			return []assist.ItineraryDay{
				{Day: 1, Theme: "Old Tokyo", Activities: []assist.ItineraryActivity{
					{Time: "09:00", Activity: "Senso-ji", Location: "Asakusa"},
				}},
			}, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"destination": "Tokyo",
		"days":        3,
		"budget":      "mid",
		"interests":   []string{"history", "food"},
	})
	rec := doRequest(t, assistHandler(svc), http.MethodPost, "/assist/itinerary", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var days []assist.ItineraryDay
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&days))
	require.Len(t, days, 1)
	assert.Equal(t, "Old Tokyo", days[0].Theme)
}

func TestAssistItinerary_502_UpstreamFailure(t *testing.T) {
	svc := &mockSuggester{
		itinerary: func(_ context.Context, _ assist.ItineraryParams) ([]assist.ItineraryDay, error) {
			return nil, errors.New("assist: generate: status 429")
		},
	}

	rec := doRequest(t, assistHandler(svc), http.MethodPost, "/assist/itinerary", jsonBody(t, map[string]any{"destination": "Tokyo"}))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "assist_failed", decodeError(t, rec).Error.Code)
}

func TestAssistPhrases_200(t *testing.T) {
	svc := &mockSuggester{
		phrases: func(_ context.Context, p assist.PhraseParams) ([]assist.Phrase, error) {
			assert.Equal(t, "Japan", p.Country)
			return []assist.Phrase{{Original: "ありがとう", Pronunciation: "arigatou", Translation: "thank you"}}, nil
		},
	}

	body := jsonBody(t, map[string]any{"country": "Japan", "language": "Japanese"})
	rec := doRequest(t, assistHandler(svc), http.MethodPost, "/assist/phrases", body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var phrases []assist.Phrase
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&phrases))
	require.Len(t, phrases, 1)
	assert.Equal(t, "arigatou", phrases[0].Pronunciation)
}
