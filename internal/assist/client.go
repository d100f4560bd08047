// Package assist wraps the hosted generative language model that drafts
// itineraries, packing lists, phrasebooks, and food recommendations from
// structured prompt parameters.
//
// The model is an external collaborator with a narrow contract: each request
// sends one text prompt and expects a JSON payload in one of four fixed
// shapes, either raw or fenced in a markdown code block. Anything else is a
// hard failure surfaced to the caller; no fallback content is synthesized
// and nothing is retried.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client issues generation requests to the model endpoint.
// A rate limiter caps outbound request frequency so a user mashing the
// suggestion button cannot burn through the API quota.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a Client. requestsPerMinute caps outbound calls;
// values below 1 fall back to 10.
func NewClient(baseURL, apiKey, model string, requestsPerMinute int) *Client {
	if requestsPerMinute < 1 {
		requestsPerMinute = 10
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60), 1),
	}
}

// ---- response shapes -------------------------------------------------------

// ItineraryDay is one day of a drafted itinerary.
type ItineraryDay struct {
	Day        int                 `json:"day"`
	Theme      string              `json:"theme"`
	Activities []ItineraryActivity `json:"activities"`
}

// ItineraryActivity is one drafted itinerary entry.
type ItineraryActivity struct {
	Time        string `json:"time"`
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// PackingGroup is one category of a drafted packing list.
type PackingGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Phrase is one phrasebook entry.
type Phrase struct {
	Original      string `json:"original"`
	Pronunciation string `json:"pronunciation"`
	Translation   string `json:"translation"`
	UsageContext  string `json:"usageContext"`
}

// FoodItem is one local food recommendation.
type FoodItem struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	PriceRange     string `json:"priceRange"`
	BestPlaceToTry string `json:"bestPlaceToTry"`
}

// ---- request parameters ----------------------------------------------------

// ItineraryParams describes the trip to draft an itinerary for.
type ItineraryParams struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Budget      string   `json:"budget"` // tier, e.g. "budget", "mid", "luxury"
	Interests   []string `json:"interests"`
}

// PackingParams describes the trip to draft a packing list for.
type PackingParams struct {
	Destination string `json:"destination"`
	Season      string `json:"season"`
	TripType    string `json:"trip_type"`
	Days        int    `json:"days"`
}

// PhraseParams selects the country and target language for a phrasebook.
type PhraseParams struct {
	Country  string `json:"country"`
	Language string `json:"language"`
}

// FoodParams selects the location and optional cuisine focus.
type FoodParams struct {
	Location     string `json:"location"`
	CuisineFocus string `json:"cuisine_focus,omitempty"`
}

// ---- operations ------------------------------------------------------------

// SuggestItinerary drafts an ordered list of itinerary days.
func (c *Client) SuggestItinerary(ctx context.Context, p ItineraryParams) ([]ItineraryDay, error) {
	prompt := fmt.Sprintf(
		"Create a %d-day travel itinerary for %s on a %s budget. Interests: %s. "+
			"Respond with ONLY a JSON array of {day, theme, activities:[{time, activity, description, location}]}.",
		p.Days, p.Destination, p.Budget, strings.Join(p.Interests, ", "))

	var days []ItineraryDay
	if err := c.generateInto(ctx, prompt, &days); err != nil {
		return nil, fmt.Errorf("assist.SuggestItinerary: %w", err)
	}
	return days, nil
}

// SuggestPacking drafts a categorized packing list.
func (c *Client) SuggestPacking(ctx context.Context, p PackingParams) ([]PackingGroup, error) {
	prompt := fmt.Sprintf(
		"Create a packing list for a %d-day %s trip to %s in %s. "+
			"Respond with ONLY a JSON array of {category, items:[string]}.",
		p.Days, p.TripType, p.Destination, p.Season)

	var groups []PackingGroup
	if err := c.generateInto(ctx, prompt, &groups); err != nil {
		return nil, fmt.Errorf("assist.SuggestPacking: %w", err)
	}
	return groups, nil
}

// SuggestPhrases drafts a traveller's phrasebook.
func (c *Client) SuggestPhrases(ctx context.Context, p PhraseParams) ([]Phrase, error) {
	prompt := fmt.Sprintf(
		"List essential traveller phrases for %s in %s. "+
			"Respond with ONLY a JSON array of {original, pronunciation, translation, usageContext}.",
		p.Country, p.Language)

	var phrases []Phrase
	if err := c.generateInto(ctx, prompt, &phrases); err != nil {
		return nil, fmt.Errorf("assist.SuggestPhrases: %w", err)
	}
	return phrases, nil
}

// SuggestFood drafts local food recommendations.
func (c *Client) SuggestFood(ctx context.Context, p FoodParams) ([]FoodItem, error) {
	prompt := fmt.Sprintf("Recommend local dishes to try in %s", p.Location)
	if p.CuisineFocus != "" {
		prompt += ", focusing on " + p.CuisineFocus
	}
	prompt += ". Respond with ONLY a JSON array of {name, description, priceRange, bestPlaceToTry}."

	var items []FoodItem
	if err := c.generateInto(ctx, prompt, &items); err != nil {
		return nil, fmt.Errorf("assist.SuggestFood: %w", err)
	}
	return items, nil
}

// ---- transport -------------------------------------------------------------

// generateRequest and generateResponse mirror the model API's wire format.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generateInto sends the prompt and unmarshals the model's JSON answer into
// out. A response that is not valid JSON (after unwrapping an optional
// markdown fence) is a parse error; the caller receives it as-is.
func (c *Client) generateInto(ctx context.Context, prompt string, out any) error {
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(StripFences(text)), out); err != nil {
		return fmt.Errorf("parse model response: %w", err)
	}
	return nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API returned status %d", resp.StatusCode)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response envelope: %w", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model returned no candidates")
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// StripFences unwraps a markdown code fence around a JSON payload.
// Both ``` and ```json openers are accepted; text without a fence is
// returned trimmed and otherwise untouched.
func StripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		// drop the language tag line ("json") if present
		first := strings.TrimSpace(trimmed[:i])
		if first == "json" || first == "" {
			trimmed = trimmed[i+1:]
		}
	}
	if i := strings.LastIndex(trimmed, "```"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return strings.TrimSpace(trimmed)
}
