// Package tarot wraps the tarotapi.dev card API.
package tarot

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	apperrors "taralog/internal/errors"
	"taralog/internal/model"
)

// reversalChance is the probability that a drawn card lands reversed.
const reversalChance = 0.3

// CardSource draws random tarot cards.
type CardSource interface {
	DrawRandom(ctx context.Context, n int) ([]model.Card, error)
}

// Client calls the tarotapi.dev REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	roll       func() float64 // reversal roll, injectable for tests
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRoll overrides the reversal roll.
func WithRoll(roll func() float64) Option {
	return func(c *Client) { c.roll = roll }
}

// NewClient builds a card API client. baseURL is the host root, e.g.
// "https://tarotapi.dev".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		roll:       rand.Float64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiCard struct {
	NameShort string `json:"name_short"`
	Name      string `json:"name"`
	MeaningUp string `json:"meaning_up"`
	MeaningRv string `json:"meaning_rev"`
}

type apiResponse struct {
	Cards []apiCard `json:"cards"`
}

// DrawRandom fetches n random cards and assigns position_i labels in draw
// order. Each card is reversed with 30% probability.
func (c *Client) DrawRandom(ctx context.Context, n int) ([]model.Card, error) {
	url := fmt.Sprintf("%s/api/v1/cards/random?n=%d", c.baseURL, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCardSource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrCardSource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", apperrors.ErrCardSource, resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", apperrors.ErrCardSource, err)
	}
	if len(body.Cards) == 0 {
		return nil, fmt.Errorf("%w: empty card list", apperrors.ErrCardSource)
	}

	cards := make([]model.Card, 0, len(body.Cards))
	for i, card := range body.Cards {
		cards = append(cards, model.Card{
			CardID:     card.NameShort,
			Name:       card.Name,
			IsReversed: c.roll() < reversalChance,
			Position:   fmt.Sprintf("position_%d", i+1),
		})
	}
	return cards, nil
}
