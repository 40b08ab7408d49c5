package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNoClue is returned when the provider responds with an empty clue list
var ErrNoClue = errors.New("provider returned no clues")

// Config holds configuration for the jservice client
type Config struct {
	// BaseURL is the root of the jservice API, e.g. "http://jservice.io/api"
	BaseURL string

	// HTTPClient is the HTTP client to use. A default with a 10s timeout
	// is used when nil.
	HTTPClient *http.Client
}

// jserviceClient implements the Client interface against a jservice API
type jserviceClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewJService creates a new jservice-backed trivia client
func NewJService(cfg *Config) (*jserviceClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL cannot be empty")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &jserviceClient{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

type clueResponse struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Value    int    `json:"value"`
	Category struct {
		ID    int    `json:"id"`
		Title string `json:"title"`
	} `json:"category"`
}

type categoryResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type categoryDetailResponse struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Clues []struct {
		ID       int    `json:"id"`
		Question string `json:"question"`
		Answer   string `json:"answer"`
		Value    int    `json:"value"`
	} `json:"clues"`
}

// FetchRandomClue retrieves one random clue
func (c *jserviceClient) FetchRandomClue(ctx context.Context) (*Clue, error) {
	var clues []clueResponse
	if err := c.get(ctx, "/random.json", nil, &clues); err != nil {
		return nil, err
	}

	if len(clues) == 0 {
		return nil, ErrNoClue
	}

	clue := clues[0]

	return &Clue{
		Category: clue.Category.Title,
		Question: clue.Question,
		Answer:   clue.Answer,
		Value:    clue.Value,
	}, nil
}

// FetchCategories retrieves count category references
func (c *jserviceClient) FetchCategories(ctx context.Context, count int) ([]*CategoryRef, error) {
	var categories []categoryResponse

	params := url.Values{}
	params.Set("count", strconv.Itoa(count))

	if err := c.get(ctx, "/categories", params, &categories); err != nil {
		return nil, err
	}

	refs := make([]*CategoryRef, 0, len(categories))
	for _, category := range categories {
		refs = append(refs, &CategoryRef{ID: category.ID})
	}

	return refs, nil
}

// FetchCategoryDetail retrieves a category with its clues
func (c *jserviceClient) FetchCategoryDetail(ctx context.Context, id int) (*CategoryDetail, error) {
	var detail categoryDetailResponse

	params := url.Values{}
	params.Set("id", strconv.Itoa(id))

	if err := c.get(ctx, "/category", params, &detail); err != nil {
		return nil, err
	}

	clues := make([]*CategoryClue, 0, len(detail.Clues))
	for _, clue := range detail.Clues {
		clues = append(clues, &CategoryClue{
			ID:       clue.ID,
			Question: clue.Question,
			Answer:   clue.Answer,
			Value:    clue.Value,
		})
	}

	return &CategoryDetail{
		ID:    detail.ID,
		Title: detail.Title,
		Clues: clues,
	}, nil
}

func (c *jserviceClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response: %w", err)
	}

	return nil
}
