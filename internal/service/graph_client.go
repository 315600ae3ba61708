package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"lexiquiz/internal/model"
)

// GraphSource is the lookup surface of the remote lexical graph service.
// The crawler and the enricher only depend on this interface.
type GraphSource interface {
	Synset(ctx context.Context, id string) (*model.Synset, error)
	Edges(ctx context.Context, id string, kind model.RelationKind) ([]model.Edge, error)
}

// GraphClient wraps the lexical graph HTTP API.
type GraphClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
}

// NewGraphClient creates a new graph API client.
func NewGraphClient(baseURL, apiKey string) *GraphClient {
	if apiKey == "" {
		log.Println("Warning: GRAPH_API_KEY not set")
	}
	return &GraphClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxRetries: 5,
	}
}

type senseDTO struct {
	Language string `json:"language"`
	Lemma    string `json:"lemma"`
}

type glossDTO struct {
	Language string `json:"language"`
	Gloss    string `json:"gloss"`
	Source   string `json:"source"`
}

type exampleDTO struct {
	Language string `json:"language"`
	Example  string `json:"example"`
	Source   string `json:"source"`
}

type synsetResponse struct {
	ID       string       `json:"id"`
	Senses   []senseDTO   `json:"senses"`
	Glosses  []glossDTO   `json:"glosses"`
	Examples []exampleDTO `json:"examples"`
}

type edgeDTO struct {
	Pointer string `json:"pointer"`
	Target  string `json:"target"`
}

type edgeListResponse struct {
	Data []edgeDTO `json:"data"`
}

// doRequest performs an HTTP GET with retry logic. 429 responses back off
// exponentially before retrying.
func (c *GraphClient) doRequest(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			log.Printf("[Graph Client] Retry attempt %d/%d for GET %s", attempt, c.maxRetries, path)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			log.Printf("[Graph Client] RATE LIMITED: retry %d/%d in %v", attempt+1, c.maxRetries, backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("rate limited")
			continue
		}

		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("graph API error %d: %s", resp.StatusCode, string(respBody))
		}

		return respBody, nil
	}

	return nil, fmt.Errorf("max retries exceeded for GET %s: %w", path, lastErr)
}

// Synset fetches one synset with all of its per-language senses, glosses
// and examples.
func (c *GraphClient) Synset(ctx context.Context, id string) (*model.Synset, error) {
	respBody, err := c.doRequest(ctx, "/synsets/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var dto synsetResponse
	if err := json.Unmarshal(respBody, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse synset response: %w", err)
	}

	synset := &model.Synset{
		ID:     dto.ID,
		Lemmas: make(map[string]string, len(dto.Senses)),
	}
	if synset.ID == "" {
		synset.ID = id
	}
	for _, s := range dto.Senses {
		if _, ok := synset.Lemmas[s.Language]; !ok {
			synset.Lemmas[s.Language] = s.Lemma
		}
	}
	for _, g := range dto.Glosses {
		synset.Glosses = append(synset.Glosses, model.Gloss{
			Text:     g.Gloss,
			Language: g.Language,
			Source:   g.Source,
		})
	}
	for _, ex := range dto.Examples {
		synset.Examples = append(synset.Examples, model.Example{
			Text:     ex.Example,
			Language: ex.Language,
			Source:   ex.Source,
		})
	}
	return synset, nil
}

// Edges fetches the outgoing edges of one pointer kind for a synset.
func (c *GraphClient) Edges(ctx context.Context, id string, kind model.RelationKind) ([]model.Edge, error) {
	path := fmt.Sprintf("/synsets/%s/edges?pointer=%s", url.PathEscape(id), url.QueryEscape(string(kind)))
	respBody, err := c.doRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	var dto edgeListResponse
	if err := json.Unmarshal(respBody, &dto); err != nil {
		return nil, fmt.Errorf("failed to parse edge list: %w", err)
	}

	edges := make([]model.Edge, 0, len(dto.Data))
	for _, e := range dto.Data {
		edges = append(edges, model.Edge{
			Kind:   model.RelationKind(e.Pointer),
			Target: e.Target,
		})
	}
	return edges, nil
}

// IsConfigured returns true if an API key is set.
func (c *GraphClient) IsConfigured() bool {
	return c.apiKey != ""
}
