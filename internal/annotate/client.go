package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Endpoint string
	Timeout  time.Duration
	Lexicon  string // phrase list for offline tagging; wins over Endpoint
}

func (c Config) withDefaults() Config {
	c.Endpoint = strings.TrimRight(c.Endpoint, "/")
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return c
}

type chunkRequest struct {
	Texts []string `json:"texts"`
}

type chunkResponse struct {
	Chunks [][]string `json:"chunks"`
}

// Client talks to the noun chunk service. It is built once per run with
// Load and is safe for concurrent use; answers are memoized per text.
type Client struct {
	cfg  Config
	http *http.Client
	log  logrus.FieldLogger

	mu   sync.Mutex
	memo map[string][]string
}

// Open returns a lexicon annotator when cfg names a lexicon, else a service
// client.
func Open(ctx context.Context, cfg Config, log logrus.FieldLogger) (Annotator, error) {
	if cfg.Lexicon != "" {
		lex, err := LoadLexicon(cfg.Lexicon)
		if err != nil {
			return nil, fmt.Errorf("annotate: %w", err)
		}
		log.WithField("lexicon", cfg.Lexicon).Debug("offline lexicon tagging")
		return lex, nil
	}
	return Load(ctx, cfg, log)
}

// Load checks that the service answers on /health and returns a client.
func Load(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Client, error) {
	cfg = cfg.withDefaults()
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("annotate: no endpoint configured")
	}
	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
		memo: make(map[string][]string),
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Endpoint+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotate: service unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotate: health check: http %d", resp.StatusCode)
	}
	log.WithField("endpoint", cfg.Endpoint).Debug("annotation service ready")
	return c, nil
}

func (c *Client) NounChunks(ctx context.Context, texts []string) ([][]string, error) {
	out := make([][]string, len(texts))
	var missing []string
	pending := make(map[string]bool)

	c.mu.Lock()
	for i, t := range texts {
		if chunks, ok := c.memo[t]; ok {
			out[i] = chunks
		} else if !pending[t] {
			pending[t] = true
			missing = append(missing, t)
		}
	}
	c.mu.Unlock()

	if len(missing) > 0 {
		got, err := c.post(ctx, missing)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		for i, t := range missing {
			c.memo[t] = FilterPronouns(got[i])
		}
		for i, t := range texts {
			if out[i] == nil {
				out[i] = c.memo[t]
			}
		}
		c.mu.Unlock()
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, texts []string) ([][]string, error) {
	body, err := json.Marshal(chunkRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/noun-chunks", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotate: noun-chunks: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("annotate: noun-chunks: http %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	var cr chunkResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("annotate: decode response: %w", err)
	}
	if len(cr.Chunks) != len(texts) {
		return nil, fmt.Errorf("annotate: sent %d texts, got %d chunk lists", len(texts), len(cr.Chunks))
	}
	c.log.WithField("texts", len(texts)).Debug("noun chunks fetched")
	return cr.Chunks, nil
}
