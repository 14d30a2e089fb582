package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"farmgate/internal/platform/config"
	"farmgate/internal/registration/models"
)

const defaultSyncTimeout = 10 * time.Second

// HTTPTarget posts plots to one downstream service's /sync/plot endpoint.
// A non-2xx response counts as a rejection, not a transport fault.
type HTTPTarget struct {
	name    string
	baseURL string
	client  *http.Client
}

func NewHTTPTarget(name, baseURL string) *HTTPTarget {
	return &HTTPTarget{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: defaultSyncTimeout},
	}
}

func (t *HTTPTarget) Name() string { return t.name }

func (t *HTTPTarget) SyncPlot(ctx context.Context, plot *models.Plot) (bool, error) {
	payload, err := json.Marshal(plot)
	if err != nil {
		return false, fmt.Errorf("marshal plot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/sync/plot", bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("post plot: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// TargetsFromConfig builds the standard five-target fan-out list in its
// fixed dispatch order.
func TargetsFromConfig(cfg config.SyncTargets) []Target {
	return []Target{
		NewHTTPTarget("events", cfg.Events),
		NewHTTPTarget("soil", cfg.Soil),
		NewHTTPTarget("admin", cfg.Admin),
		NewHTTPTarget("et", cfg.ET),
		NewHTTPTarget("field", cfg.Field),
	}
}
