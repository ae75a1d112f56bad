package client

import (
	"context"
	"encoding/json"
	"net/http"

	"hridayavayu/internal/logger"
)

type InhalerStatus struct {
	PuffsLeft    int    `json:"puffsLeft"`
	PuffsToday   int    `json:"puffsToday"`
	LastPuffTime string `json:"lastPuffTime"`
	Connected    bool   `json:"connected"`
}

// Inhaler reads live status from the connected smart-inhaler device
// endpoint.
type Inhaler struct {
	endpoint string
	http     *http.Client
	log      logger.Logger
}

func NewInhaler(endpoint string) *Inhaler {
	return &Inhaler{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
		log:      logger.New("client").File("inhaler"),
	}
}

func (i *Inhaler) Status(ctx context.Context) (*InhalerStatus, error) {
	log := i.log.Function("Status")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, i.endpoint, nil)
	if err != nil {
		return nil, log.Err("failed to build inhaler request", err)
	}

	resp, err := i.http.Do(req)
	if err != nil {
		return nil, log.Err("inhaler status request failed", err, "endpoint", i.endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, log.Error("inhaler source returned non-OK status", "status", resp.StatusCode)
	}

	var status InhalerStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, log.Err("failed to decode inhaler status", err)
	}

	return &status, nil
}
