package model

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sikarir/sikarir-backend/internal/utils"
)

// TFServing calls a TensorFlow Serving predict endpoint over its REST
// API: POST {"instances": [[...]]} and read back {"predictions": [[...]]}.
type TFServing struct {
	url    string
	client *http.Client
}

func NewTFServing(url string, timeout time.Duration) *TFServing {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &TFServing{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

func (t *TFServing) Score(ctx context.Context, features []float64) ([]float64, error) {
	const op = "model.TFServing.Score"

	body, err := json.Marshal(predictRequest{Instances: [][]float64{features}})
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to encode predict request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to build predict request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "model endpoint unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to read model response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, utils.E(utils.CodeUnavailable, op,
			fmt.Sprintf("model endpoint returned status %d", resp.StatusCode), nil)
	}

	var out predictResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, utils.E(utils.CodeUnavailable, op, "failed to decode model response", err)
	}
	if out.Error != "" {
		return nil, utils.E(utils.CodeUnavailable, op, "model error: "+out.Error, nil)
	}
	if len(out.Predictions) != 1 {
		return nil, utils.E(utils.CodeUnavailable, op,
			fmt.Sprintf("expected 1 prediction row, got %d", len(out.Predictions)), nil)
	}
	return out.Predictions[0], nil
}
