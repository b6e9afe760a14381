package pulsesdk

import (
	"context"

	"github.com/google/uuid"
	"github.com/imroc/req/v3"
	"github.com/openmined/pulse/internal/health"
)

const (
	pathHealth = "/health"
)

type HealthAPI struct {
	client *req.Client
}

func newHealthAPI(client *req.Client) *HealthAPI {
	return &HealthAPI{
		client: client,
	}
}

// Get performs a single GET /health.
//
// Transport failures are returned as is. A non-2xx status yields ErrFetchFailed.
// A body that does not decode yields the decoder's error. A JSON null body yields (nil, nil).
func (h *HealthAPI) Get(ctx context.Context) (*health.Status, error) {
	res, err := h.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, uuid.NewString()).
		Get(pathHealth)
	if err != nil {
		return nil, err
	}

	if !res.IsSuccessState() {
		return nil, ErrFetchFailed
	}

	body, err := res.ToBytes()
	if err != nil {
		return nil, err
	}

	var status *health.Status
	if err := jsonUnmarshal(body, &status); err != nil {
		return nil, err
	}
	return status, nil
}
