package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
)

// Requester is the subset of *httpclient.Client the endpoints use.
type Requester interface {
	Get(ctx context.Context, path string, out any, opts ...httpclient.RequestOption) error
	Post(ctx context.Context, path string, body httpclient.Body, out any, opts ...httpclient.RequestOption) error
	Patch(ctx context.Context, path string, body httpclient.Body, out any, opts ...httpclient.RequestOption) error
	Delete(ctx context.Context, path string, opts ...httpclient.RequestOption) error
}

type HTTPClient struct {
	http Requester
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(r Requester) *HTTPClient {
	return &HTTPClient{http: r}
}

func imagePath(id int64) string {
	return fmt.Sprintf("/images/%d/", id)
}
