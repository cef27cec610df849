package faqclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/yanqian/luan-api/internal/domain/faq"
)

const maxBodyBytes = 32 << 20

var errEmptyPayload = errors.New("upstream returned no data")

// Config locates the upstream FAQ endpoint.
type Config struct {
	BaseURL  string
	Endpoint string
	Timeout  time.Duration
}

// Client fetches the FAQ collection from the upstream provider.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient builds an upstream client. A zero timeout means no client-side limit.
func NewClient(cfg Config) *Client {
	return &Client{
		url: joinURL(cfg.BaseURL, cfg.Endpoint),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// FetchFAQs implements faq.Fetcher. The token is forwarded unmodified.
func (c *Client) FetchFAQs(ctx context.Context, token string) (faq.Collection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build faq request: %w", err)
	}
	for k, v := range authHeaders(token) {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("faq request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("faq request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read faq response: %w", err)
	}

	return decodeCollection(body)
}

func authHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
		"Content-Type":  "application/json",
	}
}

// decodeCollection reads data.result from the upstream envelope. Fields that
// are missing or null become empty strings; non-object entries are skipped.
func decodeCollection(body []byte) (faq.Collection, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("decode faq response: invalid json")
	}
	root := gjson.ParseBytes(body)
	if isEmpty(root) {
		return nil, errEmptyPayload
	}

	items := root.Get("data.result")
	if !items.IsArray() {
		return faq.Collection{}, nil
	}

	out := make(faq.Collection, 0, len(items.Array()))
	items.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		out = append(out, faq.Record{
			Question:            item.Get("question").String(),
			Response:            item.Get("response").String(),
			ClauseName:          item.Get("clauseName").String(),
			DocumentTypeName:    item.Get("documentTypeName").String(),
			SubmittedByUserName: item.Get("submittedByUserName").String(),
		})
		return true
	})
	return out, nil
}

func isEmpty(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return true
	case gjson.String:
		return v.Str == ""
	case gjson.Number:
		return v.Num == 0
	case gjson.JSON:
		if v.IsObject() {
			return len(v.Map()) == 0
		}
		return len(v.Array()) == 0
	default:
		return false
	}
}

func joinURL(base, endpoint string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(endpoint, "/")
}

var _ faq.Fetcher = (*Client)(nil)
