package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/pitchside/newsletter-service/internal/auth"
	"github.com/pitchside/newsletter-service/internal/dto"
	"github.com/pitchside/newsletter-service/internal/selection"
)

type endpoint string

const (
	NewsletterEndpoint  endpoint = "%s/newsletters/%d"
	BulkPublishEndpoint endpoint = "%s/newsletters/bulk/publish"
	BulkDeleteEndpoint  endpoint = "%s/newsletters/bulk/delete"
	BulkPreviewEndpoint endpoint = "%s/newsletters/bulk/preview"
	RateLimitReset      string   = "X-RateLimit-Reset"
)

type ServiceClientCfg struct {
	BaseUrl string
	Token   string
}

type ServiceClientConfigurator interface {
	GetServiceClientCfg() (ServiceClientCfg, error)
}

type AuthProvider interface {
	AddAuth(req *http.Request) error
}

type noAuthFunc func(req *http.Request) error

func (f noAuthFunc) AddAuth(req *http.Request) error {
	return f(req)
}

// NoAuth is an AuthProvider implementation that should be used when the
// newsletter service has authentication disabled. It adds a mock user
// ID to requests.
var NoAuth noAuthFunc = func(req *http.Request) error {
	req.Header.Set(string(auth.UserHeader), "mock-user-id")
	return nil
}

// BearerTokenProvider adds a pre-issued service token to requests. The
// token carries the newsletters/service scope and is validated by the
// service like any other JWT.
type BearerTokenProvider struct {
	token string
}

func (p *BearerTokenProvider) AddAuth(req *http.Request) error {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.token))
	return nil
}

type NewsletterClient struct {
	AuthProvider      AuthProvider
	NewsletterService string
	NumRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
}

func NewNewsletterClient(c ServiceClientConfigurator) (*NewsletterClient, error) {

	cfg, err := c.GetServiceClientCfg()

	if err != nil {
		return nil, fmt.Errorf("failed to get service client config - %w", err)
	}

	var provider AuthProvider = NoAuth

	if cfg.Token != "" {
		provider = &BearerTokenProvider{token: cfg.Token}
	}

	client := NewsletterClient{
		AuthProvider:      provider,
		NewsletterService: cfg.BaseUrl,
		NumRetries:        3,
		BaseDelay:         100 * time.Millisecond,
		MaxDelay:          5 * time.Second,
	}

	return &client, nil
}

func exponentialBackoffWithJitter(attempt int, baseDelay, maxDelay time.Duration) time.Duration {

	expDelay := time.Duration(math.Pow(2, float64(attempt))) * baseDelay

	jitter := expDelay / 2
	jitterInMs := jitter.Milliseconds()

	delay := min(expDelay-jitter+time.Duration(rand.Int63n(jitterInMs)), maxDelay)

	return delay
}

func (c *NewsletterClient) DoRequestWithBackoff(req *http.Request, retry int) (*http.Response, error) {

	res, err := http.DefaultClient.Do(req)

	if err != nil {
		return res, fmt.Errorf("error sending request - %w", err)
	}

	if res.StatusCode == http.StatusTooManyRequests && retry < c.NumRetries {
		retryAfter := res.Header.Get(RateLimitReset)
		sleepMs, err := strconv.ParseInt(retryAfter, 10, 64)

		if err != nil {
			return res, fmt.Errorf("error parsing retry-after header - %w", err)
		}

		time.Sleep(time.Duration(sleepMs+10) * time.Millisecond)
		return c.DoRequestWithBackoff(req, retry+1)
	}

	if res.StatusCode >= 500 && retry < c.NumRetries {
		sleep := exponentialBackoffWithJitter(
			retry,
			c.BaseDelay,
			c.MaxDelay)

		time.Sleep(sleep)
		return c.DoRequestWithBackoff(req, retry+1)
	}

	if res.StatusCode != http.StatusOK {
		return res, fmt.Errorf("error response from server - %s", res.Status)
	}

	return res, nil
}

func (c *NewsletterClient) GetNewsletter(ctx context.Context, id int64) (dto.NewsletterResp, error) {

	newsletter := dto.NewsletterResp{}

	url := fmt.Sprintf(
		string(NewsletterEndpoint),
		c.NewsletterService, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return newsletter, fmt.Errorf("error creating request - %w", err)
	}

	err = c.AuthProvider.AddAuth(req)

	if err != nil {
		return newsletter, fmt.Errorf("error adding auth to request - %w", err)
	}

	res, err := c.DoRequestWithBackoff(req, 0)

	if err != nil {
		return newsletter, fmt.Errorf("error sending request - %w", err)
	}

	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&newsletter); err != nil {
		return newsletter, fmt.Errorf("error unmarshalling the newsletter - %w", err)
	}

	return newsletter, nil
}

// BulkPublish publishes the selection described by the payload. Payloads
// come from selection.Resolve so that admin tooling and the service agree
// on how filter state turns into a concrete selection.
func (c *NewsletterClient) BulkPublish(ctx context.Context, payload selection.Payload) (dto.BulkOutcomeResp, error) {
	return c.postSelection(ctx, BulkPublishEndpoint, payload)
}

// BulkDelete deletes the selection described by the payload.
func (c *NewsletterClient) BulkDelete(ctx context.Context, payload selection.Payload) (dto.BulkOutcomeResp, error) {
	return c.postSelection(ctx, BulkDeleteEndpoint, payload)
}

// BulkPreview requests admin preview e-mails for the selection described
// by the payload.
func (c *NewsletterClient) BulkPreview(ctx context.Context, payload selection.Payload) (dto.BulkOutcomeResp, error) {
	return c.postSelection(ctx, BulkPreviewEndpoint, payload)
}

func (c *NewsletterClient) postSelection(ctx context.Context, e endpoint, payload selection.Payload) (dto.BulkOutcomeResp, error) {

	outcome := dto.BulkOutcomeResp{}

	target, err := json.Marshal(payload.Body)

	if err != nil {
		return outcome, fmt.Errorf("error marshalling the selection - %w", err)
	}

	body, err := json.Marshal(dto.BulkActionReq{Selection: target})

	if err != nil {
		return outcome, fmt.Errorf("error marshalling the request - %w", err)
	}

	url := fmt.Sprintf(string(e), c.NewsletterService)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))

	if err != nil {
		return outcome, fmt.Errorf("error creating request - %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	err = c.AuthProvider.AddAuth(req)

	if err != nil {
		return outcome, fmt.Errorf("error adding auth to request - %w", err)
	}

	res, err := c.DoRequestWithBackoff(req, 0)

	if err != nil {
		return outcome, fmt.Errorf("error sending request - %w", err)
	}

	defer res.Body.Close()

	if err := json.NewDecoder(res.Body).Decode(&outcome); err != nil {
		return outcome, fmt.Errorf("error unmarshalling the outcome - %w", err)
	}

	return outcome, nil
}
