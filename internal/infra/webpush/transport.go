// Package webpush delivers encrypted Web Push messages signed with VAPID.
package webpush

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"pushsvc/config"
	"pushsvc/internal/domain/entity"
	"pushsvc/internal/domain/service"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/pkg/errors"
)

const maxErrorBodyBytes = 512

// ErrNotConfigured is returned by Ready when VAPID signing material is missing.
var ErrNotConfigured = errors.New("vapid keys and subject must be configured")

type transport struct {
	publicKey  string
	privateKey string
	subject    string
	ttl        int
	httpClient webpush.HTTPClient
}

// NewTransport creates the Web Push transport. Missing keys are reported by
// Ready at send time so the service can still start and answer health checks.
func NewTransport(cfg *config.Config) service.PushTransport {
	return newTransport(cfg, nil)
}

func newTransport(cfg *config.Config, httpClient webpush.HTTPClient) *transport {
	return &transport{
		publicKey:  strings.TrimSpace(cfg.VAPID.PublicKey),
		privateKey: strings.TrimSpace(cfg.VAPID.PrivateKey),
		subject:    strings.TrimSpace(cfg.VAPID.Subject),
		ttl:        cfg.VAPID.TTL,
		httpClient: httpClient,
	}
}

// Ready reports whether the VAPID keypair and subject are configured
func (t *transport) Ready() error {
	if t.publicKey == "" || t.privateKey == "" || t.subject == "" {
		return ErrNotConfigured
	}

	return nil
}

// PublicKey returns the VAPID application server key
func (t *transport) PublicKey() string {
	return t.publicKey
}

// Send encrypts the message for the subscription and posts it to the push service
func (t *transport) Send(ctx context.Context, subscription *entity.PushSubscription, message *service.PushMessage) service.PushOutcome {
	payload, err := json.Marshal(message)
	if err != nil {
		return failed(0, errors.Wrap(err, "failed to encode push payload").Error())
	}

	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}, &webpush.Options{
		HTTPClient:      t.httpClient,
		Subscriber:      t.subject,
		VAPIDPublicKey:  t.publicKey,
		VAPIDPrivateKey: t.privateKey,
		TTL:             t.ttl,
		Urgency:         webpush.UrgencyHigh,
	})
	if err != nil {
		return failed(0, err.Error())
	}
	defer resp.Body.Close()

	return classify(resp)
}

// classify maps the push service response to an outcome.
// 404 and 410 mean the subscription expired or was revoked by the user agent.
func classify(resp *http.Response) service.PushOutcome {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		_, _ = io.Copy(io.Discard, resp.Body)

		return service.PushOutcome{Kind: service.PushDelivered, StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return service.PushOutcome{Kind: service.PushGone, StatusCode: resp.StatusCode, Detail: readDetail(resp)}
	default:
		return failed(resp.StatusCode, readDetail(resp))
	}
}

func readDetail(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = resp.Status
	}

	return detail
}

func failed(status int, detail string) service.PushOutcome {
	return service.PushOutcome{Kind: service.PushFailed, StatusCode: status, Detail: detail}
}
