// Package source reads exported configuration documents from local files or
// over HTTP.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kiltia/showroom/config"

	"github.com/avast/retry-go/v4"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"resty.dev/v3"
)

var (
	ErrClientError = errors.New("client error from remote source")
	ErrServerError = errors.New("server error from remote source")
	ErrTooLarge    = errors.New("document exceeds size limit")
)

// Loader fetches the text of an exported document. It never imports
// anything itself; callers hand the text to the store.
type Loader struct {
	cfg     config.SourceConfig
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

func New(cfg config.SourceConfig) *Loader {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(zap.S())

	l := &Loader{
		cfg:    cfg,
		client: client,
	}
	cb := cfg.CircuitBreaker
	l.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "source",
		MaxRequests: cb.MaxRequests,
		Interval:    cb.Interval,
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return cb.Enabled && counts.ConsecutiveFailures > cb.ConsecutiveFailure
		},
		// A missing document says nothing about the health of the remote.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrClientError)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.S().Warnw(
				"circuit breaker changed state",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
	return l
}

func (l *Loader) Close() error {
	return l.client.Close()
}

// IsRemote reports whether location is fetched over HTTP.
func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://")
}

// Load returns the content found at location: an http(s) URL or a local
// path, optionally prefixed with file://.
func (l *Loader) Load(ctx context.Context, location string) (string, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return "", errors.New("empty location")
	}
	if IsRemote(location) {
		data, err := l.fetch(ctx, location)
		if err != nil {
			return "", fmt.Errorf("fetching %s: %w", location, err)
		}
		return string(data), nil
	}
	data, err := l.readFile(strings.TrimPrefix(location, "file://"))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", location, err)
	}
	return string(data), nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := io.Reader(f)
	if l.cfg.MaxSize > 0 {
		r = io.LimitReader(f, l.cfg.MaxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if l.cfg.MaxSize > 0 && int64(len(data)) > l.cfg.MaxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	return retry.DoWithData(
		func() ([]byte, error) {
			return l.breaker.Execute(func() ([]byte, error) {
				return l.get(ctx, url)
			})
		},
		retry.Context(ctx),
		retry.Attempts(l.cfg.NumRetries+1),
		retry.Delay(l.cfg.MinWaitTime),
		retry.MaxDelay(l.cfg.MaxWaitTime),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(retryable),
		retry.OnRetry(func(n uint, err error) {
			zap.S().Debugw(
				"retrying source request",
				"url", url,
				"attempt", n+1,
				"error", err,
			)
		}),
	)
}

func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := l.client.R().WithContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	status := resp.StatusCode()
	if status > 399 && status < 500 {
		return nil, fmt.Errorf("%w: status %d", ErrClientError, status)
	}
	if status > 499 {
		return nil, fmt.Errorf("%w: status %d", ErrServerError, status)
	}
	body := resp.Bytes()
	if l.cfg.MaxSize > 0 && int64(len(body)) > l.cfg.MaxSize {
		return nil, ErrTooLarge
	}
	return body, nil
}

func retryable(err error) bool {
	switch {
	case errors.Is(err, ErrClientError),
		errors.Is(err, ErrTooLarge),
		errors.Is(err, gobreaker.ErrOpenState),
		errors.Is(err, gobreaker.ErrTooManyRequests),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
