package proxyrotation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadflow-server/internal/observability"

	"github.com/google/uuid"
)

var (
	ErrNoProxyAvailable = errors.New("provider returned no proxy")
	ErrProbeFailed      = errors.New("proxy probe failed")
)

const probeURL = "https://api.ipify.org?format=json"

// ProxyConfig is the connection block handed to the browser worker.
type ProxyConfig struct {
	Server   string `json:"server"`
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
}

// ProxyDetails is a freshly provisioned rotating proxy endpoint.
type ProxyDetails struct {
	Config           ProxyConfig
	SessionID        string
	OriginalUsername string
}

// ipsResponse represents the provider's /v1/ips payload
type ipsResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data []struct {
		IP   string `json:"ip"`
		Port int    `json:"port"`
	} `json:"data"`
}

// Client requests rotating proxy endpoints from the provider's local API
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	logger     *observability.Logger
}

func NewClient(baseURL, username, password string, logger *observability.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		username: username,
		password: password,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// GetProxy requests one endpoint scoped to the given country. Each call
// carries a fresh session ID so the provider hands out a distinct exit IP.
func (c *Client) GetProxy(ctx context.Context, country string, countryCode string) (ProxyDetails, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "proxy_country", Value: countryCode},
	)

	endpoint := fmt.Sprintf(
		"%s/v1/ips?num=1&country=%s&state=all&city=all&zip=all&t=json&isp=all&start=&end=",
		strings.TrimRight(c.baseURL, "/"),
		url.QueryEscape(strings.ToLower(countryCode)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ProxyDetails{}, fmt.Errorf("failed to create provider request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error(ctx, "proxy provider request failed", err)
		return ProxyDetails{}, fmt.Errorf("failed to reach proxy provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("proxy provider returned status %d", resp.StatusCode)
		c.logger.Error(ctx, "proxy provider request rejected", err)
		return ProxyDetails{}, err
	}

	var payload ipsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error(ctx, "failed to decode proxy provider response", err)
		return ProxyDetails{}, fmt.Errorf("failed to decode provider response: %w", err)
	}
	if payload.Code != 0 || len(payload.Data) == 0 {
		c.logger.Warn(ctx, "proxy provider returned no endpoints")
		return ProxyDetails{}, ErrNoProxyAvailable
	}

	endpointInfo := payload.Data[0]
	if endpointInfo.IP == "" || endpointInfo.Port == 0 {
		return ProxyDetails{}, ErrNoProxyAvailable
	}

	sessionID := uuid.New().String()
	// The provider scopes credentials by zone and region; the session
	// suffix pins this checkout to one exit IP.
	sessionUsername := fmt.Sprintf("%s-zone-custom-region-%s-session-%s",
		c.username, strings.ToUpper(countryCode), sessionID)

	details := ProxyDetails{
		Config: ProxyConfig{
			Server:   fmt.Sprintf("http://%s:%d", endpointInfo.IP, endpointInfo.Port),
			Username: sessionUsername,
			Password: c.password,
			Host:     endpointInfo.IP,
			Port:     endpointInfo.Port,
		},
		SessionID:        sessionID,
		OriginalUsername: c.username,
	}

	c.logger.Info(ctx, "provisioned proxy endpoint")
	return details, nil
}

// Probe issues a plain GET through the proxy to confirm the endpoint
// actually relays traffic.
func (c *Client) Probe(ctx context.Context, cfg ProxyConfig) error {
	proxyURL, err := url.Parse(cfg.Server)
	if err != nil {
		return fmt.Errorf("invalid proxy server url %q: %w", cfg.Server, err)
	}
	if cfg.Username != "" {
		proxyURL.User = url.UserPassword(cfg.Username, cfg.Password)
	}

	transport := &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
	}
	client := &http.Client{
		Transport: transport,
		Timeout:   15 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create probe request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProbeFailed, err)
	}
	defer resp.Body.Close()
	// Drain so the transport can reuse the connection.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrProbeFailed, resp.StatusCode)
	}
	return nil
}
