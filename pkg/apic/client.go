// Package apic retrieves a fabric configuration from a live controller.
package apic

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	loginPath  = "/api/aaaLogin.json"
	configPath = "/api/node/mo/uni.json"

	defaultTimeout = 120 * time.Second
)

// Client is an authenticated controller session. Authentication state lives
// in the session cookie; one Login call covers every later fetch.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the controller at host. Controllers ship
// self-signed certificates, so verification is disabled like every other
// tool talking to them.
func New(host string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "creating cookie jar")
	}
	base := host
	if !strings.HasPrefix(base, "http") {
		base = "https://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, errors.Wrapf(err, "invalid controller host %s", host)
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout: defaultTimeout,
			Jar:     jar,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}, nil
}

// Login authenticates the session.
func (c *Client) Login(ctx context.Context, username, password string) error {
	body, err := json.Marshal(map[string]interface{}{
		"aaaUser": map[string]interface{}{
			"attributes": map[string]string{
				"name": username,
				"pwd":  password,
			},
		},
	})
	if err != nil {
		return errors.Wrap(err, "encoding login request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "building login request")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("login failed: %s", resp.Status)
	}
	klog.V(2).Infof("authenticated against %s", c.baseURL)
	return nil
}

// FetchConfig downloads the full configuration subtree in the flat form,
// configuration properties only.
func (c *Client) FetchConfig(ctx context.Context) ([]byte, error) {
	u := fmt.Sprintf("%s%s?query-target=subtree&rsp-subtree=full&rsp-prop-include=config-only",
		c.baseURL, configPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building config request")
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching configuration")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("configuration fetch failed: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration body")
	}
	klog.V(2).Infof("fetched %d bytes of configuration", len(data))
	return data, nil
}
