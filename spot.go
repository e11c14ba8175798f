package bullion

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
)

const spotAPIKeyEnv = "BULLION_SPOT_API_KEY"

var spotAPIFlag = flag.String("spot-api-key", "", "API key for the spot price provider.\n If missing it will be read from the environment variable \""+spotAPIKeyEnv+"\".")

func spotAPIKey() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *spotAPIFlag == "" {
		*spotAPIFlag = os.Getenv(spotAPIKeyEnv)
	}
	return *spotAPIFlag
}

const (
	spotEndpoint = "https://api.metals.dev/v1/latest"
	// spotPath extracts the per-gram gold price from the provider response.
	spotPath = "$.metals.gold"
)

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// The cache key includes today's date, so entries expire daily.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	file := filepath.Join(os.TempDir(), key)
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(data)), req)
}

// put stores a response on disk and rewinds its body.
func (c *diskCache) put(key string, resp *http.Response) error {
	dump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	resp.Body = io.NopCloser(bytes.NewReader(dump[bytes.Index(dump, []byte("\r\n\r\n"))+4:]))
	return os.WriteFile(filepath.Join(os.TempDir(), key), dump, 0644)
}

var spotClient = &http.Client{Transport: &diskCache{base: http.DefaultTransport}}

// FetchSpotPrice returns the current gold spot price per gram in the given
// currency. Responses are cached on disk for the day, so trend callers do not
// hammer the provider.
//
// This is a boundary collaborator: the valuation core never calls it, the CLI
// feeds its result into HoldingReport.WithSpot.
func FetchSpotPrice(currency string) (Money, error) {
	key := spotAPIKey()
	if key == "" {
		return Money{}, fmt.Errorf("no spot API key: set -spot-api-key or %s", spotAPIKeyEnv)
	}

	url := fmt.Sprintf("%s?api_key=%s&currency=%s&unit=g", spotEndpoint, key, currency)
	resp, err := spotClient.Get(url)
	if err != nil {
		return Money{}, fmt.Errorf("could not fetch spot price: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Money{}, fmt.Errorf("spot price provider returned %s", resp.Status)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Money{}, fmt.Errorf("could not decode spot price response: %w", err)
	}
	value, err := jsonpath.Get(spotPath, payload)
	if err != nil {
		return Money{}, fmt.Errorf("unexpected spot price response shape: %w", err)
	}
	price, ok := value.(float64)
	if !ok {
		return Money{}, fmt.Errorf("unexpected spot price value %v", value)
	}
	return M(price, currency), nil
}
