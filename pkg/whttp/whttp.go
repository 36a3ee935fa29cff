package whttp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/net/html"
)

type WHTTPHeader struct {
	Name  string
	Value string
}

type WHTTPReq struct {
	URL     string
	Method  string
	Headers []WHTTPHeader
}

type WHTTPRes struct {
	StatusCode int
	HTTPTitle  string
	BodyString string
}

// OK reports whether the status is in the 2xx range.
func (r *WHTTPRes) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode <= 299
}

var (
	defaultClient     *retryablehttp.Client
	defaultClientOnce sync.Once
)

// GetDefaultClient returns the shared retrying client.
func GetDefaultClient() *retryablehttp.Client {
	defaultClientOnce.Do(func() {
		defaultClient = NewClient(2)
	})
	return defaultClient
}

// NewClient builds a retrying client that stays quiet on retries.
func NewClient(retryMax int) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.Logger = log.New(io.Discard, "", 0)
	c.RetryMax = retryMax
	return c
}

// SetupProxy routes the default client through proxy. Useful for debugging.
func SetupProxy(proxy string) error {
	proxyURL, err := url.Parse(proxy)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %w", err)
	}
	GetDefaultClient().HTTPClient.Transport = &http.Transport{
		Proxy: http.ProxyURL(proxyURL),
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}
	return nil
}

func SendHTTPRequest(ctx context.Context, wReq *WHTTPReq, client *retryablehttp.Client) (wRes *WHTTPRes, err error) {
	if client == nil {
		client = GetDefaultClient()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, wReq.Method, wReq.URL, nil)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(req.Host, ":80") {
		req.Host = strings.TrimSuffix(req.Host, ":80")
	} else if strings.HasSuffix(req.Host, ":443") {
		req.Host = strings.TrimSuffix(req.Host, ":443")
	}

	// Set common headers
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:83.0) Gecko/20100101 Firefox/83.0")
	req.Header.Set("Cache-Control", "no-transform")
	req.Header.Set("Accept-Language", "en")

	// Set custom headers
	for _, h := range wReq.Headers {
		req.Header.Set(h.Name, h.Value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	wRes = &WHTTPRes{
		BodyString: string(bodyBytes),
		StatusCode: resp.StatusCode,
	}

	if isHTML(resp.Header.Get("Content-Type"), wRes.BodyString) {
		if title, ok := getHTMLTitle(wRes.BodyString); ok {
			wRes.HTTPTitle = strings.ToValidUTF8(strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(title, "\n", ""), "\r", "")), "")
		}
	}

	return wRes, nil
}

func isHTML(contentType, body string) bool {
	if strings.Contains(strings.ToLower(contentType), "text/html") {
		return true
	}
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "<")
}

func isTitleElement(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "title"
}

func traverse(n *html.Node) (string, bool) {
	if isTitleElement(n) {
		if n.FirstChild != nil {
			return n.FirstChild.Data, true
		}
		return "", true
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		result, ok := traverse(c)
		if ok {
			return result, ok
		}
	}

	return "", false
}

func getHTMLTitle(requestBody string) (string, bool) {
	doc, err := html.Parse(strings.NewReader(requestBody))
	if err != nil {
		return "", false
	}

	return traverse(doc)
}
