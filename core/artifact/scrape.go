package artifact

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Listing scrapes the artifact directory page and returns the builds it
// links, newest first (page order). Entries that fail to parse are skipped.
func (c *Client) Listing(ctx context.Context) ([]Artifact, error) {
	base, err := url.Parse(c.cfg.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("listing url: %w", err)
	}

	// Random query parameter to bust intermediary caches.
	reqURL := *base
	q := reqURL.Query()
	q.Set(uuid.NewString()[:5], uuid.NewString()[:5])
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing request: unexpected status %s", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("listing page: %w", err)
	}

	return parseListing(doc, base), nil
}

// parseListing extracts artifacts from the anchors matching the page's
// "nav > a.panel-block" layout, skipping the parent-directory entry.
func parseListing(doc *html.Node, base *url.URL) []Artifact {
	var artifacts []Artifact

	for _, nav := range elementsByTag(doc, "nav") {
		for child := nav.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != html.ElementNode || child.Data != "a" || !hasClass(child, "panel-block") {
				continue
			}

			href := attr(child, "href")
			if href == "" || href == ".." {
				continue
			}

			a, ok := parseEntry(child, base, href)
			if !ok {
				continue
			}

			artifacts = append(artifacts, a)
		}
	}

	return artifacts
}

func parseEntry(node *html.Node, base *url.URL, href string) (Artifact, bool) {
	left := findClass(node, "level-left")
	if left == nil {
		return Artifact{}, false
	}

	version, err := strconv.Atoi(nodeText(left))
	if err != nil {
		return Artifact{}, false
	}

	var published time.Time
	if right := findClass(node, "level-right"); right != nil {
		if item := findClass(right, "level-item"); item != nil {
			published = parsePublished(nodeText(item))
		}
	}

	ref, err := url.Parse(href)
	if err != nil {
		return Artifact{}, false
	}

	return Artifact{
		Version:   version,
		Published: published,
		URL:       base.ResolveReference(ref).String(),
	}, true
}

// parsePublished reads the listing's timestamp, which may or may not carry a
// zone suffix. Zone-less values are taken as UTC.
func parsePublished(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func elementsByTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// findClass returns the first descendant carrying the given class.
func findClass(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && hasClass(c, class) {
			return c
		}
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

// nodeText concatenates all text nodes under n, trimmed.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
