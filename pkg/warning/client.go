package warning

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"disaster-chatbot-be/pkg/corpus"
)

// Record is one deduplicated warning event from the national warning feed.
type Record struct {
	Label       string `json:"label"`
	Datetime    string `json:"datetime"`
	PopupInfo   string `json:"popupInfo"`
	Source      string `json:"source,omitempty"`
	StationCode string `json:"stationCode,omitempty"`
}

// The feed embeds its useful fields inside a popup HTML blob.
var (
	sourceRe  = regexp.MustCompile("detailrain\\(`\\d+`,`(.*?)`,\\d+\\)")
	stationRe = regexp.MustCompile(`Mã trạm:\s*<b>(.*?)</b>`)
)

type feedResponse struct {
	Data []feedGroup `json:"data"`
}

type feedGroup struct {
	Data []Record `json:"data"`
}

// Client fetches warning records from the strapi-backed warning feed.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchLatest pulls the most recent warning entries, flattens the nested
// groups, extracts source and station code from the popup HTML and drops
// duplicate labels.
func (c *Client) FetchLatest(ctx context.Context) ([]Record, error) {
	url := fmt.Sprintf("%s/api/vndms-warnings?sort=datetime:desc&pagination[limit]=24", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch warning feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("warning feed status %d: %s", resp.StatusCode, string(body))
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("decode warning feed: %w", err)
	}

	return flatten(feed), nil
}

func flatten(feed feedResponse) []Record {
	seen := map[string]bool{}
	var records []Record
	for _, group := range feed.Data {
		for _, item := range group.Data {
			if item.Label == "" || seen[item.Label] {
				continue
			}
			seen[item.Label] = true

			if m := sourceRe.FindStringSubmatch(item.PopupInfo); m != nil {
				item.Source = m[1]
			}
			if m := stationRe.FindStringSubmatch(item.PopupInfo); m != nil {
				item.StationCode = m[1]
			}
			records = append(records, item)
		}
	}
	return records
}

// Describe renders the record as a human-readable corpus string.
func (r Record) Describe() string {
	var sb strings.Builder
	sb.WriteString("Cảnh báo: ")
	sb.WriteString(r.Label)
	if r.Datetime != "" {
		sb.WriteString("\nThời gian: ")
		sb.WriteString(r.Datetime)
	}
	if r.StationCode != "" {
		sb.WriteString("\nMã trạm: ")
		sb.WriteString(r.StationCode)
	}
	if r.Source != "" {
		sb.WriteString("\nNguồn: ")
		sb.WriteString(r.Source)
	}
	return sb.String()
}

// Document wraps the record as a structured corpus input; a record is
// embedded as one chunk, never split.
func (r Record) Document() corpus.Document {
	return corpus.Document{
		Source: r.Describe(),
		Kind:   corpus.KindRecord,
	}
}
