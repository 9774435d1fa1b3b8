// Package aladhan fetches daily prayer time tables from the Aladhan API.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/adhan-bot/internal/domain"
	"github.com/diegoclair/adhan-bot/internal/domain/entity"
	"github.com/diegoclair/adhan-bot/internal/geo"
)

const dateLayout = "02-01-2006"

type Config struct {
	BaseURL     string
	Coordinates geo.Coordinates
	Timezone    string
	Method      int
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{cfg: cfg, httpClient: httpClient}
}

type timingsResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

// FetchToday returns the time table of day in the canonical label order.
// Labels missing from the response are returned with an empty time.
func (c *Client) FetchToday(ctx context.Context, day time.Time) (entity.TimeTable, error) {
	endpoint := c.cfg.BaseURL + "/timings/" + day.Format(dateLayout) + "?" + c.query().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", domain.ErrPermanent, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get timings: %w", domain.ErrFetch, err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var body timingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode timings: %w", domain.ErrFetch, err)
	}

	if body.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: aladhan answered code %d (%s)", domain.ErrFetch, body.Code, body.Status)
	}
	if len(body.Data.Timings) == 0 {
		return nil, fmt.Errorf("%w: aladhan answered without timings", domain.ErrFetch)
	}

	table := make(entity.TimeTable, 0, len(domain.Labels))
	for _, label := range domain.Labels {
		table = append(table, entity.Timing{Label: label, Clock: body.Data.Timings[label]})
	}

	return table, nil
}

func (c *Client) query() url.Values {
	return url.Values{
		"latitude":       {strconv.FormatFloat(c.cfg.Coordinates.Latitude, 'f', -1, 64)},
		"longitude":      {strconv.FormatFloat(c.cfg.Coordinates.Longitude, 'f', -1, 64)},
		"timezonestring": {c.cfg.Timezone},
		"method":         {strconv.Itoa(c.cfg.Method)},
	}
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: aladhan returned %s", domain.ErrFetch, resp.Status)
	default:
		return fmt.Errorf("%w: aladhan returned %s", domain.ErrPermanent, resp.Status)
	}
}
