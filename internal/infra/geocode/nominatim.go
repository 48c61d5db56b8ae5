package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Nominatim queries an OpenStreetMap Nominatim endpoint. The public
// instance allows one request per second and requires a User-Agent.
type Nominatim struct {
	endpoint  string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
}

func NewNominatim(endpoint, userAgent string) *Nominatim {
	return &Nominatim{
		endpoint:  endpoint,
		userAgent: userAgent,
		http:      &http.Client{Timeout: 10 * time.Second},
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// WithLimit overrides the request rate; tests use rate.Inf.
func (n *Nominatim) WithLimit(l rate.Limit) *Nominatim {
	n.limiter.SetLimit(l)
	return n
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (n *Nominatim) Geocode(ctx context.Context, query string) (float64, float64, bool, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return 0, 0, false, err
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, false, err
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.http.Do(req)
	if err != nil {
		return 0, 0, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("geocoder status %d", resp.StatusCode)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return 0, 0, false, err
	}
	if len(places) == 0 {
		return 0, 0, false, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return 0, 0, false, err
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return 0, 0, false, err
	}
	return lat, lng, true, nil
}
