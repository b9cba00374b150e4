package weather

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
)

type openWeather struct {
	endpoint string
	key      string
	httpc    *http.Client
}

// NewOpenWeather queries the current-weather endpoint in metric units.
func NewOpenWeather(endpoint, key string) Provider {
	return &openWeather{endpoint: endpoint, key: key, httpc: &http.Client{Timeout: 10 * time.Second}}
}

type owResp struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    *Wind       `json:"wind"`
}

func (o *openWeather) Current(ctx context.Context, lat, lon float64) (*Report, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("units", "metric")
	q.Set("appid", o.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := o.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("openweather: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out owResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("openweather: decode: %w", err)
	}

	r := &Report{
		Name:    out.Name,
		Main:    Main{Temp: out.Main.Temp, Humidity: out.Main.Humidity},
		Weather: out.Weather,
		Wind:    out.Wind,
		Source:  "openweather",
	}
	if r.Weather == nil {
		r.Weather = []Condition{}
	}
	r.Alerts = Alerts(r)
	return r, nil
}
