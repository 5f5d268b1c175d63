// Package loadcalc converts a validated building model and climate design
// conditions into Manual J style heating and cooling loads.
package loadcalc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hvacdesign/planload/internal/common"
)

// ClimateData are the design conditions for a site. Treated as authoritative
// and cached upstream; the calculator only reads it.
type ClimateData struct {
	Zone              string  `json:"climate_zone"`
	HeatingDegreeDays int     `json:"heating_degree_days"`
	CoolingDegreeDays int     `json:"cooling_degree_days"`
	WinterDesignTempF float64 `json:"winter_design_temp_f"`
	SummerDesignTempF float64 `json:"summer_design_temp_f"`
	// SummerHumidityGrains is the moisture difference driving latent load,
	// grains of water per pound of dry air above the indoor setpoint.
	SummerHumidityGrains float64 `json:"summer_humidity_grains"`
}

// ClimateProvider resolves a ZIP code to design conditions.
type ClimateProvider interface {
	DesignConditions(ctx context.Context, zip string) (ClimateData, error)
}

// HTTPClimateProvider queries a climate-data service.
type HTTPClimateProvider struct {
	BaseURL string
	Client  *http.Client
	Logger  *slog.Logger
}

func NewHTTPClimateProvider(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPClimateProvider {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClimateProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
		Logger:  logger,
	}
}

func (p *HTTPClimateProvider) DesignConditions(ctx context.Context, zip string) (ClimateData, error) {
	endpoint := fmt.Sprintf("%s/v1/design-conditions?zip=%s", p.BaseURL, url.QueryEscape(zip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ClimateData{}, err
	}
	start := time.Now()
	resp, err := p.Client.Do(req)
	if err != nil {
		p.Logger.Error("climate.request_failed", "zip", zip, "error", err)
		return ClimateData{}, fmt.Errorf("climate service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			p.Logger.Warn("climate.body_close_error", "error", err)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)
	p.Logger.Info("climate.response",
		"zip", zip,
		"status", resp.StatusCode,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	if resp.StatusCode == http.StatusNotFound {
		return ClimateData{}, fmt.Errorf("no design conditions for zip %s: %w", zip, common.ErrNotFound)
	}
	if resp.StatusCode/100 != 2 {
		return ClimateData{}, fmt.Errorf("climate service status %d", resp.StatusCode)
	}
	var data ClimateData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ClimateData{}, fmt.Errorf("decode climate response: %w", err)
	}
	if data.WinterDesignTempF == 0 && data.SummerDesignTempF == 0 {
		return ClimateData{}, fmt.Errorf("climate service returned empty design temperatures for zip %s", zip)
	}
	return data, nil
}

// StaticClimateProvider serves a fixed table, for tests and air-gapped runs.
type StaticClimateProvider struct {
	ByZIP   map[string]ClimateData
	Default *ClimateData
}

func (p *StaticClimateProvider) DesignConditions(_ context.Context, zip string) (ClimateData, error) {
	if d, ok := p.ByZIP[zip]; ok {
		return d, nil
	}
	if p.Default != nil {
		return *p.Default, nil
	}
	return ClimateData{}, fmt.Errorf("no design conditions for zip %s: %w", zip, common.ErrNotFound)
}
