package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripscout/backend/internal/domain"
)

// WeatherService fetches multi-day forecasts. It uses the free Open-Meteo
// API (no key required) with Nominatim geocoding, and falls back to a
// synthetic forecast when the network is unavailable or a fixture file is
// configured.
type WeatherService struct {
	fixtureFile string
	httpClient  *http.Client
}

// NewWeatherService creates a new weather service. When fixtureFile is
// non-empty, forecasts are loaded from that CSV instead of the live API.
func NewWeatherService(fixtureFile string) *WeatherService {
	return &WeatherService{
		fixtureFile: fixtureFile,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// openMeteoResponse is the subset of the Open-Meteo daily forecast we use.
type openMeteoResponse struct {
	Daily struct {
		Time                 []string  `json:"time"`
		TemperatureMax       []float64 `json:"temperature_2m_max"`
		TemperatureMin       []float64 `json:"temperature_2m_min"`
		PrecipitationSum     []float64 `json:"precipitation_sum"`
		PrecipitationProbMax []float64 `json:"precipitation_probability_max"`
		WindGustsMax         []float64 `json:"windgusts_10m_max"`
	} `json:"daily"`
}

// nominatimResult is one geocoding hit from the OpenStreetMap Nominatim API.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// GetForecast returns a daysAhead-day forecast for a destination. Any
// failure along the live path falls back to mock data.
func (s *WeatherService) GetForecast(ctx context.Context, location string, daysAhead int) (domain.WeatherForecast, error) {
	if daysAhead < 1 {
		daysAhead = 30
	}

	if s.fixtureFile != "" {
		forecast, err := LoadForecastFile(s.fixtureFile, location)
		if err != nil {
			return domain.WeatherForecast{}, err
		}
		return forecast, nil
	}

	lat, lon, err := s.geocode(ctx, location)
	if err != nil {
		return s.getMockForecast(location, daysAhead), nil
	}

	forecast, err := s.fetchOpenMeteo(ctx, location, lat, lon, daysAhead)
	if err != nil {
		return s.getMockForecast(location, daysAhead), nil
	}
	return forecast, nil
}

// geocode resolves a location name to coordinates via Nominatim.
func (s *WeatherService) geocode(ctx context.Context, location string) (float64, float64, error) {
	u := "https://nominatim.openstreetmap.org/search?format=json&q=" + url.QueryEscape(location)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("weather: failed to create geocode request: %w", err)
	}
	// Nominatim requires an identifying user agent.
	req.Header.Set("User-Agent", "tripscout-backend/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("weather: geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("weather: geocode returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("weather: failed to decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("weather: no geocode results for %q", location)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("weather: bad latitude in geocode response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("weather: bad longitude in geocode response: %w", err)
	}
	return lat, lon, nil
}

// fetchOpenMeteo pulls the daily forecast and derives storm flags from
// heavy precipitation or high wind gusts.
func (s *WeatherService) fetchOpenMeteo(ctx context.Context, location string, lat, lon float64, daysAhead int) (domain.WeatherForecast, error) {
	u := fmt.Sprintf(
		"https://api.open-meteo.com/v1/forecast?latitude=%f&longitude=%f"+
			"&daily=temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max,windgusts_10m_max"+
			"&temperature_unit=fahrenheit&windspeed_unit=mph&precipitation_unit=inch"+
			"&timezone=UTC&forecast_days=%d",
		lat, lon, daysAhead,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.WeatherForecast{}, fmt.Errorf("weather: failed to create forecast request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WeatherForecast{}, fmt.Errorf("weather: forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherForecast{}, fmt.Errorf("weather: forecast returned status %d", resp.StatusCode)
	}

	var om openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&om); err != nil {
		return domain.WeatherForecast{}, fmt.Errorf("weather: failed to decode forecast response: %w", err)
	}
	if len(om.Daily.Time) == 0 {
		return domain.WeatherForecast{}, fmt.Errorf("weather: empty forecast for %q", location)
	}

	days := make([]domain.WeatherDay, 0, len(om.Daily.Time))
	for i, raw := range om.Daily.Time {
		date, err := domain.ParseDate(raw)
		if err != nil {
			return domain.WeatherForecast{}, err
		}

		precipSum := floatAt(om.Daily.PrecipitationSum, i)
		precipProb := int(floatAt(om.Daily.PrecipitationProbMax, i))
		gusts := floatAt(om.Daily.WindGustsMax, i)

		// Heavy rain or strong gusts count as storm conditions.
		stormRisk := precipSum > 0.5 || gusts > 35

		var conditions string
		switch {
		case stormRisk && precipProb > 80:
			conditions = "stormy"
		case stormRisk || precipProb > 40:
			conditions = "rainy"
		case precipProb > 20:
			conditions = "cloudy"
		default:
			conditions = "sunny"
		}

		days = append(days, domain.WeatherDay{
			Date:                date,
			TempHigh:            int(floatAt(om.Daily.TemperatureMax, i)),
			TempLow:             int(floatAt(om.Daily.TemperatureMin, i)),
			PrecipitationChance: precipProb,
			StormRisk:           stormRisk,
			Conditions:          conditions,
		})
	}

	return domain.WeatherForecast{
		Location:     location,
		Days:         days,
		StormPeriods: stormPeriodsFrom(days),
		IsMock:       false,
	}, nil
}

// getMockForecast returns a simulated tropical forecast: mostly sunny with
// periodic cloudy and rainy days and one multi-day storm block near the end
// of the horizon.
func (s *WeatherService) getMockForecast(location string, daysAhead int) domain.WeatherForecast {
	today := domain.DateOf(time.Now())
	days := make([]domain.WeatherDay, 0, daysAhead)

	for i := 0; i < daysAhead; i++ {
		date := today.AddDays(i)

		var day domain.WeatherDay
		switch {
		case i >= 26 && i <= 29:
			day = domain.WeatherDay{Date: date, TempHigh: 78, TempLow: 70, PrecipitationChance: 85, StormRisk: true, Conditions: "stormy"}
		case i%7 == 0:
			day = domain.WeatherDay{Date: date, TempHigh: 79, TempLow: 72, PrecipitationChance: 60, Conditions: "rainy"}
		case i%3 == 0:
			day = domain.WeatherDay{Date: date, TempHigh: 82, TempLow: 74, PrecipitationChance: 30, Conditions: "cloudy"}
		default:
			day = domain.WeatherDay{Date: date, TempHigh: 83, TempLow: 73, PrecipitationChance: 15, Conditions: "sunny"}
		}
		days = append(days, day)
	}

	return domain.WeatherForecast{
		Location:     location,
		Days:         days,
		StormPeriods: stormPeriodsFrom(days),
		IsMock:       true,
	}
}

// stormPeriodsFrom merges consecutive storm-flagged days into ranges.
func stormPeriodsFrom(days []domain.WeatherDay) []domain.DateRange {
	var periods []domain.DateRange
	for _, day := range days {
		if !day.StormRisk {
			continue
		}
		if len(periods) > 0 && periods[len(periods)-1].End.AddDays(1).Equal(day.Date) {
			periods[len(periods)-1].End = day.Date
		} else {
			periods = append(periods, domain.DateRange{Start: day.Date, End: day.Date})
		}
	}
	return periods
}

func floatAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
