package butler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// HTTPProvider implements Registry against a butler registry REST service.
type HTTPProvider struct {
	BaseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string) Registry {
	return &HTTPProvider{
		BaseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (p *HTTPProvider) URI() string {
	return p.BaseURL
}

func (p *HTTPProvider) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s?%s", p.BaseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("butler registry error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	return json.Unmarshal(bodyBytes, out)
}

func (p *HTTPProvider) FindExposure(ctx context.Context, instrument, obsID string) (*ExposureRecord, error) {
	params := url.Values{}
	params.Set("instrument", instrument)
	params.Set("obs_id", obsID)
	params.Set("limit", "2")

	var records []*ExposureRecord
	if err := p.get(ctx, "/exposures", params, &records); err != nil {
		return nil, err
	}

	switch len(records) {
	case 0:
		return nil, fmt.Errorf("%w: instrument=%s obs_id=%s registry=%s",
			ErrExposureNotFound, instrument, obsID, p.BaseURL)
	case 1:
		return records[0], nil
	default:
		return nil, fmt.Errorf("found %d > 1 exposures with instrument=%s and obs_id=%s in registry=%s; is the registry corrupt?",
			len(records), instrument, obsID, p.BaseURL)
	}
}

func (p *HTTPProvider) FindExposures(ctx context.Context, query Query) ([]*ExposureRecord, error) {
	params := url.Values{}
	params.Set("instrument", query.Instrument)

	setInt := func(key string, value *int) {
		if value != nil {
			params.Set(key, strconv.Itoa(*value))
		}
	}
	setInt("min_day_obs", query.MinDayObs)
	setInt("max_day_obs", query.MaxDayObs)
	setInt("min_seq_num", query.MinSeqNum)
	setInt("max_seq_num", query.MaxSeqNum)

	for _, name := range query.GroupNames {
		params.Add("group_names", name)
	}
	for _, reason := range query.ObservationReasons {
		params.Add("observation_reasons", reason)
	}
	for _, typ := range query.ObservationTypes {
		params.Add("observation_types", typ)
	}

	// Timespan overlap: the registry matches timespan_end > min_date and
	// timespan_begin <= max_date.
	if query.MinDate != nil {
		params.Set("min_date", query.MinDate.Format(time.RFC3339Nano))
	}
	if query.MaxDate != nil {
		params.Set("max_date", query.MaxDate.Format(time.RFC3339Nano))
	}

	for _, field := range query.OrderBy {
		params.Add("order_by", field)
	}
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("limit", strconv.Itoa(query.Limit))

	var records []*ExposureRecord
	if err := p.get(ctx, "/exposures", params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *HTTPProvider) Instruments(ctx context.Context) ([]string, error) {
	var instruments []string
	if err := p.get(ctx, "/instruments", url.Values{}, &instruments); err != nil {
		return nil, err
	}
	return instruments, nil
}
