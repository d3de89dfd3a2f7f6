// Package remote implements the store interfaces over the record-store
// REST API. One Client serves both partitions; partition selection is part
// of the request path.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"mypantry/internal/record"
)

// Client is the HTTP wrapper for the record-store REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a record-store HTTP client. requestsPerSec throttles
// outgoing calls client-side; zero or negative disables throttling.
func NewClient(baseURL, accessToken string, requestsPerSec float64) *Client {
	limiter := rate.NewLimiter(rate.Inf, 0)
	if requestsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSec), int(requestsPerSec)+1)
	}
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{},
		limiter:     limiter,
	}
}

// statusError carries the backend's HTTP status so the store layer can map
// it onto a stable error kind.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("record store API error %d: %s", e.code, e.body)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("failed to pace record store request: %w", err)
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal record store request: %w", err)
		}
		reader = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build record store request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call record store API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return &statusError{code: resp.StatusCode, body: string(raw)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode record store response: %w", err)
		}
	}
	return nil
}

// SaveRecord upserts a record via POST /api/v1/databases/{partition}/records.
func (c *Client) SaveRecord(ctx context.Context, partition string, rec record.Record) (record.Record, error) {
	var saved record.Record
	path := fmt.Sprintf("/api/v1/databases/%s/records", partition)
	if err := c.do(ctx, http.MethodPost, path, rec, &saved); err != nil {
		return record.Record{}, err
	}
	return saved, nil
}

// QueryRequest is the body for POST /api/v1/databases/{partition}/records/query.
type QueryRequest struct {
	RecordType string        `json:"recordType"`
	ZoneID     record.ZoneID `json:"zoneId,omitempty"`
	Filters    []QueryFilter `json:"filters,omitempty"`
}

// QueryFilter is a single equality predicate evaluated by the backend.
type QueryFilter struct {
	Field string            `json:"field"`
	Value record.FieldValue `json:"value"`
}

// QueryRecords runs a predicate query against one partition.
func (c *Client) QueryRecords(ctx context.Context, partition string, req QueryRequest) ([]record.Record, error) {
	var queryResp struct {
		Records []record.Record `json:"records"`
	}
	path := fmt.Sprintf("/api/v1/databases/%s/records/query", partition)
	if err := c.do(ctx, http.MethodPost, path, req, &queryResp); err != nil {
		return nil, err
	}
	return queryResp.Records, nil
}

// DeleteRecord removes a record via DELETE /api/v1/databases/{partition}/records/{id}.
func (c *Client) DeleteRecord(ctx context.Context, partition, recordID string, zone record.ZoneID) error {
	path := fmt.Sprintf("/api/v1/databases/%s/records/%s", partition, url.PathEscape(recordID))
	if zone != record.DefaultZone {
		path += "?zone=" + url.QueryEscape(string(zone))
	}
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// CreateZone creates a named zone via POST /api/v1/databases/{partition}/zones.
// The backend answers 409 when the zone already exists.
func (c *Client) CreateZone(ctx context.Context, partition string, zone record.ZoneID) error {
	body := map[string]record.ZoneID{"zoneId": zone}
	path := fmt.Sprintf("/api/v1/databases/%s/zones", partition)
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// ListZones lists the named zones of a partition.
func (c *Client) ListZones(ctx context.Context, partition string) ([]record.ZoneID, error) {
	var zonesResp struct {
		Zones []record.ZoneID `json:"zones"`
	}
	path := fmt.Sprintf("/api/v1/databases/%s/zones", partition)
	if err := c.do(ctx, http.MethodGet, path, nil, &zonesResp); err != nil {
		return nil, err
	}
	return zonesResp.Zones, nil
}

// ShareResponse is the share object returned by the share endpoints.
type ShareResponse struct {
	ID     string `json:"id"`
	ZoneID string `json:"zoneId"`
	Token  string `json:"token"`
	Title  string `json:"title"`
}

// CreateShare creates the share for a zone.
func (c *Client) CreateShare(ctx context.Context, zone record.ZoneID, title string) (ShareResponse, error) {
	var share ShareResponse
	body := map[string]string{"title": title}
	path := fmt.Sprintf("/api/v1/zones/%s/share", url.PathEscape(string(zone)))
	if err := c.do(ctx, http.MethodPost, path, body, &share); err != nil {
		return ShareResponse{}, err
	}
	return share, nil
}

// FetchShare returns a zone's existing share; 404 when it has none.
func (c *Client) FetchShare(ctx context.Context, zone record.ZoneID) (ShareResponse, error) {
	var share ShareResponse
	path := fmt.Sprintf("/api/v1/zones/%s/share", url.PathEscape(string(zone)))
	if err := c.do(ctx, http.MethodGet, path, nil, &share); err != nil {
		return ShareResponse{}, err
	}
	return share, nil
}

// AcceptShare binds the calling identity to the share the token belongs to.
func (c *Client) AcceptShare(ctx context.Context, token string) error {
	body := map[string]string{"token": token}
	return c.do(ctx, http.MethodPost, "/api/v1/shares/accept", body, nil)
}

// ParticipantResponse is one entry of a share's participant list.
type ParticipantResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Permission string `json:"permission"`
}

// ListParticipants returns the identities bound to a zone's share.
func (c *Client) ListParticipants(ctx context.Context, zone record.ZoneID) ([]ParticipantResponse, error) {
	var listResp struct {
		Participants []ParticipantResponse `json:"participants"`
	}
	path := fmt.Sprintf("/api/v1/zones/%s/participants", url.PathEscape(string(zone)))
	if err := c.do(ctx, http.MethodGet, path, nil, &listResp); err != nil {
		return nil, err
	}
	return listResp.Participants, nil
}

// RemoveParticipant unbinds a user from a zone's share; 404 when the user is
// not a participant.
func (c *Client) RemoveParticipant(ctx context.Context, zone record.ZoneID, userID string) error {
	path := fmt.Sprintf("/api/v1/zones/%s/participants/%s",
		url.PathEscape(string(zone)), url.PathEscape(userID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
