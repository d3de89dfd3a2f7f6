package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"mypantry/internal/model"
	"mypantry/internal/record"
	"mypantry/internal/store"
	pkgLog "mypantry/pkg/log"
)

type implStore struct {
	client *Client
	l      pkgLog.Logger
}

// New wraps a Client as the Store/ShareStore implementation used by the
// service layer. Transport failures are wrapped with the store's stable
// error kinds.
func New(client *Client, l pkgLog.Logger) *implStore {
	return &implStore{client: client, l: l}
}

var (
	_ store.Store      = (*implStore)(nil)
	_ store.ShareStore = (*implStore)(nil)
)

func httpStatus(err error) (int, bool) {
	var se *statusError
	if errors.As(err, &se) {
		return se.code, true
	}
	return 0, false
}

func (s *implStore) Save(ctx context.Context, p store.Partition, rec record.Record) (record.Record, error) {
	saved, err := s.client.SaveRecord(ctx, string(p), rec)
	if err != nil {
		s.l.Errorf(ctx, "remote store: save of %s/%s failed: %v", rec.Type, rec.ID, err)
		return record.Record{}, fmt.Errorf("%w: %w", store.ErrWriteFailed, err)
	}
	return saved, nil
}

func (s *implStore) Fetch(ctx context.Context, p store.Partition, q store.Query) ([]record.Record, error) {
	req := QueryRequest{RecordType: q.Type, ZoneID: q.Zone}
	for _, f := range q.Filters {
		req.Filters = append(req.Filters, QueryFilter{Field: f.Field, Value: f.Value})
	}

	recs, err := s.client.QueryRecords(ctx, string(p), req)
	if err != nil {
		s.l.Errorf(ctx, "remote store: query for %s in %s failed: %v", q.Type, p, err)
		return nil, fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
	}
	return recs, nil
}

func (s *implStore) Delete(ctx context.Context, p store.Partition, recordID string, zone record.ZoneID) error {
	err := s.client.DeleteRecord(ctx, string(p), recordID, zone)
	if err == nil {
		return nil
	}
	if code, ok := httpStatus(err); ok && code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", store.ErrNotFound, recordID)
	}
	s.l.Errorf(ctx, "remote store: delete of %s failed: %v", recordID, err)
	return fmt.Errorf("%w: %w", store.ErrWriteFailed, err)
}

func (s *implStore) CreateZone(ctx context.Context, p store.Partition, zone record.ZoneID) error {
	err := s.client.CreateZone(ctx, string(p), zone)
	if err == nil {
		return nil
	}
	// The backend dedupes zones by id; an existing zone is not a failure.
	if code, ok := httpStatus(err); ok && code == http.StatusConflict {
		s.l.Debugf(ctx, "remote store: zone %s already exists", zone)
		return nil
	}
	s.l.Errorf(ctx, "remote store: create zone %s failed: %v", zone, err)
	return fmt.Errorf("%w: %w", store.ErrZoneCreateFailed, err)
}

func (s *implStore) ListZones(ctx context.Context, p store.Partition) ([]record.ZoneID, error) {
	zones, err := s.client.ListZones(ctx, string(p))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
	}
	return zones, nil
}

func (s *implStore) CreateShare(ctx context.Context, zone record.ZoneID, title string) (model.ShareHandle, error) {
	share, err := s.client.CreateShare(ctx, zone, title)
	if err != nil {
		s.l.Errorf(ctx, "remote store: create share for zone %s failed: %v", zone, err)
		return model.ShareHandle{}, fmt.Errorf("%w: %w", store.ErrShareCreateFailed, err)
	}
	return shareToHandle(share), nil
}

func (s *implStore) FetchShare(ctx context.Context, zone record.ZoneID) (model.ShareHandle, error) {
	share, err := s.client.FetchShare(ctx, zone)
	if err == nil {
		return shareToHandle(share), nil
	}
	if code, ok := httpStatus(err); ok && code == http.StatusNotFound {
		return model.ShareHandle{}, fmt.Errorf("%w: zone %q", store.ErrShareNotFound, zone)
	}
	return model.ShareHandle{}, fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
}

func (s *implStore) AcceptShare(ctx context.Context, token string) error {
	if err := s.client.AcceptShare(ctx, token); err != nil {
		s.l.Errorf(ctx, "remote store: accept share failed: %v", err)
		return fmt.Errorf("%w: %w", store.ErrAcceptFailed, err)
	}
	return nil
}

func (s *implStore) ListParticipants(ctx context.Context, zone record.ZoneID) ([]model.Participant, error) {
	participants, err := s.client.ListParticipants(ctx, zone)
	if err != nil {
		if code, ok := httpStatus(err); ok && code == http.StatusNotFound {
			return nil, fmt.Errorf("%w: zone %q", store.ErrShareNotFound, zone)
		}
		return nil, fmt.Errorf("%w: %w", store.ErrQueryFailed, err)
	}

	out := make([]model.Participant, 0, len(participants))
	for _, p := range participants {
		out = append(out, model.Participant{
			UserID:     p.UserID,
			Name:       p.Name,
			Permission: model.Permission(p.Permission),
		})
	}
	return out, nil
}

func (s *implStore) RemoveParticipant(ctx context.Context, zone record.ZoneID, userID string) error {
	err := s.client.RemoveParticipant(ctx, zone, userID)
	if err == nil {
		return nil
	}
	if code, ok := httpStatus(err); ok && code == http.StatusNotFound {
		return fmt.Errorf("%w: %s", store.ErrParticipantNotFound, userID)
	}
	return fmt.Errorf("%w: %w", store.ErrWriteFailed, err)
}

func shareToHandle(share ShareResponse) model.ShareHandle {
	return model.ShareHandle{
		ID:    share.ID,
		Zone:  share.ZoneID,
		Token: share.Token,
		Title: share.Title,
	}
}
