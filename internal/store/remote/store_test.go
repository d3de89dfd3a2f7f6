package remote_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mypantry/internal/record"
	"mypantry/internal/store"
	"mypantry/internal/store/remote"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestRemoteStoreRecords(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/databases/private/records", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var rec record.Record
		json.NewDecoder(r.Body).Decode(&rec)
		if rec.ID == "reject" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(rec)
	})

	mux.HandleFunc("/api/v1/databases/private/records/query", func(w http.ResponseWriter, r *http.Request) {
		var req remote.QueryRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.RecordType != "Pantry" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		rec := record.Record{
			Type: "Pantry",
			ID:   "p1",
			Zone: req.ZoneID,
			Fields: record.Fields{
				"name":     record.String("Kitchen"),
				"ownerId":  record.String("alice"),
				"isShared": record.Bool(false),
			},
		}
		json.NewEncoder(w).Encode(map[string]any{"records": []record.Record{rec}})
	})

	mux.HandleFunc("/api/v1/databases/private/records/gone", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/api/v1/databases/private/records/p1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	st := remote.New(remote.NewClient(ts.URL, "test-token", 0), &mockLogger{})
	ctx := context.Background()

	t.Run("Save", func(t *testing.T) {
		rec := record.Record{Type: "Pantry", ID: "p1", Fields: record.Fields{"name": record.String("Kitchen")}}
		saved, err := st.Save(ctx, store.PartitionPrivate, rec)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if saved.ID != "p1" {
			t.Errorf("unexpected id: %s", saved.ID)
		}
		if name, _ := saved.Fields.GetString("name"); name != "Kitchen" {
			t.Errorf("field kind lost across the wire: %q", name)
		}

		// Error path
		_, err = st.Save(ctx, store.PartitionPrivate, record.Record{Type: "Pantry", ID: "reject"})
		if !errors.Is(err, store.ErrWriteFailed) {
			t.Errorf("expected ErrWriteFailed, got %v", err)
		}
	})

	t.Run("Fetch", func(t *testing.T) {
		recs, err := st.Fetch(ctx, store.PartitionPrivate, store.Query{
			Type:    "Pantry",
			Zone:    "SharedPantry-p1",
			Filters: []store.Filter{{Field: "ownerId", Value: record.String("alice")}},
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(recs) != 1 || recs[0].Zone != "SharedPantry-p1" {
			t.Errorf("unexpected records: %+v", recs)
		}

		_, err = st.Fetch(ctx, store.PartitionPrivate, store.Query{Type: "Item"})
		if !errors.Is(err, store.ErrQueryFailed) {
			t.Errorf("expected ErrQueryFailed, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := st.Delete(ctx, store.PartitionPrivate, "p1", record.DefaultZone); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}

		// 404 maps to the stable not-found kind.
		err := st.Delete(ctx, store.PartitionPrivate, "gone", record.DefaultZone)
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRemoteStoreZones(t *testing.T) {
	createCalls := 0
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/databases/private/zones", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			createCalls++
			if createCalls > 1 {
				// The backend dedupes zones by id.
				w.WriteHeader(http.StatusConflict)
				return
			}
			w.WriteHeader(http.StatusCreated)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"zones": []record.ZoneID{"SharedPantry-p1"}})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	st := remote.New(remote.NewClient(ts.URL, "test-token", 0), &mockLogger{})
	ctx := context.Background()

	t.Run("CreateZone is idempotent across 409", func(t *testing.T) {
		if err := st.CreateZone(ctx, store.PartitionPrivate, "SharedPantry-p1"); err != nil {
			t.Fatalf("first create: %v", err)
		}
		if err := st.CreateZone(ctx, store.PartitionPrivate, "SharedPantry-p1"); err != nil {
			t.Fatalf("second create should absorb 409: %v", err)
		}
		if createCalls != 2 {
			t.Errorf("expected 2 backend calls, got %d", createCalls)
		}
	})

	t.Run("ListZones", func(t *testing.T) {
		zones, err := st.ListZones(ctx, store.PartitionPrivate)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(zones) != 1 || zones[0] != "SharedPantry-p1" {
			t.Errorf("unexpected zones: %v", zones)
		}
	})
}

func TestRemoteStoreShares(t *testing.T) {
	shareCreated := false
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/zones/SharedPantry-p1/share", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			shareCreated = true
			json.NewEncoder(w).Encode(remote.ShareResponse{
				ID: "share-1", ZoneID: "SharedPantry-p1", Token: "tok-1", Title: "Kitchen",
			})
			return
		}
		if !shareCreated {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(remote.ShareResponse{
			ID: "share-1", ZoneID: "SharedPantry-p1", Token: "tok-1", Title: "Kitchen",
		})
	})

	mux.HandleFunc("/api/v1/shares/accept", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["token"] != "tok-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/api/v1/zones/SharedPantry-p1/participants", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"participants": []remote.ParticipantResponse{
				{UserID: "bob", Name: "Bob", Permission: "readWrite"},
			},
		})
	})
	mux.HandleFunc("/api/v1/zones/SharedPantry-p1/participants/bob", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/v1/zones/SharedPantry-p1/participants/carol", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	st := remote.New(remote.NewClient(ts.URL, "test-token", 0), &mockLogger{})
	ctx := context.Background()

	t.Run("FetchShare before create reports not found", func(t *testing.T) {
		_, err := st.FetchShare(ctx, "SharedPantry-p1")
		if !errors.Is(err, store.ErrShareNotFound) {
			t.Errorf("expected ErrShareNotFound, got %v", err)
		}
	})

	t.Run("CreateShare then FetchShare", func(t *testing.T) {
		handle, err := st.CreateShare(ctx, "SharedPantry-p1", "Kitchen")
		if err != nil {
			t.Fatalf("create share: %v", err)
		}
		if handle.ID != "share-1" || handle.Token != "tok-1" || handle.Zone != "SharedPantry-p1" {
			t.Errorf("unexpected handle: %+v", handle)
		}

		fetched, err := st.FetchShare(ctx, "SharedPantry-p1")
		if err != nil {
			t.Fatalf("fetch share: %v", err)
		}
		if fetched.ID != handle.ID {
			t.Errorf("share changed between create and fetch: %+v", fetched)
		}
	})

	t.Run("AcceptShare", func(t *testing.T) {
		if err := st.AcceptShare(ctx, "tok-1"); err != nil {
			t.Fatalf("accept: %v", err)
		}
		err := st.AcceptShare(ctx, "bogus")
		if !errors.Is(err, store.ErrAcceptFailed) {
			t.Errorf("expected ErrAcceptFailed, got %v", err)
		}
	})

	t.Run("Participants", func(t *testing.T) {
		participants, err := st.ListParticipants(ctx, "SharedPantry-p1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(participants) != 1 || participants[0].UserID != "bob" {
			t.Errorf("unexpected participants: %+v", participants)
		}

		if err := st.RemoveParticipant(ctx, "SharedPantry-p1", "bob"); err != nil {
			t.Fatalf("remove: %v", err)
		}
		err = st.RemoveParticipant(ctx, "SharedPantry-p1", "carol")
		if !errors.Is(err, store.ErrParticipantNotFound) {
			t.Errorf("expected ErrParticipantNotFound, got %v", err)
		}
	})
}
