package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"mypantry/internal/identity"
	pantryhttp "mypantry/internal/pantry/delivery/http"
	"mypantry/internal/pantry/usecase"
	"mypantry/internal/sharing/broker"
	"mypantry/internal/store/memory"
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

func newRouter(mem *memory.Store, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := &mockLogger{}

	uc := usecase.New(l, mem, broker.New(l, mem, mem))
	h := pantryhttp.New(l, uc, identity.NewStatic(userID))

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/pantries", h.ListPantries)
	api.POST("/pantries", h.CreatePantry)
	api.PUT("/pantries/:id", h.UpdatePantry)
	api.DELETE("/pantries/:id", h.DeletePantry)
	api.POST("/pantries/:id/share", h.SharePantry)
	api.GET("/pantries/:id/participants", h.ListParticipants)
	api.DELETE("/pantries/:id/participants/:userId", h.RemoveParticipant)
	api.POST("/shares/accept", h.AcceptShare)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func TestPantryHandlerAuth(t *testing.T) {
	r := newRouter(memory.New(), "")

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/pantries", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", w.Code)
	}
}

func TestPantryHandlerCRUD(t *testing.T) {
	mem := memory.New()
	r := newRouter(mem, "alice")

	t.Run("create", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/pantries", gin.H{"name": "Kitchen"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
		}
		data := resp["data"].(map[string]any)
		if data["name"] != "Kitchen" || data["owner_id"] != "alice" {
			t.Errorf("data = %+v", data)
		}
		if data["id"] == "" {
			t.Error("no id in response")
		}
	})

	t.Run("create without name rejected", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/pantries", gin.H{})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/pantries", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		data := resp["data"].(map[string]any)
		private := data["private"].([]any)
		if len(private) != 1 {
			t.Errorf("private = %+v", private)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		_, resp := doJSON(t, r, http.MethodPost, "/api/v1/pantries", gin.H{"name": "Garage"})
		id := resp["data"].(map[string]any)["id"].(string)

		w, resp := doJSON(t, r, http.MethodPut, "/api/v1/pantries/"+id, gin.H{"name": "Basement"})
		if w.Code != http.StatusOK {
			t.Fatalf("update status = %d", w.Code)
		}
		if name := resp["data"].(map[string]any)["name"]; name != "Basement" {
			t.Errorf("name = %v", name)
		}

		w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/pantries/"+id, nil)
		if w.Code != http.StatusOK {
			t.Errorf("delete status = %d", w.Code)
		}
	})

	t.Run("unknown pantry id yields 404", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPut, "/api/v1/pantries/ghost", gin.H{"name": "X"})
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestPantryHandlerSharing(t *testing.T) {
	mem := memory.New()
	mem.CurrentUser = "bob"
	r := newRouter(mem, "alice")

	_, resp := doJSON(t, r, http.MethodPost, "/api/v1/pantries", gin.H{"name": "Kitchen"})
	id := resp["data"].(map[string]any)["id"].(string)

	var token string

	t.Run("share", func(t *testing.T) {
		w, resp := doJSON(t, r, http.MethodPost, "/api/v1/pantries/"+id+"/share", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
		}
		data := resp["data"].(map[string]any)
		p := data["pantry"].(map[string]any)
		share := data["share"].(map[string]any)

		if p["is_shared"] != true {
			t.Errorf("pantry = %+v", p)
		}
		if share["zone_id"] != "SharedPantry-"+id {
			t.Errorf("share = %+v", share)
		}
		token = share["token"].(string)
		if token == "" {
			t.Fatal("no token")
		}
	})

	t.Run("accept", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/shares/accept", gin.H{"token": token})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
		}

		w, resp := doJSON(t, r, http.MethodGet, "/api/v1/pantries/"+id+"/participants", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("participants status = %d", w.Code)
		}
		participants := resp["data"].([]any)
		if len(participants) != 1 {
			t.Fatalf("participants = %+v", participants)
		}
		if participants[0].(map[string]any)["user_id"] != "bob" {
			t.Errorf("participants = %+v", participants)
		}
	})

	t.Run("accept with bad token rejected", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/shares/accept", gin.H{"token": "bogus"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("remove participant", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodDelete, "/api/v1/pantries/"+id+"/participants/bob", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		w, _ = doJSON(t, r, http.MethodDelete, "/api/v1/pantries/"+id+"/participants/bob", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("second remove status = %d", w.Code)
		}
	})

	t.Run("participants of an unshared pantry yields 404", func(t *testing.T) {
		_, resp := doJSON(t, r, http.MethodPost, "/api/v1/pantries", gin.H{"name": "Private"})
		privateID := resp["data"].(map[string]any)["id"].(string)

		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/pantries/"+privateID+"/participants", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
	})
}
