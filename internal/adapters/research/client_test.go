package research_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/research"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

func TestClient_Hotels_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			w.WriteHeader(200)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"budget_hotels": []any{map[string]any{"name": "Hostel A"}},
			})
		}
	}))
	defer ts.Close()

	cl, err := research.New(ts.URL, "test-key", 100) // high RPS for tests
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := cl.Hotels(ctx, "Lisbon")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := got["budget_hotels"]; !ok {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestClient_Hotels_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl, err := research.New(ts.URL, "test-key", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err = cl.Hotels(ctx, "Atlantis")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_LegacyPathFallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/research/Lisbon/dining" {
			_ = json.NewEncoder(w).Encode(map[string]any{"local_specialties": []any{"Stew"}})
			return
		}
		w.WriteHeader(404)
	}))
	defer ts.Close()

	cl, _ := research.New(ts.URL, "test-key", 100)
	got, err := cl.Dining(context.Background(), "Lisbon")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := got["local_specialties"]; !ok {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestClient_Summary_PostsRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		var body struct {
			Destination string              `json:"destination"`
			Record      domain.TravelRecord `json:"record"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode: %v", err)
		}
		if body.Destination != "Lisbon" || body.Record.Summary != "draft" {
			t.Errorf("unexpected body: %+v", body)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"summary": "Final summary."})
	}))
	defer ts.Close()

	cl, _ := research.New(ts.URL, "test-key", 100)
	got, err := cl.Summary(context.Background(), "Lisbon", domain.TravelRecord{Summary: "draft"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "Final summary." {
		t.Fatalf("summary = %q", got)
	}
}

func TestClient_RequiresKey(t *testing.T) {
	if _, err := research.New("http://localhost", "", 5); err == nil {
		t.Fatalf("expected error for missing key")
	}
}

func TestDemoSource_Deterministic(t *testing.T) {
	src := research.NewDemoSource()
	ctx := context.Background()

	a, err := src.Hotels(ctx, "Lisbon")
	if err != nil {
		t.Fatalf("Hotels: %v", err)
	}
	b, _ := src.Hotels(ctx, "Lisbon")
	ja, _ := json.Marshal(a)
	jb, _ := json.Marshal(b)
	if string(ja) != string(jb) {
		t.Fatalf("demo hotels not deterministic")
	}

	sum, err := src.Summary(ctx, "Lisbon", domain.TravelRecord{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum == "" {
		t.Fatalf("empty demo summary")
	}
}

func TestDemoSource_KnownCityOverlay(t *testing.T) {
	src := research.NewDemoSource()
	ctx := context.Background()

	firstMustSee := func(dest string) string {
		p, err := src.Activities(ctx, dest)
		if err != nil {
			t.Fatalf("Activities(%s): %v", dest, err)
		}
		items, ok := p["must_see_attractions"].([]any)
		if !ok || len(items) == 0 {
			t.Fatalf("Activities(%s): no must_see_attractions", dest)
		}
		obj, ok := items[0].(map[string]any)
		if !ok {
			t.Fatalf("Activities(%s): first item not an object", dest)
		}
		name, _ := obj["name"].(string)
		return name
	}

	if got := firstMustSee("Paris, France"); got != "Eiffel Tower" {
		t.Fatalf("Paris headliner = %q", got)
	}
	if got := firstMustSee("Lisbon"); got != "Historic Cathedral" {
		t.Fatalf("generic headliner = %q", got)
	}

	p, err := src.Dining(ctx, "tokyo")
	if err != nil {
		t.Fatalf("Dining: %v", err)
	}
	specs, ok := p["local_specialties"].([]any)
	if !ok || len(specs) == 0 {
		t.Fatalf("no local_specialties")
	}
	if s, _ := specs[0].(string); !strings.Contains(s, "sushi") {
		t.Fatalf("tokyo specialties not applied: %q", specs[0])
	}
}
