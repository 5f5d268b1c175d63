package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/hvacdesign/planload/internal/common"
	"github.com/hvacdesign/planload/internal/vision"
)

func pageImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page-1.png")
	if err := os.WriteFile(path, []byte("\x89PNG fake"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func chatResponse(content string, tokens int) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
		"usage": map[string]any{"total_tokens": tokens},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestRequestStructuredExtraction(t *testing.T) {
	content := `{"rooms":[{"name":"LIVING ROOM","area_sqft":245,"exterior_walls":2}],"confidence":0.82}`
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(chatResponse(content, 1234)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil)
	resp, raw, err := c.RequestStructuredExtraction(context.Background(), vision.ExtractRequest{
		PageImagePath:     pageImage(t),
		ExpectedRoomCount: 6,
	})
	if err != nil {
		t.Fatalf("RequestStructuredExtraction: %v", err)
	}
	if len(resp.Fields.Rooms) != 1 || resp.Fields.Rooms[0].Name != "LIVING ROOM" {
		t.Errorf("rooms = %+v", resp.Fields.Rooms)
	}
	if resp.Fields.ModelConfidence != 0.82 {
		t.Errorf("confidence = %v, want 0.82", resp.Fields.ModelConfidence)
	}
	if resp.TokenCost != 1234 {
		t.Errorf("token cost = %d, want 1234", resp.TokenCost)
	}
	if len(raw) == 0 {
		t.Error("raw JSON not returned")
	}
	// image rode along as a data URL
	msgs := gotBody["messages"].([]any)
	user := msgs[1].(map[string]any)["content"].([]any)
	img := user[1].(map[string]any)["image_url"].(map[string]any)["url"].(string)
	if img == "" || img[:5] != "data:" {
		t.Errorf("image url = %q, want data URL", img)
	}
}

func TestRequestStructuredExtractionSanitizesLenient(t *testing.T) {
	content := `{"rooms":[{"name":"DEN","area_sqft":"120 sq ft"}],"confidence":0.7,"reasoning":"x"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(chatResponse(content, 10)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, LenientJSON: true}, nil)
	resp, _, err := c.RequestStructuredExtraction(context.Background(), vision.ExtractRequest{PageImagePath: pageImage(t)})
	if err != nil {
		t.Fatalf("RequestStructuredExtraction: %v", err)
	}
	if resp.Fields.Rooms[0].AreaSqFt != 120 {
		t.Errorf("area = %v, want 120 after sanitize", resp.Fields.Rooms[0].AreaSqFt)
	}
}

func TestRequestStructuredExtractionFailsLoud(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"schema violation", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(chatResponse(`{"confidence":0.9}`, 5)))
		}},
		{"no choices", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			c := NewClient(Config{APIKey: "k", BaseURL: srv.URL}, nil)
			_, _, err := c.RequestStructuredExtraction(context.Background(), vision.ExtractRequest{PageImagePath: pageImage(t)})
			var visionErr *common.AIVisionError
			if !errors.As(err, &visionErr) {
				t.Fatalf("err = %v, want AIVisionError", err)
			}
		})
	}
}
