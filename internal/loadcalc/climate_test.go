package loadcalc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hvacdesign/planload/internal/common"
)

func TestStaticClimateProvider(t *testing.T) {
	p := &StaticClimateProvider{
		ByZIP: map[string]ClimateData{"30301": testClimate()},
	}
	got, err := p.DesignConditions(context.Background(), "30301")
	if err != nil {
		t.Fatalf("DesignConditions: %v", err)
	}
	if got.Zone != "4A" {
		t.Errorf("zone = %q, want 4A", got.Zone)
	}

	_, err = p.DesignConditions(context.Background(), "99999")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestHTTPClimateProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/design-conditions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		switch r.URL.Query().Get("zip") {
		case "30301":
			_ = json.NewEncoder(w).Encode(testClimate())
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p := NewHTTPClimateProvider(srv.URL, 0, nil)
	got, err := p.DesignConditions(context.Background(), "30301")
	if err != nil {
		t.Fatalf("DesignConditions: %v", err)
	}
	if got.WinterDesignTempF != 20 || got.SummerDesignTempF != 92 {
		t.Errorf("design temps = %v/%v, want 20/92", got.WinterDesignTempF, got.SummerDesignTempF)
	}

	_, err = p.DesignConditions(context.Background(), "00000")
	if !errors.Is(err, common.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
