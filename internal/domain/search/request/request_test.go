package request

import (
	"errors"
	"testing"

	"github.com/knowhub/seekdex/internal/domain"
)

func TestNew_Valid(t *testing.T) {
	req, err := New("prospect ratings", "report", "fundraising", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query() != "prospect ratings" {
		t.Errorf("Query() = %q", req.Query())
	}
	if req.DocType() != "report" {
		t.Errorf("DocType() = %q", req.DocType())
	}
	if req.Category() != "fundraising" {
		t.Errorf("Category() = %q", req.Category())
	}
	if req.Limit() != 5 {
		t.Errorf("Limit() = %d, want 5", req.Limit())
	}
}

func TestNew_TrimsQuery(t *testing.T) {
	req, err := New("  WPU  ", "", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Query() != "WPU" {
		t.Errorf("Query() = %q, want %q", req.Query(), "WPU")
	}
}

func TestNew_ZeroLimitDefaults(t *testing.T) {
	req, err := New("donors", "", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", req.Limit(), DefaultLimit)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
		limit int
	}{
		{"empty query", "", 10},
		{"whitespace query", "   \t ", 10},
		{"negative limit", "donors", -1},
		{"limit above max", "donors", MaxLimit + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.query, "", "", tt.limit)
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Errorf("New() error = %v, want ErrInvalidQuery", err)
			}
		})
	}
}

func TestFilters(t *testing.T) {
	req, err := New("donors", "report", "fundraising", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f := req.Filters()
	if len(f) != 2 || f["type"] != "report" || f["category"] != "fundraising" {
		t.Errorf("Filters() = %v", f)
	}
}

func TestFilters_EmptyIsNil(t *testing.T) {
	req, err := New("donors", "", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Filters() != nil {
		t.Errorf("Filters() = %v, want nil", req.Filters())
	}
}
