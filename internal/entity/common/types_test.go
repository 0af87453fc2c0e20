package common

import "testing"

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		params    BaseParams
		wantPages int64
		wantPage  int64
		wantLimit int64
	}{
		{name: "exact multiple", total: 20, params: BaseParams{Page: 1, Limit: 10}, wantPages: 2, wantPage: 1, wantLimit: 10},
		{name: "partial last page", total: 25, params: BaseParams{Page: 2, Limit: 10}, wantPages: 3, wantPage: 2, wantLimit: 10},
		{name: "empty", total: 0, params: BaseParams{Page: 1, Limit: 10}, wantPages: 0, wantPage: 1, wantLimit: 10},
		{name: "defaults applied", total: 11, params: BaseParams{}, wantPages: 2, wantPage: 1, wantLimit: DefaultPageLimit},
		{name: "limit clamped", total: 500, params: BaseParams{Page: 1, Limit: 1000}, wantPages: 5, wantPage: 1, wantLimit: MaxPageLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.total, tt.params)
			if meta.Pages != tt.wantPages {
				t.Errorf("expected pages %d, got %d", tt.wantPages, meta.Pages)
			}
			if meta.Page != tt.wantPage {
				t.Errorf("expected page %d, got %d", tt.wantPage, meta.Page)
			}
			if meta.Limit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, meta.Limit)
			}
		})
	}
}

func TestBaseParamsOffset(t *testing.T) {
	p := BaseParams{Page: 2, Limit: 10}
	if got := p.Offset(); got != 10 {
		t.Fatalf("expected offset 10, got %d", got)
	}
	p = BaseParams{Page: 0, Limit: 10}
	if got := p.Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}
