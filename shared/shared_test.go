package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"seatsafe/shared"
	"seatsafe/shared/constant"
	"seatsafe/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "exact division",
			total:    20,
			limit:    10,
			expected: 2,
		},
		{
			name:     "rounds up on remainder",
			total:    21,
			limit:    10,
			expected: 3,
		},
		{
			name:     "zero total defaults to one page",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit defaults to one page",
			total:    10,
			limit:    0,
			expected: 1,
		},
		{
			name:     "single page",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.CalculateTotalPage(tt.total, tt.limit); got != tt.expected {
				t.Errorf("CalculateTotalPage(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Notes        string `db:"notes"`
		ContactPhone string `db:"contact_phone"`
		NoTag        string
	}

	req := updateRequest{
		Notes: "gate code 1234",
		NoTag: "ignored",
	}

	fields := shared.TransformFields(req, "user-1")

	if fields["notes"] != "gate code 1234" {
		t.Errorf("expected notes to be transformed, got %v", fields["notes"])
	}

	// zero-value fields are omitted so partial updates stay partial
	if _, ok := fields["contact_phone"]; ok {
		t.Error("expected empty contact_phone to be omitted")
	}

	if _, ok := fields["NoTag"]; ok {
		t.Error("expected field without a db tag to be omitted")
	}

	if fields[constant.FieldModifiedBy] != "user-1" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a timestamp")
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("abc-123", "id", "bookings")

	if len(filter.Filters) != 1 {
		t.Fatalf("expected exactly one filter, got %d", len(filter.Filters))
	}

	f, ok := filter.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected a dto.Filter, got %T", filter.Filters[0])
	}

	expected := dto.Filter{
		Field:    "id",
		Value:    "abc-123",
		Operator: dto.FilterOperatorEq,
		Table:    "bookings",
	}

	if !reflect.DeepEqual(f, expected) {
		t.Errorf("expected %+v, got %+v", expected, f)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking", "get", "abc"); got != "booking:get:abc" {
		t.Errorf("expected 'booking:get:abc', got %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{}

	key1 := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	key2 := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	if key1 != key2 {
		t.Error("expected identical inputs to produce identical keys")
	}

	if !strings.HasPrefix(key1, "booking:gets:") {
		t.Errorf("expected key to carry its prefix, got %s", key1)
	}

	otherParams := dto.QueryParams{Page: 2, Limit: 10}
	if key1 == shared.BuildCacheKeyWithQuery("booking:gets", otherParams, filter) {
		t.Error("expected different params to produce different keys")
	}
}
