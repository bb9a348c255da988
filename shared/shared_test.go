package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"hms/shared"
	"hms/shared/constant"
	"hms/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "invalid string returns nil",
			input:    "occupied",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}

				return
			}

			if result == nil {
				t.Fatalf("expected %v, got nil", *tt.expected)
			}

			if *result != *tt.expected {
				t.Errorf("expected %v, got %v", *tt.expected, *result)
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomUpdate struct {
		Number  string  `db:"number"`
		Price   float64 `db:"price"`
		Status  string  `db:"status"`
		Ignored string
	}

	data := roomUpdate{
		Number:  "101",
		Price:   150,
		Ignored: "dropped",
	}

	result := shared.TransformFields(data, "frontdesk")

	if result["number"] != "101" {
		t.Errorf("expected number to be 101, got %v", result["number"])
	}

	if result["price"] != 150.0 {
		t.Errorf("expected price to be 150, got %v", result["price"])
	}

	if _, exists := result["status"]; exists {
		t.Error("zero-valued field should not be included")
	}

	if result[constant.FieldModifiedBy] != "frontdesk" {
		t.Errorf("expected modified_by to be frontdesk, got %v", result[constant.FieldModifiedBy])
	}

	if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
		t.Error("expected modified_at to be a time.Time")
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type userUpdate struct {
		Role   *string `db:"role"`
		Active *bool   `db:"active"`
	}

	role := "staff"
	active := false // zero bool behind a pointer still counts as set

	result := shared.TransformFields(userUpdate{Role: &role, Active: &active}, "admin")

	if !reflect.DeepEqual(result["role"], &role) {
		t.Errorf("expected role pointer, got %v", result["role"])
	}

	if !reflect.DeepEqual(result["active"], &active) {
		t.Errorf("expected active pointer, got %v", result["active"])
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("booking-id", "id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "booking-id",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if got := shared.BuildCacheKey("booking:get", "booking-id"); got != "booking:get:booking-id" {
		t.Errorf("unexpected cache key: %s", got)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "desc"}

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, dto.FilterGroup{})
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, shared.FilterByID("room-id", "room_id", "bookings"))

	if keyA == keyB {
		t.Error("distinct filters must produce distinct cache keys")
	}

	if !strings.HasPrefix(keyA, "booking:gets:2:10") {
		t.Errorf("expected key to embed pagination, got %s", keyA)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
