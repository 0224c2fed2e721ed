package query_test

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/tasmimahana/cse470/internal/query"
)

func TestBuild_SkipsAbsentAndBlankParams(t *testing.T) {
	spec := query.Build(query.Map{"status": "  ", "species": ""}, query.PetRules)
	if !spec.Empty() {
		t.Fatalf("expected empty spec, got %+v", spec)
	}
}

func TestBuild_PetFilters(t *testing.T) {
	params := url.Values{}
	params.Set("status", "Available")
	params.Set("approved", "true")
	params.Set("search", "bUd")

	spec := query.Build(params, query.PetRules)
	if len(spec.Conditions) != 3 {
		t.Fatalf("expected 3 conditions, got %d", len(spec.Conditions))
	}

	status := spec.Conditions[0]
	if status.Kind != query.Exact || status.Field != "status" || status.Value != "available" {
		t.Fatalf("unexpected status condition: %+v", status)
	}

	approved := spec.Conditions[1]
	if approved.Value != true {
		t.Fatalf("expected approved coerced to bool true, got %#v", approved.Value)
	}

	search := spec.Conditions[2]
	if search.Kind != query.Substring || search.Term != "bud" {
		t.Fatalf("unexpected search condition: %+v", search)
	}
	if !reflect.DeepEqual(search.Fields, []string{"name", "species", "breed"}) {
		t.Fatalf("unexpected search fields: %v", search.Fields)
	}
}

func TestBuild_BoolCoercion(t *testing.T) {
	tests := []struct {
		raw    string
		want   any
		exists bool
	}{
		{"true", true, true},
		{"FALSE", false, true},
		{"yes", nil, false},
	}

	for _, tt := range tests {
		spec := query.Build(query.Map{"read": tt.raw}, query.NotificationRules)
		if !tt.exists {
			if !spec.Empty() {
				t.Fatalf("%q: expected no condition, got %+v", tt.raw, spec)
			}
			continue
		}
		if len(spec.Conditions) != 1 || spec.Conditions[0].Value != tt.want {
			t.Fatalf("%q: unexpected spec %+v", tt.raw, spec)
		}
	}
}

func TestBuild_IsDeterministic(t *testing.T) {
	params := query.Map{"paymentStatus": "successful", "search": "Shelter"}
	a := query.Build(params, query.DonationRules)
	b := query.Build(params, query.DonationRules)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical specs, got %+v and %+v", a, b)
	}

	related := a.Conditions[1]
	if related.Kind != query.RelatedSubstring || related.Related == nil || related.Related.Table != "users" {
		t.Fatalf("unexpected related condition: %+v", related)
	}
}
