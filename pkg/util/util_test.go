// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

func TestPredicatesAreNilSafe(t *testing.T) {
	t.Parallel()
	if got := ComponentsWithoutNames(nil); len(got) != 0 {
		t.Errorf("ComponentsWithoutNames(nil) = %v, want empty", got)
	}
	if got := ComponentsWithoutIdentifiers(nil); len(got) != 0 {
		t.Errorf("ComponentsWithoutIdentifiers(nil) = %v, want empty", got)
	}
	if got := ComponentsWithoutVersionsWithIDs(nil); len(got) != 0 {
		t.Errorf("ComponentsWithoutVersionsWithIDs(nil) = %v, want empty", got)
	}
	if got := ComponentsWithoutSuppliersWithIDs(nil); len(got) != 0 {
		t.Errorf("ComponentsWithoutSuppliersWithIDs(nil) = %v, want empty", got)
	}
	if HasAuthor(nil) || HasTimestamp(nil) || HasDependencyRelationships(nil) {
		t.Errorf("document-level predicates should be false for a nil document")
	}
}

func TestComponentsWithoutNamesReturnsIdentifiers(t *testing.T) {
	t.Parallel()
	doc := &types.Document{
		Packages: []*types.Package{
			{Name: "named", SPDXID: "SPDXRef-named"},
			{Name: "", SPDXID: "SPDXRef-anonymous"},
		},
	}
	want := []string{"SPDXRef-anonymous"}
	if diff := cmp.Diff(want, ComponentsWithoutNames(doc)); diff != "" {
		t.Errorf("ComponentsWithoutNames mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentsWithoutIdentifiersReturnsNames(t *testing.T) {
	t.Parallel()
	doc := &types.Document{
		Packages: []*types.Package{
			{Name: "with-id", SPDXID: "SPDXRef-with-id"},
			{Name: "without-id", SPDXID: ""},
		},
	}
	want := []string{"without-id"}
	if diff := cmp.Diff(want, ComponentsWithoutIdentifiers(doc)); diff != "" {
		t.Errorf("ComponentsWithoutIdentifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestComponentsWithoutVersionsPreservesDocumentOrder(t *testing.T) {
	t.Parallel()
	doc := &types.Document{
		Packages: []*types.Package{
			{Name: "third", SPDXID: "SPDXRef-3", Version: ""},
			{Name: "versioned", SPDXID: "SPDXRef-v", Version: "1.0"},
			{Name: "first", SPDXID: "SPDXRef-1", Version: ""},
		},
	}
	want := []types.ComponentRef{
		{Name: "third", SPDXID: "SPDXRef-3"},
		{Name: "first", SPDXID: "SPDXRef-1"},
	}
	if diff := cmp.Diff(want, ComponentsWithoutVersionsWithIDs(doc)); diff != "" {
		t.Errorf("ComponentsWithoutVersionsWithIDs mismatch (-want +got):\n%s", diff)
	}
}

func TestSupplierFieldStates(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		supplier types.FieldValue
		missing  bool
	}{
		{name: "absent is missing", supplier: types.AbsentField(), missing: true},
		{name: "noassertion is missing", supplier: types.NoAssertionField(), missing: true},
		{name: "value is present", supplier: types.PresentField("Organization: Example"), missing: false},
		{name: "NONE is present", supplier: types.PresentField("NONE"), missing: false},
		{name: "placeholder is present", supplier: types.PresentField("unknown"), missing: false},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			doc := &types.Document{
				Packages: []*types.Package{
					{Name: "pkg", SPDXID: "SPDXRef-pkg", Supplier: test.supplier},
				},
			}
			missing := len(ComponentsWithoutSuppliersWithIDs(doc)) == 1
			if missing != test.missing {
				t.Errorf("supplier %v reported missing=%t, want %t",
					test.supplier, missing, test.missing)
			}
		})
	}
}

func TestHasDependencyRelationships(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		relationships []types.Relationship
		want          bool
	}{
		{
			name: "describes counts",
			relationships: []types.Relationship{
				{RefA: "SPDXRef-DOCUMENT", RefB: "SPDXRef-a", Type: types.RelationshipDescribes},
			},
			want: true,
		},
		{
			name: "depends_on counts",
			relationships: []types.Relationship{
				{RefA: "SPDXRef-a", RefB: "SPDXRef-b", Type: types.RelationshipDependsOn},
			},
			want: true,
		},
		{
			name: "other types do not count",
			relationships: []types.Relationship{
				{RefA: "SPDXRef-a", RefB: "SPDXRef-b", Type: "CONTAINS"},
			},
			want: false,
		},
		{
			name:          "no relationships",
			relationships: nil,
			want:          false,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			doc := &types.Document{Relationships: test.relationships}
			if got := HasDependencyRelationships(doc); got != test.want {
				t.Errorf("HasDependencyRelationships = %t, want %t", got, test.want)
			}
		})
	}
}

func TestHasAuthorAndTimestamp(t *testing.T) {
	t.Parallel()
	doc := &types.Document{
		Creators: []types.Creator{{Type: "Tool", Creator: "sbomtool-1.0"}},
		Created:  "2024-01-02T03:04:05Z",
	}
	if !HasAuthor(doc) {
		t.Errorf("HasAuthor = false for a document with creators")
	}
	if !HasTimestamp(doc) {
		t.Errorf("HasTimestamp = false for a document with a creation time")
	}
	empty := &types.Document{}
	if HasAuthor(empty) || HasTimestamp(empty) {
		t.Errorf("document-level predicates should be false for an empty document")
	}
}
