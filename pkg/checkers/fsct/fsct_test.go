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

package fsct

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/sbom-compliance/pkg/checkers/base"
	"github.com/google/sbom-compliance/pkg/checkers/ntia"
	types "github.com/google/sbom-compliance/pkg/checkers/types"
	"github.com/google/sbom-compliance/pkg/testutil"
)

func TestNewRejectsWrongCompliance(t *testing.T) {
	t.Parallel()
	if _, err := New(base.New(nil), "ntia"); err == nil {
		t.Errorf("New accepted the wrong compliance identifier")
	}
}

func TestCompliantDocument(t *testing.T) {
	t.Parallel()
	checker, err := New(base.New(testutil.CompliantDocument()), Compliance)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !checker.CheckCompliance() {
		t.Errorf("CheckCompliance = false for a compliant document")
	}
}

func TestLicensingElementsAffectTheVerdict(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		degrade func(*types.Document)
	}{
		{
			name: "absent concluded license",
			degrade: func(doc *types.Document) {
				doc.Packages[0].ConcludedLicense = types.AbsentField()
			},
		},
		{
			name: "noassertion concluded license",
			degrade: func(doc *types.Document) {
				doc.Packages[0].ConcludedLicense = types.NoAssertionField()
			},
		},
		{
			name: "absent copyright text",
			degrade: func(doc *types.Document) {
				doc.Packages[0].CopyrightText = types.AbsentField()
			},
		},
		{
			name: "noassertion copyright text",
			degrade: func(doc *types.Document) {
				doc.Packages[0].CopyrightText = types.NoAssertionField()
			},
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			doc := testutil.CompliantDocument()
			test.degrade(doc)
			checker, err := New(base.New(doc), Compliance)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if checker.CheckCompliance() {
				t.Errorf("CheckCompliance = true, want false")
			}
		})
	}
}

func TestMissingConcludedLicenseFailsFSCTButNotNTIA(t *testing.T) {
	t.Parallel()
	doc := testutil.CompliantDocument()
	doc.Packages[1].ConcludedLicense = types.NoAssertionField()

	ntiaChecker, err := ntia.New(base.New(doc), ntia.Compliance)
	if err != nil {
		t.Fatalf("ntia.New returned error: %v", err)
	}
	if !ntiaChecker.CheckCompliance() {
		t.Errorf("NTIA verdict = false, want true: licensing is not an NTIA element")
	}

	fsctChecker, err := New(base.New(doc), Compliance)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if fsctChecker.CheckCompliance() {
		t.Errorf("FSCT verdict = true, want false")
	}

	var licenseResult *types.ElementResult
	for _, result := range fsctChecker.TableElements() {
		if result.Name == types.ElementConcludedLicense {
			licenseResult = result
		}
	}
	if licenseResult == nil {
		t.Fatalf("no %s element in the FSCT table", types.ElementConcludedLicense)
	}
	if licenseResult.Present {
		t.Errorf("%s reported present", types.ElementConcludedLicense)
	}
	want := []types.ComponentRef{{Name: "pkg-b", SPDXID: "SPDXRef-pkg-b"}}
	if diff := cmp.Diff(want, licenseResult.MissingComponents); diff != "" {
		t.Errorf("missing concluded licenses mismatch (-want +got):\n%s", diff)
	}
}

func TestNoneCopyrightTextIsPresent(t *testing.T) {
	t.Parallel()
	doc := testutil.CompliantDocument()
	doc.Packages[1].CopyrightText = types.PresentField("NONE")
	checker, err := New(base.New(doc), Compliance)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !checker.CheckCompliance() {
		t.Errorf("the explicit NONE assertion should count as present")
	}
}

func TestTableElementsOrder(t *testing.T) {
	t.Parallel()
	checker, err := New(base.New(testutil.CompliantDocument()), Compliance)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	results := checker.TableElements()
	got := make([]string, 0, len(results))
	for _, result := range results {
		got = append(got, result.Name)
	}
	want := []string{
		types.ElementComponentName,
		types.ElementComponentVersion,
		types.ElementUniqueIdentifier,
		types.ElementSupplier,
		types.ElementConcludedLicense,
		types.ElementCopyrightText,
		types.ElementAuthor,
		types.ElementTimestamp,
		types.ElementDependencyRelationships,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table element order mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintComponentsMissingInfoIncludesLicensingAttributes(t *testing.T) {
	t.Parallel()
	doc := testutil.CompliantDocument()
	doc.Packages[1].ConcludedLicense = types.NoAssertionField()
	checker, err := New(base.New(doc), Compliance)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	var out strings.Builder
	checker.PrintComponentsMissingInfo(&out)
	if !strings.Contains(out.String(), "pkg-b") {
		t.Errorf("component missing a concluded license was not reported:\n%s", out.String())
	}
}

func TestOutputJSONReport(t *testing.T) {
	t.Parallel()
	checker, err := New(base.New(testutil.CompliantDocument()), Compliance)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	rep := checker.OutputJSON()
	if rep.Standard != "FSCT v3 Minimum Expected Elements" {
		t.Errorf("Standard = %q, want %q", rep.Standard, "FSCT v3 Minimum Expected Elements")
	}
	if len(rep.Elements) != 9 {
		t.Errorf("len(Elements) = %d, want 9", len(rep.Elements))
	}
}
