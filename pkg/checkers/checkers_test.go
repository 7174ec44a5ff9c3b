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

package checkers

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/sbom-compliance/pkg/checkers/fsct"
	"github.com/google/sbom-compliance/pkg/checkers/ntia"
	"github.com/google/sbom-compliance/pkg/parser"
	"github.com/google/sbom-compliance/pkg/testutil"
)

func writeSBOM(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sbom.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing SBOM fixture: %v", err)
	}
	return path
}

func TestNewBuildsNTIAChecker(t *testing.T) {
	t.Parallel()
	path := writeSBOM(t, testutil.CompliantSPDX2JSON)
	checker, err := New(path, true, ntia.Compliance, parser.SpecSPDX2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := checker.StandardName(); got != "NTIA Minimum Elements" {
		t.Errorf("StandardName = %q", got)
	}
	if !checker.CheckCompliance() {
		t.Errorf("CheckCompliance = false for a compliant SBOM")
	}
	if got := checker.GetParsingErrors(); len(got) != 0 {
		t.Errorf("GetParsingErrors = %v, want empty", got)
	}
}

func TestNewBuildsFSCTChecker(t *testing.T) {
	t.Parallel()
	path := writeSBOM(t, testutil.CompliantSPDX2JSON)
	checker, err := New(path, true, fsct.Compliance, parser.SpecSPDX2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := checker.StandardName(); got != "FSCT v3 Minimum Expected Elements" {
		t.Errorf("StandardName = %q", got)
	}
	if !checker.CheckCompliance() {
		t.Errorf("CheckCompliance = false for a compliant SBOM")
	}
}

func TestNewRejectsUnknownCompliance(t *testing.T) {
	t.Parallel()
	path := writeSBOM(t, testutil.CompliantSPDX2JSON)
	_, err := New(path, true, "iso9001", parser.SpecSPDX2)
	if !errors.Is(err, ErrUnknownCompliance) {
		t.Errorf("New error = %v, want ErrUnknownCompliance", err)
	}
}

func TestNewRejectsUnsupportedSpecBeforeComplianceDispatch(t *testing.T) {
	t.Parallel()
	path := writeSBOM(t, testutil.CompliantSPDX2JSON)
	// The compliance value is also bad; the sbom-spec error must win.
	_, err := New(path, true, "iso9001", "cyclonedx")
	if !errors.Is(err, ErrUnsupportedSpec) {
		t.Errorf("New error = %v, want ErrUnsupportedSpec", err)
	}
}

func TestNewSurvivesUnparsableSBOM(t *testing.T) {
	t.Parallel()
	path := writeSBOM(t, "this is not an SBOM at all {")
	checker, err := New(path, true, ntia.Compliance, parser.SpecSPDX2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if checker.CheckCompliance() {
		t.Errorf("an unparsable SBOM must not be compliant")
	}
	if got := checker.GetParsingErrors(); len(got) == 0 {
		t.Errorf("GetParsingErrors is empty, want the parse failure recorded")
	}
	if got := checker.GetTotalNumberComponents(); got != 0 {
		t.Errorf("GetTotalNumberComponents = %d, want 0", got)
	}
}

func TestNewSkipsValidationOnRequest(t *testing.T) {
	t.Parallel()
	// The fixture deliberately violates a structural rule (bad data license).
	sbom := `{
		"spdxVersion": "SPDX-2.3",
		"dataLicense": "Apache-2.0",
		"SPDXID": "SPDXRef-DOCUMENT",
		"name": "test-sbom",
		"documentNamespace": "https://example.com/test-sbom",
		"packages": [{"name": "pkg", "SPDXID": "SPDXRef-pkg", "downloadLocation": "NOASSERTION"}]
	}`
	path := writeSBOM(t, sbom)

	validated, err := New(path, true, ntia.Compliance, parser.SpecSPDX2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := validated.GetValidationMessages(); len(got) == 0 {
		t.Errorf("expected validation messages for a malformed document")
	}

	unvalidated, err := New(path, false, ntia.Compliance, parser.SpecSPDX2)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := unvalidated.GetValidationMessages(); len(got) != 0 {
		t.Errorf("GetValidationMessages = %v, want empty when validation is skipped", got)
	}
}
