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

// package testutil provides test helper functions
package testutil

import (
	"errors"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

// ReportOpts compares reports while ignoring the per-run report ID.
var ReportOpts []cmp.Option = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreFields(types.Report{}, "ReportID"),
}

// CompliantDocument returns a document that satisfies every element of both
// supported standards. Tests degrade it field by field.
func CompliantDocument() *types.Document {
	return &types.Document{
		SPDXVersion: "SPDX-2.3",
		DataLicense: "CC0-1.0",
		SPDXID:      "SPDXRef-DOCUMENT",
		Name:        "test-sbom",
		Namespace:   "https://example.com/test-sbom",
		Creators: []types.Creator{
			{Type: "Tool", Creator: "sbomtool-1.0"},
		},
		Created: "2024-01-02T03:04:05Z",
		Packages: []*types.Package{
			{
				Name:             "pkg-a",
				SPDXID:           "SPDXRef-pkg-a",
				Version:          "1.0.0",
				DownloadLocation: "https://example.com/pkg-a",
				Supplier:         types.PresentField("Organization: Example"),
				ConcludedLicense: types.PresentField("Apache-2.0"),
				CopyrightText:    types.PresentField("Copyright Example"),
			},
			{
				Name:             "pkg-b",
				SPDXID:           "SPDXRef-pkg-b",
				Version:          "2.0.0",
				DownloadLocation: "https://example.com/pkg-b",
				Supplier:         types.PresentField("Organization: Example"),
				ConcludedLicense: types.PresentField("MIT"),
				CopyrightText:    types.PresentField("NONE"),
			},
		},
		Relationships: []types.Relationship{
			{RefA: "SPDXRef-DOCUMENT", RefB: "SPDXRef-pkg-a", Type: types.RelationshipDescribes},
			{RefA: "SPDXRef-pkg-a", RefB: "SPDXRef-pkg-b", Type: types.RelationshipDependsOn},
		},
	}
}

// CompliantSPDX2JSON is a minimal SPDX 2.3 JSON SBOM that passes both
// standards end to end. Tests write it to a temp file and point the factory
// or parser at it.
const CompliantSPDX2JSON = `{
	"spdxVersion": "SPDX-2.3",
	"dataLicense": "CC0-1.0",
	"SPDXID": "SPDXRef-DOCUMENT",
	"name": "test-sbom",
	"documentNamespace": "https://example.com/test-sbom",
	"creationInfo": {
		"creators": ["Tool: sbomtool-1.0"],
		"created": "2024-01-02T03:04:05Z"
	},
	"packages": [
		{
			"name": "pkg-a",
			"SPDXID": "SPDXRef-pkg-a",
			"versionInfo": "1.0.0",
			"downloadLocation": "https://example.com/pkg-a",
			"supplier": "Organization: Example",
			"licenseConcluded": "Apache-2.0",
			"copyrightText": "Copyright Example"
		}
	],
	"relationships": [
		{
			"spdxElementId": "SPDXRef-DOCUMENT",
			"relatedSpdxElement": "SPDXRef-pkg-a",
			"relationshipType": "DESCRIBES"
		}
	]
}`

var ErrRead = errors.New("read failure")

// BadReader fails every Read.
type BadReader struct{}

func (BadReader) Read([]byte) (int, error) {
	return 0, ErrRead
}
