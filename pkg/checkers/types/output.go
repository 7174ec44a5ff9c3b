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

package types

// Table element names. Each compliance standard publishes a fixed, ordered
// subset of these as its table-element contract.
const (
	ElementComponentName           = "Component Name"
	ElementComponentVersion        = "Component Version"
	ElementUniqueIdentifier        = "Unique Identifier"
	ElementSupplier                = "Supplier"
	ElementAuthor                  = "Author"
	ElementTimestamp               = "Timestamp"
	ElementDependencyRelationships = "Dependency Relationships"
	ElementConcludedLicense        = "Concluded License"
	ElementCopyrightText           = "Copyright Text"
)

// ElementResult is the outcome of one table element: whether the requirement
// is met, and which components fail it (empty for document-level elements).
type ElementResult struct {
	Name              string         `json:"name"`
	Present           bool           `json:"present"`
	MissingComponents []ComponentRef `json:"missingComponents,omitempty"`
}

// Report is the structured result of one compliance run. It is the type we
// convert to JSON when we output the results.
type Report struct {
	// ReportID uniquely identifies this compliance run.
	ReportID string `json:"reportId"`

	// SBOMName is the document name, or "" if parsing failed.
	SBOMName string `json:"sbomName"`

	// Standard is the human-readable name of the compliance standard.
	Standard string `json:"standard"`

	Compliant       bool `json:"compliant"`
	TotalComponents int  `json:"totalComponents"`

	// Elements holds one entry per table element of the standard, in the
	// standard's published order.
	Elements []*ElementResult `json:"elements"`

	ParsingErrors      []string            `json:"parsingErrors,omitempty"`
	ValidationMessages []ValidationMessage `json:"validationMessages,omitempty"`
}
