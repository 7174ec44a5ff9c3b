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

// FieldKind classifies an optional SBOM package field.
type FieldKind int

const (
	// Absent means the field was not present in the SBOM at all.
	Absent FieldKind = iota

	// NoAssertion means the SBOM explicitly declared the field as
	// NOASSERTION. For compliance purposes this is equivalent to Absent,
	// but the two are kept distinguishable for diagnostics.
	NoAssertion

	// Present means the field carries a value. Any value counts, including
	// placeholder strings and the explicit NONE assertion.
	Present
)

func (k FieldKind) String() string {
	switch k {
	case Absent:
		return "absent"
	case NoAssertion:
		return "noassertion"
	case Present:
		return "present"
	}
	return "unknown"
}

// FieldValue is an optional package field modeled as a tagged union of
// {Absent, NoAssertion, Present}.
type FieldValue struct {
	Kind  FieldKind `json:"kind"`
	Value string    `json:"value,omitempty"`
}

func AbsentField() FieldValue { return FieldValue{Kind: Absent} }

func NoAssertionField() FieldValue { return FieldValue{Kind: NoAssertion} }

func PresentField(value string) FieldValue {
	return FieldValue{Kind: Present, Value: value}
}

// Missing reports whether the field counts as missing for compliance. Both
// Absent and NoAssertion are missing.
func (f FieldValue) Missing() bool {
	return f.Kind != Present
}

// Creator is one entry of the document's creation info, e.g.
// {Type: "Organization", Creator: "Example Inc. (contact@example.com)"}.
type Creator struct {
	Type    string `json:"type"`
	Creator string `json:"creator"`
}

// Relationship types that satisfy the dependency-relationships requirement.
const (
	RelationshipDescribes = "DESCRIBES"
	RelationshipDependsOn = "DEPENDS_ON"
)

type Relationship struct {
	RefA string `json:"refA"`
	RefB string `json:"refB"`
	Type string `json:"type"`
}

// Package is one SBOM-listed software component.
type Package struct {
	Name             string     `json:"name"`
	SPDXID           string     `json:"spdxId"`
	Version          string     `json:"version"`
	DownloadLocation string     `json:"downloadLocation,omitempty"`
	Supplier         FieldValue `json:"supplier"`
	ConcludedLicense FieldValue `json:"concludedLicense"`
	CopyrightText    FieldValue `json:"copyrightText"`
}

// Document is the parsed SBOM as seen by the compliance checkers. It is
// read-only input: the checkers never mutate it.
type Document struct {
	SPDXVersion   string         `json:"spdxVersion"`
	DataLicense   string         `json:"dataLicense"`
	SPDXID        string         `json:"spdxId"`
	Name          string         `json:"name"`
	Namespace     string         `json:"namespace"`
	Creators      []Creator      `json:"creators"`
	Created       string         `json:"created"`
	Packages      []*Package     `json:"packages"`
	Relationships []Relationship `json:"relationships"`
}

// ComponentRef identifies a component by name and SPDX ID so that callers
// can cross-reference components sharing the same name.
type ComponentRef struct {
	Name   string `json:"name"`
	SPDXID string `json:"spdxId,omitempty"`
}

// String renders the reference for human-readable report output.
func (r ComponentRef) String() string {
	switch {
	case r.Name != "" && r.SPDXID != "":
		return r.Name + " (" + r.SPDXID + ")"
	case r.Name != "":
		return r.Name
	default:
		return r.SPDXID
	}
}

// ValidationContext locates the element a validation message refers to.
type ValidationContext struct {
	SPDXID      string `json:"spdxId,omitempty"`
	ParentID    string `json:"parentId,omitempty"`
	ElementType string `json:"elementType,omitempty"`
}

// ValidationMessage is a structural or semantic warning from the validator.
// Validation messages are surfaced alongside the compliance verdict but do
// not feed into it.
type ValidationMessage struct {
	Message string             `json:"message"`
	Context *ValidationContext `json:"context,omitempty"`
}
