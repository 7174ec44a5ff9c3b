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

// Package parser turns serialized SBOMs into the document model consumed by
// the compliance checkers. SPDX 2.x ingestion is delegated to
// spdx/tools-golang; SPDX 3.0 JSON-LD is decoded directly.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	types "github.com/google/sbom-compliance/pkg/checkers/types"
	jsonParsing "github.com/spdx/tools-golang/json"
	v2common "github.com/spdx/tools-golang/spdx/v2/common"
	v23 "github.com/spdx/tools-golang/spdx/v2/v2_3"
	"github.com/spdx/tools-golang/tagvalue"
	"github.com/spdx/tools-golang/yaml"
)

const (
	SpecSPDX2 = "spdx2"
	SpecSPDX3 = "spdx3"

	noAssertion = "NOASSERTION"
)

var (
	ErrUnsupportedSpec = errors.New("unsupported SBOM specification")
	errSBOMParse       = errors.New("could not parse SBOM")
)

// FromFile parses the SBOM at path according to sbomSpec ("spdx2" or
// "spdx3"). A nil document with a non-nil error means parsing failed; the
// caller records the error text as its parsing-error state.
func FromFile(path, sbomSpec string) (*types.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening SBOM file: %w", err)
	}
	defer file.Close()

	switch sbomSpec {
	case SpecSPDX2:
		return FromSPDX2(file)
	case SpecSPDX3:
		return FromSPDX3(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSpec, sbomSpec)
	}
}

// FromSPDX2 tries the tools-golang JSON, tag-value and YAML readers in turn.
func FromSPDX2(sbom io.Reader) (*types.Document, error) {
	data, err := io.ReadAll(sbom)
	if err != nil {
		return nil, fmt.Errorf("error reading SBOM: %w", err)
	}

	doc := &v23.Document{}
	if err := jsonParsing.ReadInto(bytes.NewReader(data), doc); err == nil {
		return fromSPDX2Document(doc), nil
	}

	doc = &v23.Document{}
	if err := tagvalue.ReadInto(bytes.NewReader(data), doc); err == nil {
		return fromSPDX2Document(doc), nil
	}

	doc = &v23.Document{}
	if err := yaml.ReadInto(bytes.NewReader(data), doc); err == nil {
		return fromSPDX2Document(doc), nil
	}
	return nil, errSBOMParse
}

func fromSPDX2Document(doc *v23.Document) *types.Document {
	out := &types.Document{
		SPDXVersion: doc.SPDXVersion,
		DataLicense: doc.DataLicense,
		SPDXID:      renderElementID(doc.SPDXIdentifier),
		Name:        doc.DocumentName,
		Namespace:   doc.DocumentNamespace,
	}
	if doc.CreationInfo != nil {
		out.Created = doc.CreationInfo.Created
		for _, creator := range doc.CreationInfo.Creators {
			out.Creators = append(out.Creators, types.Creator{
				Type:    creator.CreatorType,
				Creator: creator.Creator,
			})
		}
	}
	for _, pkg := range doc.Packages {
		out.Packages = append(out.Packages, &types.Package{
			Name:             pkg.PackageName,
			SPDXID:           renderElementID(pkg.PackageSPDXIdentifier),
			Version:          pkg.PackageVersion,
			DownloadLocation: pkg.PackageDownloadLocation,
			Supplier:         supplierField(pkg.PackageSupplier),
			ConcludedLicense: optionalField(pkg.PackageLicenseConcluded),
			CopyrightText:    optionalField(pkg.PackageCopyrightText),
		})
	}
	for _, rel := range doc.Relationships {
		if rel == nil {
			continue
		}
		out.Relationships = append(out.Relationships, types.Relationship{
			RefA: v2common.RenderDocElementID(rel.RefA),
			RefB: v2common.RenderDocElementID(rel.RefB),
			Type: rel.Relationship,
		})
	}
	return out
}

func renderElementID(id v2common.ElementID) string {
	if id == "" {
		return ""
	}
	return v2common.RenderElementID(id)
}

func supplierField(supplier *v2common.Supplier) types.FieldValue {
	if supplier == nil || supplier.Supplier == "" {
		return types.AbsentField()
	}
	if supplier.Supplier == noAssertion {
		return types.NoAssertionField()
	}
	return types.PresentField(supplier.Supplier)
}

// optionalField maps the SPDX string convention onto the tagged union: empty
// is absent, NOASSERTION is the sentinel, everything else (NONE included) is
// a present value.
func optionalField(value string) types.FieldValue {
	switch value {
	case "":
		return types.AbsentField()
	case noAssertion:
		return types.NoAssertionField()
	default:
		return types.PresentField(value)
	}
}
