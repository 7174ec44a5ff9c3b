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

// Package fsct checks an SBOM against the CISA Framing Software Component
// Transparency (third edition) minimum expected elements. It extends the
// NTIA set with concluded license and copyright text.
package fsct

import (
	"fmt"
	"io"

	"github.com/google/sbom-compliance/pkg/checkers/base"
	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

// Compliance is the CLI identifier of this standard.
const Compliance = "fsct3-min"

const standardName = "FSCT v3 Minimum Expected Elements"

var tableElements = []string{
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

var defaultAttributes = []string{
	base.AttrName,
	base.AttrVersion,
	base.AttrIdentifier,
	base.AttrSupplier,
	base.AttrConcludedLicense,
	base.AttrCopyrightText,
}

// FSCTChecker checks an SBOM against the FSCT v3 minimum expected elements.
type FSCTChecker struct {
	*base.BaseChecker
}

// New wraps a base checker for FSCT checking. The compliance identifier is
// taken as an argument so constructing a checker for the wrong standard
// fails fast rather than silently misreporting.
func New(baseChecker *base.BaseChecker, compliance string) (*FSCTChecker, error) {
	if compliance != Compliance {
		return nil, fmt.Errorf("compliance standard %q is not %q", compliance, Compliance)
	}
	return &FSCTChecker{BaseChecker: baseChecker}, nil
}

func (checker *FSCTChecker) StandardName() string {
	return standardName
}

// CheckCompliance reports whether the SBOM satisfies all nine minimum
// expected elements. An SBOM that could not be parsed is never compliant.
func (checker *FSCTChecker) CheckCompliance() bool {
	return checker.Doc != nil &&
		len(checker.ComponentsWithoutNames) == 0 &&
		len(checker.ComponentsWithoutVersions) == 0 &&
		len(checker.ComponentsWithoutIdentifiers) == 0 &&
		len(checker.ComponentsWithoutSuppliers) == 0 &&
		len(checker.ComponentsWithoutConcludedLicenses) == 0 &&
		len(checker.ComponentsWithoutCopyrightTexts) == 0 &&
		checker.DocAuthor &&
		checker.DocTimestamp &&
		checker.DependencyRelationships
}

func (checker *FSCTChecker) TableElements() []*types.ElementResult {
	return checker.ElementResults(tableElements)
}

func (checker *FSCTChecker) PrintComponentsMissingInfo(w io.Writer, attributes ...string) {
	if len(attributes) == 0 {
		attributes = defaultAttributes
	}
	checker.BaseChecker.PrintComponentsMissingInfo(w, attributes...)
}

func (checker *FSCTChecker) PrintTableOutput(w io.Writer, verbose bool) {
	checker.RenderTable(w, checker.OutputJSON(), verbose)
}

func (checker *FSCTChecker) OutputHTML(verbose bool) string {
	return checker.RenderHTML(checker.OutputJSON(), verbose)
}

func (checker *FSCTChecker) OutputJSON() *types.Report {
	return checker.BuildReport(standardName, checker.CheckCompliance(), checker.TableElements())
}
