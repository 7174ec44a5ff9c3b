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

// Package ntia checks an SBOM against the NTIA minimum elements.
package ntia

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/sbom-compliance/pkg/checkers/base"
	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

// Compliance is the CLI identifier of this standard.
const Compliance = "ntia"

const standardName = "NTIA Minimum Elements"

// The seven NTIA minimum elements, in the order they are reported.
var tableElements = []string{
	types.ElementComponentName,
	types.ElementComponentVersion,
	types.ElementUniqueIdentifier,
	types.ElementSupplier,
	types.ElementAuthor,
	types.ElementTimestamp,
	types.ElementDependencyRelationships,
}

// The component attributes PrintComponentsMissingInfo reports on when the
// caller names none.
var defaultAttributes = []string{
	base.AttrName,
	base.AttrVersion,
	base.AttrIdentifier,
	base.AttrSupplier,
}

// NTIAChecker checks an SBOM against the NTIA minimum elements.
type NTIAChecker struct {
	*base.BaseChecker
}

// New wraps a base checker for NTIA checking. The compliance identifier is
// taken as an argument so constructing a checker for the wrong standard
// fails fast rather than silently misreporting.
func New(baseChecker *base.BaseChecker, compliance string) (*NTIAChecker, error) {
	if compliance != Compliance {
		return nil, fmt.Errorf("compliance standard %q is not %q", compliance, Compliance)
	}
	return &NTIAChecker{BaseChecker: baseChecker}, nil
}

func (checker *NTIAChecker) StandardName() string {
	return standardName
}

// CheckCompliance reports whether the SBOM satisfies all seven NTIA minimum
// elements. An SBOM that could not be parsed is never compliant.
func (checker *NTIAChecker) CheckCompliance() bool {
	return checker.Doc != nil &&
		len(checker.ComponentsWithoutNames) == 0 &&
		len(checker.ComponentsWithoutVersions) == 0 &&
		len(checker.ComponentsWithoutIdentifiers) == 0 &&
		len(checker.ComponentsWithoutSuppliers) == 0 &&
		checker.DocAuthor &&
		checker.DocTimestamp &&
		checker.DependencyRelationships
}

// CheckNTIAMinimumElementsCompliance is the historical name of
// CheckCompliance.
//
// Deprecated: use CheckCompliance.
func (checker *NTIAChecker) CheckNTIAMinimumElementsCompliance() bool {
	slog.Warn("CheckNTIAMinimumElementsCompliance is deprecated; use CheckCompliance")
	return checker.CheckCompliance()
}

func (checker *NTIAChecker) TableElements() []*types.ElementResult {
	return checker.ElementResults(tableElements)
}

func (checker *NTIAChecker) PrintComponentsMissingInfo(w io.Writer, attributes ...string) {
	if len(attributes) == 0 {
		attributes = defaultAttributes
	}
	checker.BaseChecker.PrintComponentsMissingInfo(w, attributes...)
}

func (checker *NTIAChecker) PrintTableOutput(w io.Writer, verbose bool) {
	checker.RenderTable(w, checker.OutputJSON(), verbose)
}

func (checker *NTIAChecker) OutputHTML(verbose bool) string {
	return checker.RenderHTML(checker.OutputJSON(), verbose)
}

func (checker *NTIAChecker) OutputJSON() *types.Report {
	return checker.BuildReport(standardName, checker.CheckCompliance(), checker.TableElements())
}
