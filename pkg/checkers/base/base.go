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

// Package base holds the state and behavior shared by all compliance
// checkers. A concrete standard embeds BaseChecker and contributes its
// verdict rule and table-element contract on top of it.
package base

import (
	"fmt"
	"io"
	"slices"

	"github.com/google/uuid"

	types "github.com/google/sbom-compliance/pkg/checkers/types"
	"github.com/google/sbom-compliance/pkg/report"
	"github.com/google/sbom-compliance/pkg/util"
)

// Component attribute names accepted by PrintComponentsMissingInfo.
const (
	AttrName             = "name"
	AttrVersion          = "version"
	AttrIdentifier       = "identifier"
	AttrSupplier         = "supplier"
	AttrConcludedLicense = "concluded_license"
	AttrCopyrightText    = "copyright_text"
)

// Checker is the contract every compliance standard fulfills. Concrete
// checkers embed *BaseChecker, which provides everything except the
// standard's identity, verdict rule and table-element list.
type Checker interface {
	// StandardName is the human-readable name of the standard.
	StandardName() string

	// CheckCompliance reports the overall verdict: every required element
	// present and the document parsed.
	CheckCompliance() bool

	// TableElements returns the per-element results in the standard's
	// published order.
	TableElements() []*types.ElementResult

	GetTotalNumberComponents() int
	GetSBOMName() string
	GetParsingErrors() []string
	GetValidationMessages() []types.ValidationMessage

	// PrintComponentsMissingInfo writes the components that are missing any
	// of the given attributes. With no attributes the standard's default
	// attribute set is used.
	PrintComponentsMissingInfo(w io.Writer, attributes ...string)

	PrintTableOutput(w io.Writer, verbose bool)
	OutputHTML(verbose bool) string
	OutputJSON() *types.Report
}

// BaseChecker carries the parsed document and the eagerly computed
// field-presence results. All result fields are populated by New; a nil
// document degrades to empty results rather than panicking.
type BaseChecker struct {
	Doc      *types.Document
	FilePath string

	ParsingErrors      []string
	ValidationMessages []types.ValidationMessage

	DocAuthor               bool
	DocTimestamp            bool
	DependencyRelationships bool

	ComponentsWithoutNames             []string
	ComponentsWithoutIdentifiers       []string
	ComponentsWithoutVersions          []types.ComponentRef
	ComponentsWithoutSuppliers         []types.ComponentRef
	ComponentsWithoutConcludedLicenses []types.ComponentRef
	ComponentsWithoutCopyrightTexts    []types.ComponentRef
}

func WithFile(path string) func(*BaseChecker) {
	return func(checker *BaseChecker) {
		checker.FilePath = path
	}
}

func WithParsingErrors(parsingErrors []string) func(*BaseChecker) {
	return func(checker *BaseChecker) {
		checker.ParsingErrors = parsingErrors
	}
}

func WithValidationMessages(messages []types.ValidationMessage) func(*BaseChecker) {
	return func(checker *BaseChecker) {
		checker.ValidationMessages = messages
	}
}

// New builds a BaseChecker for the document and runs all field-presence
// predicates. doc may be nil when parsing failed; pass the parse failures
// through WithParsingErrors in that case.
func New(doc *types.Document, options ...func(*BaseChecker)) *BaseChecker {
	checker := &BaseChecker{
		Doc:                doc,
		ParsingErrors:      make([]string, 0),
		ValidationMessages: make([]types.ValidationMessage, 0),
	}
	for _, o := range options {
		o(checker)
	}
	checker.runChecks()
	return checker
}

func (checker *BaseChecker) runChecks() {
	doc := checker.Doc
	checker.DocAuthor = util.HasAuthor(doc)
	checker.DocTimestamp = util.HasTimestamp(doc)
	checker.DependencyRelationships = util.HasDependencyRelationships(doc)
	checker.ComponentsWithoutNames = util.ComponentsWithoutNames(doc)
	checker.ComponentsWithoutIdentifiers = util.ComponentsWithoutIdentifiers(doc)
	checker.ComponentsWithoutVersions = util.ComponentsWithoutVersionsWithIDs(doc)
	checker.ComponentsWithoutSuppliers = util.ComponentsWithoutSuppliersWithIDs(doc)
	checker.ComponentsWithoutConcludedLicenses = util.ComponentsWithoutConcludedLicensesWithIDs(doc)
	checker.ComponentsWithoutCopyrightTexts = util.ComponentsWithoutCopyrightTextsWithIDs(doc)
}

func (checker *BaseChecker) GetTotalNumberComponents() int {
	if checker.Doc == nil {
		return 0
	}
	return len(checker.Doc.Packages)
}

func (checker *BaseChecker) GetSBOMName() string {
	if checker.Doc == nil {
		return ""
	}
	return checker.Doc.Name
}

func (checker *BaseChecker) GetParsingErrors() []string {
	return checker.ParsingErrors
}

func (checker *BaseChecker) GetValidationMessages() []types.ValidationMessage {
	return checker.ValidationMessages
}

// missingByAttribute maps an attribute name to the components missing it.
// Unknown attributes yield an empty result.
func (checker *BaseChecker) missingByAttribute(attribute string) []string {
	switch attribute {
	case AttrName:
		return checker.ComponentsWithoutNames
	case AttrIdentifier:
		return checker.ComponentsWithoutIdentifiers
	case AttrVersion:
		return util.Names(checker.ComponentsWithoutVersions)
	case AttrSupplier:
		return util.Names(checker.ComponentsWithoutSuppliers)
	case AttrConcludedLicense:
		return util.Names(checker.ComponentsWithoutConcludedLicenses)
	case AttrCopyrightText:
		return util.Names(checker.ComponentsWithoutCopyrightTexts)
	}
	return make([]string, 0)
}

// AllComponentsMissingInfo is the order-preserving union of the components
// missing any of the given attributes, deduplicated by first occurrence.
func (checker *BaseChecker) AllComponentsMissingInfo(attributes []string) []string {
	combined := make([]string, 0)
	for _, attribute := range attributes {
		for _, component := range checker.missingByAttribute(attribute) {
			if !slices.Contains(combined, component) {
				combined = append(combined, component)
			}
		}
	}
	return combined
}

// PrintComponentsMissingInfo lists the components missing any of the given
// attributes. With a recorded parsing error there is nothing to report on,
// so it prints nothing; the table and report paths surface parse failures.
// Nothing missing also prints nothing.
func (checker *BaseChecker) PrintComponentsMissingInfo(w io.Writer, attributes ...string) {
	if len(checker.ParsingErrors) > 0 {
		return
	}
	missing := checker.AllComponentsMissingInfo(attributes)
	if len(missing) == 0 {
		return
	}
	fmt.Fprintln(w, "Components missing required information:")
	for _, component := range missing {
		fmt.Fprintf(w, "\t- %s\n", component)
	}
}

// ElementResults evaluates the given table elements in order. Document-level
// elements carry no component list.
func (checker *BaseChecker) ElementResults(elements []string) []*types.ElementResult {
	results := make([]*types.ElementResult, 0, len(elements))
	for _, element := range elements {
		result := &types.ElementResult{Name: element}
		switch element {
		case types.ElementComponentName:
			result.Present = len(checker.ComponentsWithoutNames) == 0
			for _, id := range checker.ComponentsWithoutNames {
				result.MissingComponents = append(result.MissingComponents,
					types.ComponentRef{SPDXID: id})
			}
		case types.ElementUniqueIdentifier:
			result.Present = len(checker.ComponentsWithoutIdentifiers) == 0
			for _, name := range checker.ComponentsWithoutIdentifiers {
				result.MissingComponents = append(result.MissingComponents,
					types.ComponentRef{Name: name})
			}
		case types.ElementComponentVersion:
			result.Present = len(checker.ComponentsWithoutVersions) == 0
			result.MissingComponents = checker.ComponentsWithoutVersions
		case types.ElementSupplier:
			result.Present = len(checker.ComponentsWithoutSuppliers) == 0
			result.MissingComponents = checker.ComponentsWithoutSuppliers
		case types.ElementConcludedLicense:
			result.Present = len(checker.ComponentsWithoutConcludedLicenses) == 0
			result.MissingComponents = checker.ComponentsWithoutConcludedLicenses
		case types.ElementCopyrightText:
			result.Present = len(checker.ComponentsWithoutCopyrightTexts) == 0
			result.MissingComponents = checker.ComponentsWithoutCopyrightTexts
		case types.ElementAuthor:
			result.Present = checker.DocAuthor
		case types.ElementTimestamp:
			result.Present = checker.DocTimestamp
		case types.ElementDependencyRelationships:
			result.Present = checker.DependencyRelationships
		}
		results = append(results, result)
	}
	return results
}

// BuildReport assembles the structured report for a concrete standard.
func (checker *BaseChecker) BuildReport(
	standardName string,
	compliant bool,
	elements []*types.ElementResult,
) *types.Report {
	return &types.Report{
		ReportID:           uuid.NewString(),
		SBOMName:           checker.GetSBOMName(),
		Standard:           standardName,
		Compliant:          compliant,
		TotalComponents:    checker.GetTotalNumberComponents(),
		Elements:           elements,
		ParsingErrors:      checker.ParsingErrors,
		ValidationMessages: checker.ValidationMessages,
	}
}

// RenderTable writes the table rendering of the given report, followed by
// any validation messages.
func (checker *BaseChecker) RenderTable(w io.Writer, rep *types.Report, verbose bool) {
	report.RenderTable(w, rep, verbose)
	report.PrintValidationMessages(w, rep.ValidationMessages, verbose)
}

// RenderHTML returns the HTML rendering of the given report.
func (checker *BaseChecker) RenderHTML(rep *types.Report, verbose bool) string {
	return report.RenderHTML(rep, verbose)
}
