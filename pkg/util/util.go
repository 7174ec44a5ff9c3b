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

// Package util holds the field predicates of the compliance rule engine.
//
// Every predicate is total and side-effect-free: a nil document yields an
// empty result, never a panic. Packages are visited in document order and
// the result preserves that order. Predicates do not deduplicate; the
// aggregation step in the base checker does.
package util

import (
	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

func missingComponents(
	doc *types.Document,
	missing func(*types.Package) bool,
) []types.ComponentRef {
	refs := make([]types.ComponentRef, 0)
	if doc == nil {
		return refs
	}
	for _, pkg := range doc.Packages {
		if missing(pkg) {
			refs = append(refs, types.ComponentRef{Name: pkg.Name, SPDXID: pkg.SPDXID})
		}
	}
	return refs
}

// Names projects component references down to their names.
func Names(refs []types.ComponentRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		names = append(names, ref.Name)
	}
	return names
}

// ComponentsWithoutNames returns the SPDX IDs of packages that have no name.
// IDs rather than names, since the name is what is missing.
func ComponentsWithoutNames(doc *types.Document) []string {
	ids := make([]string, 0)
	if doc == nil {
		return ids
	}
	for _, pkg := range doc.Packages {
		if pkg.Name == "" {
			ids = append(ids, pkg.SPDXID)
		}
	}
	return ids
}

// ComponentsWithoutIdentifiers returns the names of packages whose SPDX ID
// is empty.
func ComponentsWithoutIdentifiers(doc *types.Document) []string {
	names := make([]string, 0)
	if doc == nil {
		return names
	}
	for _, pkg := range doc.Packages {
		if pkg.SPDXID == "" {
			names = append(names, pkg.Name)
		}
	}
	return names
}

func ComponentsWithoutVersions(doc *types.Document) []string {
	return Names(ComponentsWithoutVersionsWithIDs(doc))
}

func ComponentsWithoutVersionsWithIDs(doc *types.Document) []types.ComponentRef {
	return missingComponents(doc, func(pkg *types.Package) bool {
		return pkg.Version == ""
	})
}

// ComponentsWithoutSuppliers includes packages whose supplier is absent or
// is the explicit NOASSERTION sentinel. Any other supplier value counts as
// present, placeholder strings included.
func ComponentsWithoutSuppliers(doc *types.Document) []string {
	return Names(ComponentsWithoutSuppliersWithIDs(doc))
}

func ComponentsWithoutSuppliersWithIDs(doc *types.Document) []types.ComponentRef {
	return missingComponents(doc, func(pkg *types.Package) bool {
		return pkg.Supplier.Missing()
	})
}

func ComponentsWithoutConcludedLicenses(doc *types.Document) []string {
	return Names(ComponentsWithoutConcludedLicensesWithIDs(doc))
}

func ComponentsWithoutConcludedLicensesWithIDs(doc *types.Document) []types.ComponentRef {
	return missingComponents(doc, func(pkg *types.Package) bool {
		return pkg.ConcludedLicense.Missing()
	})
}

func ComponentsWithoutCopyrightTexts(doc *types.Document) []string {
	return Names(ComponentsWithoutCopyrightTextsWithIDs(doc))
}

func ComponentsWithoutCopyrightTextsWithIDs(doc *types.Document) []types.ComponentRef {
	return missingComponents(doc, func(pkg *types.Package) bool {
		return pkg.CopyrightText.Missing()
	})
}

// HasAuthor reports whether the document carries creation author metadata.
func HasAuthor(doc *types.Document) bool {
	return doc != nil && len(doc.Creators) > 0
}

// HasTimestamp reports whether the document carries a creation timestamp.
func HasTimestamp(doc *types.Document) bool {
	return doc != nil && doc.Created != ""
}

// HasDependencyRelationships reports whether at least one declared
// relationship links components, i.e. a DESCRIBES or DEPENDS_ON
// relationship. This is a document-level requirement, not per-component
// coverage.
func HasDependencyRelationships(doc *types.Document) bool {
	if doc == nil {
		return false
	}
	for _, rel := range doc.Relationships {
		switch rel.Type {
		case types.RelationshipDescribes, types.RelationshipDependsOn:
			return true
		}
	}
	return false
}
