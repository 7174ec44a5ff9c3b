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

// Package checkers constructs compliance checkers. The set of supported
// standards is fixed here; callers select one by its compliance identifier.
package checkers

import (
	"errors"
	"fmt"

	"github.com/google/sbom-compliance/pkg/checkers/base"
	"github.com/google/sbom-compliance/pkg/checkers/fsct"
	"github.com/google/sbom-compliance/pkg/checkers/ntia"
	"github.com/google/sbom-compliance/pkg/parser"
	"github.com/google/sbom-compliance/pkg/validate"
)

var (
	ErrUnknownCompliance = errors.New("unknown compliance standard")

	// ErrUnsupportedSpec mirrors the parser's sentinel so callers need only
	// this package to classify factory failures.
	ErrUnsupportedSpec = parser.ErrUnsupportedSpec
)

// New parses the SBOM at file and wraps it in the checker for the requested
// compliance standard. A parse failure does not fail construction: the
// checker is built around a nil document, reports the failure through its
// parsing-error state, and is never compliant. validateDoc controls whether
// structural validation messages are collected.
func New(file string, validateDoc bool, compliance, sbomSpec string) (base.Checker, error) {
	switch sbomSpec {
	case parser.SpecSPDX2, parser.SpecSPDX3:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSpec, sbomSpec)
	}

	parsingErrors := make([]string, 0)
	doc, err := parser.FromFile(file, sbomSpec)
	if err != nil {
		if errors.Is(err, parser.ErrUnsupportedSpec) {
			return nil, err
		}
		parsingErrors = append(parsingErrors, err.Error())
	}

	options := []func(*base.BaseChecker){
		base.WithFile(file),
		base.WithParsingErrors(parsingErrors),
	}
	if validateDoc {
		options = append(options, base.WithValidationMessages(validate.Document(doc)))
	}
	baseChecker := base.New(doc, options...)

	switch compliance {
	case ntia.Compliance:
		return ntia.New(baseChecker, compliance)
	case fsct.Compliance:
		return fsct.New(baseChecker, compliance)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompliance, compliance)
	}
}
