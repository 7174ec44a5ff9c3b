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

// Package validate produces structural validation messages for a parsed
// SBOM. The messages are surfaced alongside the compliance verdict; they do
// not feed into it.
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

const documentElementType = "Document"

var spdxVersionFormat = regexp.MustCompile(`^SPDX-\d+\.\d+$`)

// Matches strings like "Organization: foo (foo@bar.com)". The email is
// captured. The spec isn't very clear, but we interpret it to allow
// "Organization: foo (inc) (email@domain.com)". In other words, the email is
// the last parenthesis group.
var creatorEmail = regexp.MustCompile(`.+?\ \(([^\(\)]*?)\)$`)

// Document runs all structural checks. A nil document yields no messages;
// parsing failures are reported through the checker's parsing-error state
// instead.
func Document(doc *types.Document) []types.ValidationMessage {
	messages := make([]types.ValidationMessage, 0)
	if doc == nil {
		return messages
	}
	messages = append(messages, documentChecks(doc)...)
	messages = append(messages, creatorChecks(doc)...)
	messages = append(messages, packageChecks(doc)...)
	return messages
}

func documentMessage(doc *types.Document, msg string) types.ValidationMessage {
	return types.ValidationMessage{
		Message: msg,
		Context: &types.ValidationContext{
			SPDXID:      doc.SPDXID,
			ElementType: documentElementType,
		},
	}
}

func documentChecks(doc *types.Document) []types.ValidationMessage {
	messages := make([]types.ValidationMessage, 0)
	if !spdxVersionFormat.MatchString(doc.SPDXVersion) {
		messages = append(messages, documentMessage(doc, fmt.Sprintf(
			"The SPDXVersion field should have the form SPDX-M.N but is %q", doc.SPDXVersion)))
	}
	if doc.DataLicense != "CC0-1.0" {
		messages = append(messages, documentMessage(doc,
			"The data license must be CC0-1.0"))
	}
	if doc.SPDXID != "SPDXRef-DOCUMENT" {
		messages = append(messages, documentMessage(doc,
			"The document SPDX identifier must be SPDXRef-DOCUMENT"))
	}
	if doc.Name == "" {
		messages = append(messages, documentMessage(doc,
			"The document has no name"))
	}
	messages = append(messages, namespaceCheck(doc)...)
	messages = append(messages, createdCheck(doc)...)
	return messages
}

func namespaceCheck(doc *types.Document) []types.ValidationMessage {
	messages := make([]types.ValidationMessage, 0)
	if doc.Namespace == "" {
		messages = append(messages, documentMessage(doc,
			"The document has no namespace"))
		return messages
	}
	parsed, err := url.Parse(doc.Namespace)
	if err != nil || !parsed.IsAbs() || strings.Contains(doc.Namespace, "#") {
		messages = append(messages, documentMessage(doc, fmt.Sprintf(
			"The document namespace %q must be an absolute URI without a fragment", doc.Namespace)))
	}
	return messages
}

func createdCheck(doc *types.Document) []types.ValidationMessage {
	messages := make([]types.ValidationMessage, 0)
	if doc.Created == "" {
		return messages
	}
	// The timestamp must be a valid RFC3339 time. The RFC allows a timezone
	// offset other than UTC, which is not allowed by SPDX, so the last
	// character must be 'Z'.
	_, err := time.Parse(time.RFC3339, doc.Created)
	if err != nil || !strings.HasSuffix(doc.Created, "Z") {
		messages = append(messages, documentMessage(doc, fmt.Sprintf(
			"The 'Created' field is formatted incorrectly. It is %s. "+
				"The correct format is YYYY-MM-DDThh:mm:ssZ", doc.Created)))
	}
	return messages
}

func creatorChecks(doc *types.Document) []types.ValidationMessage {
	messages := make([]types.ValidationMessage, 0)
	for _, creator := range doc.Creators {
		if creator.Creator == "" {
			messages = append(messages, documentMessage(doc,
				"A creator entry has no value"))
			continue
		}
		switch creator.Type {
		case "Tool":
			tool, version, found := strings.Cut(creator.Creator, "-")
			if !found || tool == "" || version == "" {
				messages = append(messages, documentMessage(doc, fmt.Sprintf(
					"The Tool creator %q should have the form toolidentifier-version", creator.Creator)))
			}
		case "Person", "Organization":
			matches := creatorEmail.FindStringSubmatch(creator.Creator)
			// an email is not required, and we allow '()'
			if len(matches) <= 1 || matches[1] == "" {
				continue
			}
			if _, err := mail.ParseAddress(matches[1]); err != nil {
				messages = append(messages, documentMessage(doc, fmt.Sprintf(
					"The creator %q carries a malformed email address", creator.Creator)))
			}
		default:
			messages = append(messages, documentMessage(doc, fmt.Sprintf(
				"The creator type %q is not one of Tool, Person or Organization", creator.Type)))
		}
	}
	return messages
}

func packageMessage(doc *types.Document, pkg *types.Package, msg string) types.ValidationMessage {
	return types.ValidationMessage{
		Message: msg,
		Context: &types.ValidationContext{
			SPDXID:      pkg.SPDXID,
			ParentID:    doc.SPDXID,
			ElementType: "Package",
		},
	}
}

func packageChecks(doc *types.Document) []types.ValidationMessage {
	messages := make([]types.ValidationMessage, 0)
	seenIDs := map[string]any{}
	for _, pkg := range doc.Packages {
		if pkg.SPDXID != "" {
			idstring, found := strings.CutPrefix(pkg.SPDXID, "SPDXRef-")
			switch {
			case !found:
				messages = append(messages, packageMessage(doc, pkg,
					"The package SPDX identifier should have the form SPDXRef-[idstring]"))
			case !idStringIsConformant(idstring):
				messages = append(messages, packageMessage(doc, pkg,
					"The package SPDX identifier should have letters, numbers, \".\" and/or \"-\""))
			}
			if _, found := seenIDs[pkg.SPDXID]; found {
				messages = append(messages, packageMessage(doc, pkg, fmt.Sprintf(
					"The package SPDX identifier %s is not unique", pkg.SPDXID)))
			}
			seenIDs[pkg.SPDXID] = struct{}{}
		}
		if pkg.DownloadLocation == "" {
			messages = append(messages, packageMessage(doc, pkg,
				"The package has no download location"))
		}
	}
	return messages
}

func idStringIsConformant(idstring string) bool {
	charIsNotAllowed := func(c rune) bool {
		return c != '.' && c != '-' && !unicode.IsLetter(c) && !unicode.IsDigit(c)
	}
	return idstring != "" && !strings.ContainsFunc(idstring, charIsNotAllowed)
}
