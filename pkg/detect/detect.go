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

// Package detect sniffs the SPDX version of an SBOM file without fully
// parsing it, by matching the version declaration of each supported
// serialization format against the head of the file.
package detect

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Version declarations never appear deep into a document.
const maxSniffBytes = 1 << 16

var versionPatterns = []*regexp.Regexp{
	// tag-value
	regexp.MustCompile(`SPDXVersion:\s*SPDX-(\d+)\.(\d+)`),
	// JSON
	regexp.MustCompile(`"spdxVersion"\s*:\s*"SPDX-(\d+)\.(\d+)`),
	// YAML, optionally quoted
	regexp.MustCompile(`spdxVersion:\s*['"]?SPDX-(\d+)\.(\d+)`),
	// XML
	regexp.MustCompile(`<spdxVersion>\s*SPDX-(\d+)\.(\d+)`),
	// RDF
	regexp.MustCompile(`spdx:specVersion>\s*SPDX-(\d+)\.(\d+)`),
}

var spdx3Context = regexp.MustCompile(
	`"@context"\s*:\s*"https://spdx\.org/rdf/3\.\d+/spdx-context\.jsonld"`,
)

// SPDXVersion returns the major and minor SPDX version declared by the file.
// Patch versions are truncated to major.minor. ok is false when the file
// cannot be read, is not valid UTF-8, is a spreadsheet, or declares no
// recognizable version.
func SPDXVersion(path string) (major, minor int, ok bool) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xls") || strings.HasSuffix(lower, ".xlsx") {
		return 0, 0, false
	}
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, false
	}
	defer file.Close()

	head, err := io.ReadAll(io.LimitReader(file, maxSniffBytes))
	if err != nil || !utf8.Valid(head) {
		return 0, 0, false
	}

	if spdx3Context.Match(head) {
		return 3, 0, true
	}
	for _, pattern := range versionPatterns {
		matches := pattern.FindSubmatch(head)
		if matches == nil {
			continue
		}
		major, _ = strconv.Atoi(string(matches[1]))
		minor, _ = strconv.Atoi(string(matches[2]))
		return major, minor, true
	}
	return 0, 0, false
}
