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

package report

import (
	"fmt"
	"html"
	"strings"

	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

// RenderHTML produces the HTML rendering of one compliance run.
func RenderHTML(rep *types.Report, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s Conformance Results</h2>\n", html.EscapeString(rep.Standard))
	fmt.Fprintf(&b, "<p>SBOM name: %s</p>\n", html.EscapeString(safeAttr(rep.SBOMName)))
	fmt.Fprintf(&b, "<p>Compliant: %t</p>\n", rep.Compliant)
	fmt.Fprintf(&b, "<p>Total components: %d</p>\n", rep.TotalComponents)

	b.WriteString("<table>\n<tr><th>Element</th><th>Status</th></tr>\n")
	for _, element := range rep.Elements {
		status := statusPresent
		if !element.Present {
			status = statusMissing
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>\n",
			html.EscapeString(element.Name), status)
	}
	b.WriteString("</table>\n")

	if len(rep.ParsingErrors) > 0 {
		b.WriteString("<h3>Parsing errors</h3>\n<ul>\n")
		for _, parseErr := range rep.ParsingErrors {
			fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(parseErr))
		}
		b.WriteString("</ul>\n")
	}

	if verbose {
		for _, element := range rep.Elements {
			if len(element.MissingComponents) == 0 {
				continue
			}
			fmt.Fprintf(&b, "<h3>Components missing %s</h3>\n<ul>\n",
				html.EscapeString(strings.ToLower(element.Name)))
			for _, ref := range element.MissingComponents {
				fmt.Fprintf(&b, "<li>%s</li>\n", html.EscapeString(ref.String()))
			}
			b.WriteString("</ul>\n")
		}
	}

	if len(rep.ValidationMessages) > 0 {
		b.WriteString("<h3>Validation messages</h3>\n")
		b.WriteString(ValidationMessagesHTML(rep.ValidationMessages))
		b.WriteString("\n")
	}
	return b.String()
}

// ValidationMessagesHTML renders validator output as an HTML list. Messages
// without text are skipped; with no renderable messages the result is
// exactly the empty wrapper "<ul>\n</ul>".
func ValidationMessagesHTML(messages []types.ValidationMessage) string {
	var b strings.Builder
	b.WriteString("<ul>\n")
	for _, msg := range messages {
		if msg.Message == "" {
			continue
		}
		b.WriteString("<li><strong>Validation message:</strong> ")
		b.WriteString(html.EscapeString(msg.Message))
		if msg.Context != nil {
			b.WriteString("<br>\n<strong>Validation context:</strong> ")
			fmt.Fprintf(&b, "SPDX ID: %s, Parent ID: %s, Element type: %s",
				html.EscapeString(safeAttr(msg.Context.SPDXID)),
				html.EscapeString(safeAttr(msg.Context.ParentID)),
				html.EscapeString(safeAttr(msg.Context.ElementType)))
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>")
	return b.String()
}
