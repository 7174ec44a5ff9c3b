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

// Package report renders compliance results as plain text tables, HTML and
// JSON. The checkers supply the data; no compliance logic lives here.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	types "github.com/google/sbom-compliance/pkg/checkers/types"
	"github.com/mattn/go-isatty"
)

const statusPresent = "Present"

const statusMissing = "Missing"

// safeAttr substitutes the literal "N/A" for empty context attributes.
func safeAttr(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func colorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// RenderTable writes the element/status table for one compliance run,
// followed by the verdict. Verbose appends the components behind every
// failing element.
func RenderTable(w io.Writer, rep *types.Report, verbose bool) {
	presentStyle := lipgloss.NewStyle()
	missingStyle := lipgloss.NewStyle()
	if colorsEnabled() {
		presentStyle = presentStyle.Foreground(lipgloss.Color("2"))
		missingStyle = missingStyle.Foreground(lipgloss.Color("1"))
	}

	name := rep.SBOMName
	if name == "" {
		name = "(unknown)"
	}
	fmt.Fprintf(w, "%s results for %s\n", rep.Standard, name)

	resultsTable := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("Element", "Status")
	for _, element := range rep.Elements {
		status := presentStyle.Render(statusPresent)
		if !element.Present {
			status = missingStyle.Render(statusMissing)
		}
		resultsTable.Row(element.Name, status)
	}
	fmt.Fprintln(w, resultsTable.Render())

	fmt.Fprintf(w, "Compliant: %t\n", rep.Compliant)
	if len(rep.ParsingErrors) > 0 {
		fmt.Fprintln(w, "Parsing errors:")
		for _, parseErr := range rep.ParsingErrors {
			fmt.Fprintf(w, "\t- %s\n", parseErr)
		}
	}

	if !verbose {
		return
	}
	for _, element := range rep.Elements {
		if len(element.MissingComponents) == 0 {
			continue
		}
		fmt.Fprintf(w, "Components missing %s:\n", strings.ToLower(element.Name))
		for _, ref := range element.MissingComponents {
			fmt.Fprintf(w, "\t- %s\n", ref)
		}
	}
}

// PrintValidationMessages writes validator output as plain text. Messages
// without text are skipped; verbose adds the element context.
func PrintValidationMessages(
	w io.Writer,
	messages []types.ValidationMessage,
	verbose bool,
) {
	for _, msg := range messages {
		if msg.Message == "" {
			continue
		}
		fmt.Fprintf(w, "Validation message: %s\n", msg.Message)
		if verbose && msg.Context != nil {
			fmt.Fprintf(w, "\tSPDX ID: %s\n", safeAttr(msg.Context.SPDXID))
			fmt.Fprintf(w, "\tParent ID: %s\n", safeAttr(msg.Context.ParentID))
			fmt.Fprintf(w, "\tElement type: %s\n", safeAttr(msg.Context.ElementType))
		}
	}
}
