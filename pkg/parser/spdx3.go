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

package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

// spdx3Node is the union of the JSON-LD graph node shapes we care about:
// software_Package, Relationship, CreationInfo, SpdxDocument and the agent
// types. Unknown node types are ignored.
type spdx3Node struct {
	Type   string `json:"type"`
	SpdxID string `json:"spdxId"`
	ID     string `json:"@id"`
	Name   string `json:"name"`

	// software_Package
	PackageVersion   string `json:"software_packageVersion"`
	SuppliedBy       string `json:"suppliedBy"`
	CopyrightText    string `json:"software_copyrightText"`
	DownloadLocation string `json:"software_downloadLocation"`

	// Relationship
	From             string   `json:"from"`
	To               []string `json:"to"`
	RelationshipType string   `json:"relationshipType"`

	// CreationInfo
	Created     string   `json:"created"`
	CreatedBy   []string `json:"createdBy"`
	SpecVersion string   `json:"specVersion"`

	// simplelicensing_LicenseExpression
	LicenseExpression string `json:"simplelicensing_licenseExpression"`
}

type spdx3Graph struct {
	Graph []spdx3Node `json:"@graph"`
}

// FromSPDX3 decodes an SPDX 3.0 JSON-LD serialization into the neutral
// document model. Concluded licenses arrive as hasConcludedLicense
// relationships pointing at license expression nodes.
func FromSPDX3(sbom io.Reader) (*types.Document, error) {
	var graph spdx3Graph
	if err := json.NewDecoder(sbom).Decode(&graph); err != nil {
		return nil, fmt.Errorf("error parsing SPDX 3 JSON-LD: %w", err)
	}
	if len(graph.Graph) == 0 {
		return nil, errSBOMParse
	}

	// Index every node so that agent and license references can be resolved.
	nodes := make(map[string]spdx3Node, len(graph.Graph))
	for _, node := range graph.Graph {
		if node.SpdxID != "" {
			nodes[node.SpdxID] = node
		}
		if node.ID != "" {
			nodes[node.ID] = node
		}
	}

	doc := &types.Document{}
	packages := make(map[string]*types.Package)
	for _, node := range graph.Graph {
		switch node.Type {
		case "SpdxDocument", "Sbom", "software_Sbom":
			if doc.Name == "" {
				doc.Name = node.Name
			}
			if doc.SPDXID == "" {
				doc.SPDXID = node.SpdxID
			}
		case "CreationInfo":
			doc.Created = node.Created
			if node.SpecVersion != "" {
				doc.SPDXVersion = "SPDX-" + node.SpecVersion
			}
			for _, ref := range node.CreatedBy {
				doc.Creators = append(doc.Creators, creatorFromAgent(nodes, ref))
			}
		case "software_Package":
			pkg := &types.Package{
				Name:             node.Name,
				SPDXID:           node.SpdxID,
				Version:          node.PackageVersion,
				DownloadLocation: node.DownloadLocation,
				Supplier:         agentField(nodes, node.SuppliedBy),
				ConcludedLicense: types.AbsentField(),
				CopyrightText:    optionalField(node.CopyrightText),
			}
			packages[pkg.SPDXID] = pkg
			doc.Packages = append(doc.Packages, pkg)
		}
	}

	for _, node := range graph.Graph {
		if node.Type != "Relationship" {
			continue
		}
		switch node.RelationshipType {
		case "hasConcludedLicense":
			pkg, ok := packages[node.From]
			if !ok {
				continue
			}
			pkg.ConcludedLicense = licenseRefField(nodes, node.To)
		case "describes", "dependsOn":
			relType := types.RelationshipDependsOn
			if node.RelationshipType == "describes" {
				relType = types.RelationshipDescribes
			}
			for _, to := range node.To {
				doc.Relationships = append(doc.Relationships, types.Relationship{
					RefA: node.From,
					RefB: to,
					Type: relType,
				})
			}
		}
	}
	return doc, nil
}

func creatorFromAgent(nodes map[string]spdx3Node, ref string) types.Creator {
	agent, ok := nodes[ref]
	if !ok {
		return types.Creator{Type: "Organization", Creator: ref}
	}
	creatorType := "Organization"
	switch agent.Type {
	case "Person":
		creatorType = "Person"
	case "SoftwareAgent", "Tool":
		creatorType = "Tool"
	}
	return types.Creator{Type: creatorType, Creator: agent.Name}
}

func agentField(nodes map[string]spdx3Node, ref string) types.FieldValue {
	if ref == "" {
		return types.AbsentField()
	}
	if strings.Contains(ref, "NoAssertion") {
		return types.NoAssertionField()
	}
	if agent, ok := nodes[ref]; ok && agent.Name != "" {
		return types.PresentField(agent.Name)
	}
	return types.PresentField(ref)
}

func licenseRefField(nodes map[string]spdx3Node, to []string) types.FieldValue {
	if len(to) == 0 {
		return types.AbsentField()
	}
	ref := to[0]
	if strings.Contains(ref, "NoAssertion") {
		return types.NoAssertionField()
	}
	if lic, ok := nodes[ref]; ok && lic.LicenseExpression != "" {
		return optionalField(lic.LicenseExpression)
	}
	return types.PresentField(ref)
}
