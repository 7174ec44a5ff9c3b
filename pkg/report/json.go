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
	"encoding/json"
	"fmt"

	types "github.com/google/sbom-compliance/pkg/checkers/types"
)

// RenderJSON marshals the report with stable two-space indentation.
func RenderJSON(rep *types.Report) (string, error) {
	jsonBytes, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling report: %w", err)
	}
	return string(jsonBytes), nil
}
