// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_mapping": cty.StringVal(DefaultMapping),
		},
	}

	// Define HCL schema
	type hclConfig struct {
		Mapping        string   `hcl:"mapping,optional"`
		Extensions     []string `hcl:"extensions,optional"`
		ExcludeDirs    []string `hcl:"exclude_dirs,optional"`
		Patterns       []string `hcl:"patterns,optional"`
		IgnorePatterns []string `hcl:"ignore_patterns,optional"`
		DryRun         bool     `hcl:"dry_run,optional"`
		SpecialFile    *struct {
			Path        string `hcl:"path,optional"`
			StartMarker string `hcl:"start_marker,optional"`
			EndMarker   string `hcl:"end_marker,optional"`
			ImportFrom  string `hcl:"import_from,optional"`
			Disabled    bool   `hcl:"disabled,optional"`
		} `hcl:"special_file,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Mapping:        hclCfg.Mapping,
		Extensions:     hclCfg.Extensions,
		ExcludeDirs:    hclCfg.ExcludeDirs,
		Patterns:       hclCfg.Patterns,
		IgnorePatterns: hclCfg.IgnorePatterns,
		DryRun:         hclCfg.DryRun,
	}

	if hclCfg.SpecialFile != nil {
		cfg.SpecialFile = &SpecialFile{
			Path:        hclCfg.SpecialFile.Path,
			StartMarker: hclCfg.SpecialFile.StartMarker,
			EndMarker:   hclCfg.SpecialFile.EndMarker,
			ImportFrom:  hclCfg.SpecialFile.ImportFrom,
			Disabled:    hclCfg.SpecialFile.Disabled,
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
