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
	return strings.HasSuffix(filename, ".hcl")
}

// 📝 Parse parses the project from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Project, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "project.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	type hclProject struct {
		Folders []struct {
			Path         string `hcl:"path"`
			MagentoRoot  bool   `hcl:"magento_root,optional"`
			MagentoTheme bool   `hcl:"magento_theme,optional"`
		} `hcl:"folder,block"`
		Settings *struct {
			MagentoRoot  string `hcl:"magento_root,optional"`
			MagentoTheme string `hcl:"magento_theme,optional"`
		} `hcl:"settings,block"`
		Copy *struct {
			Extensions     []string `hcl:"extensions,optional"`
			IgnorePatterns []string `hcl:"ignore_patterns,optional"`
		} `hcl:"copy,block"`
	}

	var raw hclProject
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	project := &Project{}
	for _, f := range raw.Folders {
		project.Folders = append(project.Folders, Folder{
			Path:         f.Path,
			MagentoRoot:  f.MagentoRoot,
			MagentoTheme: f.MagentoTheme,
		})
	}
	if raw.Settings != nil {
		project.Settings = &Settings{
			MagentoRoot:  raw.Settings.MagentoRoot,
			MagentoTheme: raw.Settings.MagentoTheme,
		}
	}
	if raw.Copy != nil {
		project.Copy = &CopyArgs{
			Extensions:     raw.Copy.Extensions,
			IgnorePatterns: raw.Copy.IgnorePatterns,
		}
	}

	return project, nil
}
