// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package plan

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Export writes p as YAML to path on fs. Parent directories are created and
// the file is written with owner-only permissions.
func Export(fs afero.Fs, path string, p Plan) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create plan dir: %w", err)
		}
	}

	var sb strings.Builder
	sb.WriteString(header(p))
	sb.Write(data)

	if err := afero.WriteFile(fs, path, []byte(sb.String()), 0600); err != nil {
		return fmt.Errorf("write plan: %w", err)
	}
	return nil
}

func header(p Plan) string {
	var sb strings.Builder
	sb.WriteString("# Minimal habit plan\n")
	sb.WriteString(fmt.Sprintf("# Generated %s\n", p.Created.Format(time.RFC3339)))
	if !p.Complete() {
		sb.WriteString("# Note: the wizard was left before the first step was decided.\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
