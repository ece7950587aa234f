package render

import (
	"fmt"
	"path/filepath"
)

// Options control a build
type Options struct {
	Ext   string // template suffix stripped from output names
	Force bool   // rewrite outputs whose content is unchanged
	Check bool   // render only, write nothing
}

// Outcome is the result of one template in a build
type Outcome struct {
	Template string
	Output   string
	Result   Result
}

// Build renders every template against ctx. All templates are rendered
// before anything is written, so a failing template leaves no output behind.
func Build(ctx map[string]any, templates []string, dest string, opts Options) ([]Outcome, error) {
	if len(templates) > 1 && dest != "" && !IsDir(dest) {
		return nil, fmt.Errorf("destination %s must be a directory when rendering %d templates", dest, len(templates))
	}

	type pending struct {
		outcome Outcome
		data    []byte
	}
	var rendered []pending
	seen := make(map[string]string)
	for _, tmpl := range templates {
		data, err := RenderFile(tmpl, ctx)
		if err != nil {
			return nil, err
		}
		if opts.Check {
			rendered = append(rendered, pending{outcome: Outcome{Template: tmpl, Result: Checked}})
			continue
		}
		out, err := OutputPath(tmpl, dest, opts.Ext)
		if err != nil {
			return nil, err
		}
		key := filepath.Clean(out)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("templates %s and %s both render to %s", prev, tmpl, out)
		}
		seen[key] = tmpl
		rendered = append(rendered, pending{outcome: Outcome{Template: tmpl, Output: out}, data: data})
	}

	outcomes := make([]Outcome, 0, len(rendered))
	for _, p := range rendered {
		if !opts.Check {
			res, err := WriteOutput(p.outcome.Output, p.data, opts.Force)
			if err != nil {
				return outcomes, err
			}
			p.outcome.Result = res
		}
		outcomes = append(outcomes, p.outcome)
	}
	return outcomes, nil
}
