// Package config parses problem-generation configuration files. A
// configuration file is HCL and holds one or more problem blocks, each
// naming a codomain function and min/max/step ranges for the four input
// parameters:
//
//	problem {
//	  codomain = "trap"
//	  m {
//	    min  = 2
//	    max  = 6
//	    step = 2
//	  }
//	  k {
//	    min = 3
//	  }
//	  o {
//	    min = 1
//	  }
//	  b {
//	    min = 0
//	  }
//	}
//
// Each block expands into the cartesian product of its ranges, in nested
// loop order with m outermost, then k, o and b.
package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/mklandgo/internal/landscape"
)

// Range is an inclusive integer range with a step. Max defaults to Min and
// Step defaults to 1 when omitted in the configuration file.
type Range struct {
	Min  int
	Max  int
	Step int
}

// Values expands the range into its concrete values, in increasing order.
func (r Range) Values() []int {
	var values []int
	for v := r.Min; v <= r.Max; v += r.Step {
		values = append(values, v)
	}
	return values
}

func (r Range) validate(name string) error {
	if r.Min < 0 {
		return fmt.Errorf("range %s: min must be non-negative, got %d", name, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("range %s: max %d is below min %d", name, r.Max, r.Min)
	}
	if r.Step < 1 {
		return fmt.Errorf("range %s: step must be at least 1, got %d", name, r.Step)
	}
	return nil
}

// Parameters is one problem block: the codomain function to generate and the
// ranges of input parameters to sweep.
type Parameters struct {
	Function   landscape.Function
	M, K, O, B Range
}

// Instances expands the ranges into concrete InputParameters, validating
// each combination. A combination violating k >= o is an error rather than
// being skipped, so misconfigured ranges are caught early.
func (p Parameters) Instances() ([]landscape.InputParameters, error) {
	var instances []landscape.InputParameters
	for _, m := range p.M.Values() {
		for _, k := range p.K.Values() {
			for _, o := range p.O.Values() {
				for _, b := range p.B.Values() {
					params := landscape.InputParameters{M: m, K: k, O: o, B: b}
					if err := params.Validate(); err != nil {
						return nil, err
					}
					instances = append(instances, params)
				}
			}
		}
	}
	return instances, nil
}

// HCL decoding schema.
type rangeBlock struct {
	Min  int  `hcl:"min"`
	Max  *int `hcl:"max,optional"`
	Step *int `hcl:"step,optional"`
}

type problemBlock struct {
	Codomain hcl.Expression `hcl:"codomain"`
	M        rangeBlock     `hcl:"m,block"`
	K        rangeBlock     `hcl:"k,block"`
	O        rangeBlock     `hcl:"o,block"`
	B        rangeBlock     `hcl:"b,block"`
}

type fileConfig struct {
	Problems []*problemBlock `hcl:"problem,block"`
}

func (b rangeBlock) toRange(name string) (Range, error) {
	r := Range{Min: b.Min, Max: b.Min, Step: 1}
	if b.Max != nil {
		r.Max = *b.Max
	}
	if b.Step != nil {
		r.Step = *b.Step
	}
	return r, r.validate(name)
}

// FromFile parses a configuration file into its problem blocks, in file
// order. HCL diagnostics carry file and line context and are surfaced
// verbatim.
func FromFile(path string) ([]Parameters, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse configuration file %s: %s", path, diags.Error())
	}

	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode configuration file %s: %s", path, diags.Error())
	}
	if len(cfg.Problems) == 0 {
		return nil, fmt.Errorf("configuration file %s contains no problem blocks", path)
	}

	parameters := make([]Parameters, 0, len(cfg.Problems))
	for _, block := range cfg.Problems {
		id, err := evalString(block.Codomain)
		if err != nil {
			return nil, fmt.Errorf("configuration file %s: codomain: %w", path, err)
		}
		fn, err := landscape.ParseFunction(id)
		if err != nil {
			return nil, fmt.Errorf("configuration file %s: %w", path, err)
		}

		p := Parameters{Function: fn}
		for _, rb := range []struct {
			name  string
			block rangeBlock
			dst   *Range
		}{
			{"m", block.M, &p.M},
			{"k", block.K, &p.K},
			{"o", block.O, &p.O},
			{"b", block.B, &p.B},
		} {
			r, err := rb.block.toRange(rb.name)
			if err != nil {
				return nil, fmt.Errorf("configuration file %s: %w", path, err)
			}
			*rb.dst = r
		}
		parameters = append(parameters, p)
	}
	return parameters, nil
}

// evalString evaluates an HCL expression with no variables in scope and
// requires a string result.
func evalString(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("%s", diags.Error())
	}
	if !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("expected a string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}
