package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"

	"github.com/seal-io/bendump/pkg/render"
	"github.com/seal-io/bendump/utils/logging"
	"github.com/seal-io/bendump/utils/pointer"
	bversion "github.com/seal-io/bendump/utils/version"
)

const (
	fileName    = "bendump.hcl"
	filePattern = "*_bendump.hcl"
)

// HasConfig checks if the given directory has a bendump configuration.
func HasConfig(fs afero.Fs, dir string) (bool, error) {
	files, err := configFiles(afero.Afero{Fs: fs}, dir)
	if err != nil {
		return false, err
	}

	return len(files) != 0, nil
}

// Load loads the bendump configuration from the given directory,
// returns Default if no configuration file is found.
//
// Files matching `*_bendump.hcl` are read in lexical order before `bendump.hcl`,
// a later bendump block overrides the attributes set by an earlier one.
func Load(fs afero.Fs, dir string) (*Config, error) {
	afs := afero.Afero{Fs: fs}

	files, err := configFiles(afs, dir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return Default(), nil
	}

	bodies := make([]*hcl.File, 0, len(files))
	{
		parser := hclparse.NewParser()

		for _, fn := range files {
			bs, err := afs.ReadFile(fn)
			if err != nil {
				return nil, fmt.Errorf("failed to read file `%s`: %w", fn, err)
			}

			f, d := parser.ParseHCL(bs, fn)
			if d.HasErrors() {
				return nil, fmt.Errorf("failed to parse file `%s`: %w", fn, d)
			}

			bodies = append(bodies, f)
		}
	}

	logging.Named("config").Debug("loading", "files", files)

	cfg, diags := buildConfig(hcl.MergeFiles(bodies), evalContext(os.Environ()))
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to build bendump config: %w", diags)
	}

	return cfg, nil
}

func configFiles(fs afero.Afero, dir string) ([]string, error) {
	gs, err := afero.Glob(fs, filepath.Join(dir, filePattern))
	if err != nil {
		return nil, fmt.Errorf("failed to glob files suffix with `_bendump.hcl`: %w", err)
	}

	files := make([]string, 0, len(gs)+1)

	for _, fn := range append(gs, filepath.Join(dir, fileName)) {
		si, err := fs.Stat(fn)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat file `%s`: %w", fn, err)
		}

		if si != nil && !si.IsDir() {
			files = append(files, fn)
		}
	}

	return files, nil
}

// evalContext exposes the given environment as the `env` object.
func evalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

func buildConfig(body hcl.Body, ctx *hcl.EvalContext) (*Config, hcl.Diagnostics) {
	bc, diags := body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{
				Type: "bendump",
			},
		},
	})
	if diags.HasErrors() {
		return nil, diags
	}

	cfg := Default()

	for _, b := range bc.Blocks.OfType("bendump") {
		var v struct {
			RequiredVersion *string `hcl:"required_version,optional"`
			Format          *string `hcl:"format,optional"`
			Indent          *int    `hcl:"indent,optional"`
			MaxDepth        *int    `hcl:"max_depth,optional"`
			MaxErrors       *int    `hcl:"max_errors,optional"`
			ErrorsTo        *string `hcl:"errors_to,optional"`
		}

		dDiags := gohcl.DecodeBody(b.Body, ctx, &v)
		if dDiags.HasErrors() {
			diags = diags.Extend(dDiags)
			continue
		}

		rng := b.DefRange.Ptr()

		if v.RequiredVersion != nil {
			cfg.RequiredVersion = *v.RequiredVersion
			diags = diags.Extend(checkRequiredVersion(cfg.RequiredVersion, rng))
		}

		if v.Format != nil {
			f, err := render.ParseFormat(*v.Format)
			if err != nil {
				diags = diags.Append(invalid("format", err.Error(), rng))
			}

			cfg.Format = f
		}

		cfg.Indent = pointer.IntDeref(v.Indent, cfg.Indent)
		if cfg.Indent <= 0 {
			diags = diags.Append(invalid("indent", "must be positive", rng))
		}

		cfg.MaxDepth = pointer.IntDeref(v.MaxDepth, cfg.MaxDepth)
		if cfg.MaxDepth <= 0 {
			diags = diags.Append(invalid("max_depth", "must be positive", rng))
		}

		cfg.MaxErrors = pointer.IntDeref(v.MaxErrors, cfg.MaxErrors)
		if cfg.MaxErrors < 0 {
			diags = diags.Append(invalid("max_errors", "must not be negative, 0 means unlimited", rng))
		}

		cfg.ErrorsTo = pointer.StringDeref(v.ErrorsTo, cfg.ErrorsTo)
		if cfg.ErrorsTo == "" {
			diags = diags.Append(invalid("errors_to", "must not be empty", rng))
		}
	}

	return cfg, diags
}

// checkRequiredVersion verifies the running version against the given constraint.
func checkRequiredVersion(constraint string, rng *hcl.Range) hcl.Diagnostics {
	cs, err := version.NewConstraint(constraint)
	if err != nil {
		return hcl.Diagnostics{invalid("required_version", err.Error(), rng)}
	}

	current := version.Must(version.NewVersion(bversion.Semantic()))
	if !cs.Check(current) {
		return hcl.Diagnostics{
			{
				Severity: hcl.DiagError,
				Summary:  "Unsupported bendump version",
				Detail: fmt.Sprintf("This configuration requires bendump %s, but the running version is %s.",
					constraint, current),
				Subject: rng,
			},
		}
	}

	return nil
}

func invalid(attr, detail string, rng *hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %q attribute", attr),
		Detail:   detail,
		Subject:  rng,
	}
}
