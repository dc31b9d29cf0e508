package validation

import (
	"context"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/jmgilman/go/httperrors/errors"
)

// Options configures validation behavior.
type Options struct {
	// Concrete requires all values to be concrete (fully specified).
	// If true, missing required fields fail validation.
	Concrete bool

	// Final resolves default values before validation.
	Final bool

	// All reports all errors instead of stopping at the first one.
	All bool
}

// DefaultOptions returns the options used unless WithOptions is given.
// By default, we require concrete values, finalize defaults and report every
// failing field.
func DefaultOptions() Options {
	return Options{
		Concrete: true,
		Final:    true,
		All:      true,
	}
}

func (o Options) cueOptions() []cue.Option {
	var opts []cue.Option
	if o.Concrete {
		opts = append(opts, cue.Concrete(true))
	}
	if o.Final {
		opts = append(opts, cue.Final())
	}
	if o.All {
		opts = append(opts, cue.All())
	}
	return opts
}

// Option configures a Validator.
type Option func(*config)

type config struct {
	opts       Options
	definition string
	filename   string
}

// WithOptions replaces the default validation options.
func WithOptions(opts Options) Option {
	return func(c *config) {
		c.opts = opts
	}
}

// WithDefinition validates against the named definition or field of the
// schema (e.g. "#Order") instead of its root value.
func WithDefinition(path string) Option {
	return func(c *config) {
		c.definition = path
	}
}

// Validator checks payloads against a compiled CUE schema.
// It is safe for concurrent use.
type Validator struct {
	// cue.Context and the values built from it are not safe for concurrent use.
	mu     sync.Mutex
	cueCtx *cue.Context
	schema cue.Value
	opts   Options
}

// NewValidator compiles source as a CUE schema.
//
// Returns CodeInvalidConfig if the source does not compile or the definition
// selected with WithDefinition does not exist.
func NewValidator(source string, opts ...Option) (*Validator, error) {
	return newValidator([]byte(source), opts...)
}

// LoadSchemaFile reads and compiles the CUE schema at path.
func LoadSchemaFile(path string, opts ...Option) (*Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapConfigError(err, "failed to read schema file", map[string]interface{}{
			"path": path,
		})
	}
	return newValidator(data, append(opts, withFilename(path))...)
}

func withFilename(name string) Option {
	return func(c *config) {
		c.filename = name
	}
}

func newValidator(source []byte, opts ...Option) (*Validator, error) {
	cfg := config{opts: DefaultOptions(), filename: "schema.cue"}
	for _, opt := range opts {
		opt(&cfg)
	}

	cueCtx := cuecontext.New()
	schema := cueCtx.CompileBytes(source, cue.Filename(cfg.filename))
	if err := schema.Err(); err != nil {
		return nil, wrapConfigError(err, "failed to compile schema", map[string]interface{}{
			"filename": cfg.filename,
			"details":  cueerrors.Details(err, nil),
		})
	}

	if cfg.definition != "" {
		path := cue.ParsePath(cfg.definition)
		if err := path.Err(); err != nil {
			return nil, wrapConfigError(err, "invalid schema definition path", map[string]interface{}{
				"definition": cfg.definition,
			})
		}
		schema = schema.LookupPath(path)
		if !schema.Exists() {
			return nil, errors.NewWithMeta(errors.CodeInvalidConfig, "schema definition not found", map[string]interface{}{
				"filename":   cfg.filename,
				"definition": cfg.definition,
			})
		}
	}

	return &Validator{
		cueCtx: cueCtx,
		schema: schema,
		opts:   cfg.opts,
	}, nil
}

// Context returns the CUE context the schema was compiled in. Values passed
// to Validate must be built from it.
func (v *Validator) Context() *cue.Context {
	return v.cueCtx
}

// Validate unifies data with the schema.
// Returns nil if data satisfies the schema, or an *errors.InputValidationError
// listing every failing field.
func (v *Validator) Validate(ctx context.Context, data cue.Value) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, err := v.validate(ctx, data)
	return err
}

// ValidateJSON parses body as JSON and validates it.
// Malformed JSON is reported as an input validation error.
func (v *Validator) ValidateJSON(ctx context.Context, body []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	data, err := v.buildJSON(body)
	if err != nil {
		return err
	}
	_, err = v.validate(ctx, data)
	return err
}

// ValidateYAML parses body as a YAML document and validates it.
// Malformed YAML is reported as an input validation error.
func (v *Validator) ValidateYAML(ctx context.Context, body []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	file, err := cueyaml.Extract("body.yaml", body)
	if err != nil {
		return inputError(err)
	}
	data := v.cueCtx.BuildFile(file)
	if err := data.Err(); err != nil {
		return inputError(err)
	}
	_, err = v.validate(ctx, data)
	return err
}

// DecodeJSON validates body and decodes the result, with schema defaults
// applied, into target.
//
// Returns an *errors.InputValidationError if body is invalid and
// CodeSchemaFailed if the validated value cannot be decoded into target.
func (v *Validator) DecodeJSON(ctx context.Context, body []byte, target interface{}) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	data, err := v.buildJSON(body)
	if err != nil {
		return err
	}
	unified, err := v.validate(ctx, data)
	if err != nil {
		return err
	}

	if err := unified.Decode(target); err != nil {
		return wrapSchemaError(err, "failed to decode validated payload", map[string]interface{}{
			"value_kind": unified.Kind().String(),
		})
	}
	return nil
}

func (v *Validator) buildJSON(body []byte) (cue.Value, error) {
	expr, err := cuejson.Extract("body.json", body)
	if err != nil {
		return cue.Value{}, inputError(err)
	}
	data := v.cueCtx.BuildExpr(expr)
	if err := data.Err(); err != nil {
		return cue.Value{}, inputError(err)
	}
	return data, nil
}

func (v *Validator) validate(ctx context.Context, data cue.Value) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, wrapSchemaError(err, "context cancelled", nil)
	}

	if err := data.Err(); err != nil {
		return cue.Value{}, inputError(err)
	}

	// data is the receiver so that error paths are relative to the payload
	// root rather than to the schema definition.
	unified := data.Unify(v.schema)

	// Validate reports more than unified.Err when All is set.
	if err := unified.Validate(v.opts.cueOptions()...); err != nil {
		return cue.Value{}, inputError(err)
	}

	return unified, nil
}
