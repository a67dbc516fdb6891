package config

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a configuration file from fsys and returns its values as a Map
// keyed by dotted path (e.g., shell.SPAWN_DEPTH_LIMIT). Nested blocks and flat
// dotted keys are equivalent. Scalars are converted to their string form.
//
// Supported formats are YAML (.yaml, .yml), JSON (.json) and CUE (.cue).
// A nil fsys reads from the local filesystem.
//
// Returns CodeNotFound if the file does not exist.
// Returns CodeInvalidConfig on YAML/JSON syntax errors.
// Returns CodeCUEBuildFailed or CodeCUEValidationFailed on CUE errors.
// Returns CodeInvalidInput for unsupported extensions.
func LoadFile(ctx context.Context, fsys core.ReadFS, path string) (Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "context cancelled before loading configuration")
	}

	fileCtx := map[string]interface{}{"file_path": path}

	name := path
	if fsys == nil {
		// The local filesystem is rooted at "/".
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidInput, "failed to resolve configuration path", fileCtx)
		}
		fsys = billy.NewLocal()
		name = abs
	}

	data, err := fsys.ReadFile(name)
	if err != nil {
		code := errors.CodeInvalidConfig
		if errors.Is(err, fs.ErrNotExist) {
			code = errors.CodeNotFound
		}
		return nil, errors.WrapWithContext(err, code, "failed to read configuration file", fileCtx)
	}

	values := make(Map)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		var doc map[string]interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig, "failed to parse configuration file", fileCtx)
		}
		flatten("", doc, values)
	case ".cue":
		if err := decodeCUE(data, path, values); err != nil {
			return nil, errors.WithContextMap(err, fileCtx)
		}
	default:
		return nil, errors.WithContextMap(
			errors.Newf(errors.CodeInvalidInput, "unsupported configuration file extension %q", ext),
			fileCtx,
		)
	}

	return values, nil
}

// flatten copies a decoded document into out using dotted keys.
func flatten(prefix string, doc map[string]interface{}, out Map) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func decodeCUE(data []byte, path string, out Map) error {
	v := cuecontext.New().CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return errors.Wrap(err, errors.CodeCUEBuildFailed, "failed to build CUE configuration")
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return errors.Wrap(err, errors.CodeCUEValidationFailed, "CUE configuration is not concrete")
	}
	return walkCUE("", v, out)
}

// walkCUE copies the regular fields of a CUE struct into out using dotted keys.
func walkCUE(prefix string, v cue.Value, out Map) error {
	iter, err := v.Fields()
	if err != nil {
		return errors.Wrap(err, errors.CodeCUEDecodeFailed, "failed to iterate CUE configuration")
	}

	for iter.Next() {
		key := iter.Selector().Unquoted()
		if prefix != "" {
			key = prefix + "." + key
		}

		field := iter.Value()
		switch field.Kind() {
		case cue.StructKind:
			if err := walkCUE(key, field, out); err != nil {
				return err
			}
		case cue.BoolKind:
			b, _ := field.Bool()
			out[key] = fmt.Sprint(b)
		case cue.IntKind:
			i, err := field.Int64()
			if err != nil {
				return errors.WrapWithContext(err, errors.CodeCUEDecodeFailed, "integer out of range", map[string]interface{}{"key": key})
			}
			out[key] = fmt.Sprint(i)
		case cue.FloatKind:
			f, _ := field.Float64()
			out[key] = fmt.Sprint(f)
		case cue.StringKind:
			s, _ := field.String()
			out[key] = s
		}
	}

	return nil
}
