package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
)

// Format identifies a fragment file serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath infers a fragment format from the file extension (YAML when unknown).
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Load reads fragment files in order, layering each file over the ones before it, then
// normalizes the result. Scalars set in a later file replace earlier values; a non-empty
// list in a later file replaces the earlier list as a whole, keeping its own order.
// Boolean fields can only be switched on by a later layer.
func Load(paths ...string) (*Fragments, *NormalizationResult, error) {
	if len(paths) == 0 {
		return nil, nil, ferrors.ValidationError("at least one fragment file is required").Build()
	}

	var merged Fragments
	for _, p := range paths {
		layer, err := loadFile(p)
		if err != nil {
			return nil, nil, err
		}
		if err := mergo.Merge(&merged, layer, mergo.WithOverride); err != nil {
			return nil, nil, ferrors.WrapError(err, ferrors.CategoryInternal, fmt.Sprintf("merge fragment %s", p)).Fatal().Build()
		}
	}

	res, err := Normalize(&merged)
	if err != nil {
		return nil, nil, err
	}
	return &merged, res, nil
}

func loadFile(path string) (Fragments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Fragments{}, ferrors.NewError(ferrors.CategoryNotFound, fmt.Sprintf("fragment file not found: %s", path)).Fatal().Build()
		}
		return Fragments{}, ferrors.WrapError(err, ferrors.CategoryFileSystem, fmt.Sprintf("read fragment %s", path)).Build()
	}

	expanded := os.ExpandEnv(string(data))
	f, err := Decode([]byte(expanded), FormatFromPath(path))
	if err != nil {
		return Fragments{}, ferrors.WrapError(err, ferrors.CategoryConfig, fmt.Sprintf("parse fragment %s", path)).Fatal().UserAction().Build()
	}
	return f, nil
}

// Decode parses one fragment document. Unknown keys are rejected so typos surface early.
func Decode(data []byte, format Format) (Fragments, error) {
	var f Fragments
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return Fragments{}, err
		}
	case FormatYAML, FormatJSON:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return Fragments{}, err
		}
	default:
		return Fragments{}, fmt.Errorf("unsupported fragment format %q", format)
	}
	return f, nil
}
