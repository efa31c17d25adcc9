package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitecompose/internal/config"
	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
)

// OutputFormat infers the output format from a file name; JSON unless it ends in
// .yaml, .yml or .toml.
func OutputFormat(path string) config.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return config.FormatYAML
	case ".toml":
		return config.FormatTOML
	default:
		return config.FormatJSON
	}
}

// Marshal renders the configuration for the external builder. The ConfigID is included
// under customFields.configId.
func Marshal(cfg *SiteConfig, format config.Format) ([]byte, error) {
	if cfg == nil {
		return nil, ferrors.InternalError("marshal: nil site configuration").Build()
	}
	style := PluginTuples
	if format == config.FormatTOML {
		style = PluginTables
	}
	doc := cfg.Document(style)
	doc["customFields"] = map[string]any{"configId": cfg.configID}

	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
		data = buf.Bytes()
	case config.FormatYAML:
		data, err = yaml.Marshal(doc)
	case config.FormatTOML:
		data, err = toml.Marshal(doc)
	default:
		return nil, ferrors.ValidationError(fmt.Sprintf("unsupported output format %q", format)).
			WithContext("format", string(format)).
			Build()
	}
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryEncoding, fmt.Sprintf("encode %s output", format)).Build()
	}
	return data, nil
}

// WriteFile marshals the configuration and replaces path atomically. An empty format is
// inferred from the file name.
func WriteFile(cfg *SiteConfig, path string, format config.Format) error {
	if format == "" {
		format = OutputFormat(path)
	}
	data, err := Marshal(cfg, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create output directory").WithContext("path", dir).Build()
	}
	tmp, err := os.CreateTemp(dir, ".sitecompose-*")
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create temporary output").WithContext("path", dir).Build()
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write output").WithContext("path", path).Build()
	}
	if err := tmp.Close(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "close output").WithContext("path", path).Build()
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "chmod output").WithContext("path", path).Build()
	}
	if err := os.Rename(tmpName, path); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "replace output").WithContext("path", path).Build()
	}
	return nil
}
