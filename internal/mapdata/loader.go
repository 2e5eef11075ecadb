// Package mapdata loads pyramid definitions from JSON and HCL files and from
// the embedded sample set.
package mapdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pyramid/data"
	"github.com/samdwyer/pyramid/internal/ctxlog"
	"github.com/samdwyer/pyramid/internal/telemetry"
	"github.com/samdwyer/pyramid/internal/world"
)

// ErrUnsupportedFormat is returned for files that are neither .json nor .hcl.
var ErrUnsupportedFormat = errors.New("mapdata: unsupported pyramid format")

// PyramidDef is a pyramid definition as stored on disk.
type PyramidDef struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Rows        []string `json:"rows"`
}

// Build creates a fresh, unvisited pyramid from the definition.
func (d PyramidDef) Build() (*world.Pyramid, error) {
	p, err := world.NewPyramid(d.Name, d.Rows)
	if err != nil {
		return nil, fmt.Errorf("failed to build pyramid %q: %w", d.Name, err)
	}
	return p, nil
}

// hclPyramidFile represents the top-level structure of a pyramid .hcl file.
type hclPyramidFile struct {
	Pyramids []*hclPyramid `hcl:"pyramid,block"`
}

type hclPyramid struct {
	Name        string   `hcl:"name,label"`
	Description string   `hcl:"description,optional"`
	Rows        []string `hcl:"rows"`
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := data.FS().ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Decode parses a pyramid definition. The format is chosen by the extension
// of filename.
func Decode(filename string, src []byte) (PyramidDef, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		var def PyramidDef
		if err := json.Unmarshal(src, &def); err != nil {
			return PyramidDef{}, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
		}
		if def.Name == "" {
			def.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		}
		return def, nil
	case ".hcl":
		return decodeHCL(filename, src)
	default:
		return PyramidDef{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func decodeHCL(filename string, src []byte) (PyramidDef, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return PyramidDef{}, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var parsed hclPyramidFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return PyramidDef{}, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Pyramids) != 1 {
		return PyramidDef{}, fmt.Errorf("HCL file %s: expected one pyramid block, found %d", filename, len(parsed.Pyramids))
	}

	p := parsed.Pyramids[0]
	return PyramidDef{Name: p.Name, Description: p.Description, Rows: p.Rows}, nil
}

// LoadFile reads a pyramid from a .json or .hcl file on disk.
func LoadFile(ctx context.Context, path string) (*world.Pyramid, error) {
	_, span := telemetry.Tracer("mapdata").Start(ctx, "pyramid.load")
	defer span.End()
	span.SetAttributes(attribute.String("pyramid.source", path))

	ctxlog.FromContext(ctx).Debug("Loading pyramid from file.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pyramid file %s: %w", path, err)
	}
	def, err := Decode(path, src)
	if err != nil {
		return nil, err
	}
	return def.Build()
}

// LoadDef reads a pyramid definition from the embedded filesystem.
func LoadDef(filename string) (PyramidDef, error) {
	src, err := fs.ReadFile(data.FS(), filename)
	if err != nil {
		return PyramidDef{}, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return Decode(filename, src)
}
