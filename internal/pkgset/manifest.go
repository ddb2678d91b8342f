package pkgset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifest []byte

// ErrInvalidManifest is returned when a manifest is structurally wrong.
var ErrInvalidManifest = errors.New("invalid manifest")

// Package is a third-party dependency declared by a target.
type Package struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Source  string `yaml:"source,omitempty" json:"source,omitempty"`
}

// ID identifies a package across targets.
func (p Package) ID() string {
	return p.Name + "-" + p.Version
}

// Target is one build unit with its own packages and child targets.
type Target struct {
	Name     string    `yaml:"name"`
	Packages []Package `yaml:"packages"`
	Children []Target  `yaml:"children"`
}

// DefaultManifest returns the manifest describing the foo, bar and baz targets.
func DefaultManifest() (Target, error) {
	return LoadManifest(bytes.NewReader(defaultManifest))
}

// LoadManifestFile reads a manifest from path.
func LoadManifestFile(path string) (Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return Target{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	t, err := LoadManifest(f)
	if err != nil {
		return Target{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadManifest decodes and validates a YAML manifest.
func LoadManifest(r io.Reader) (Target, error) {
	var root Target
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Target{}, fmt.Errorf("%w: empty document", ErrInvalidManifest)
		}
		return Target{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := validateTarget(root, root.Name); err != nil {
		return Target{}, err
	}
	return root, nil
}

func validateTarget(t Target, path string) error {
	if t.Name == "" {
		return fmt.Errorf("%w: target under %q has no name", ErrInvalidManifest, path)
	}
	for i, p := range t.Packages {
		if p.Name == "" || p.Version == "" {
			return fmt.Errorf("%w: target %q package %d needs name and version", ErrInvalidManifest, path, i)
		}
	}
	for _, child := range t.Children {
		if err := validateTarget(child, path+"/"+child.Name); err != nil {
			return err
		}
	}
	return nil
}
