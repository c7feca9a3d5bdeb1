package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a single recipe from disk.
func Load(path string) (*Recipe, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("recipe path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe %s: %w", path, err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse recipe %s: %w", path, err)
	}
	r.Source = path
	return r, nil
}

// LoadDir loads every .yaml and .yml recipe in dir, sorted by name.
// A missing directory yields no recipes.
func LoadDir(dir string) ([]*Recipe, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Recipe{}, nil
		}
		return nil, fmt.Errorf("read recipes dir %s: %w", dir, err)
	}

	recipes := make([]*Recipe, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		r, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Name < recipes[j].Name
	})

	return recipes, nil
}

// LoadPaths loads recipes from a mix of files and directories, keeping the
// argument order. Recipe names must be unique across all paths.
func LoadPaths(paths []string) ([]*Recipe, error) {
	var out []*Recipe
	seen := make(map[string]string)

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		var batch []*Recipe
		if info.IsDir() {
			batch, err = LoadDir(p)
		} else {
			var r *Recipe
			r, err = Load(p)
			batch = []*Recipe{r}
		}
		if err != nil {
			return nil, err
		}

		for _, r := range batch {
			if prev, ok := seen[r.Name]; ok {
				return nil, fmt.Errorf("duplicate recipe name %q in %s and %s", r.Name, prev, r.Source)
			}
			seen[r.Name] = r.Source
			out = append(out, r)
		}
	}

	return out, nil
}

// Parse decodes one recipe, rejecting unknown fields.
func Parse(data []byte) (*Recipe, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("recipe is empty")
		}
		return nil, err
	}

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, fmt.Errorf("recipe name is required")
	}
	r.Scheme = strings.TrimSpace(r.Scheme)
	if r.Scheme == "" {
		return nil, fmt.Errorf("recipe %q: scheme is required", r.Name)
	}

	return &r, nil
}
