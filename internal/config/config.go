package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"switchcraft/internal/catalog"
	"switchcraft/internal/integration"

	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

var envKey = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var iconKeys = []integration.Key{
	integration.Kubernetes,
	integration.GCloud,
	integration.AWS,
	integration.Azure,
	integration.Venv,
	integration.Path,
}

type Config struct {
	Path    string
	Home    string
	Icons   map[integration.Key]string
	Catalog *catalog.Catalog
}

// Icon returns the configured glyph for key, "" when none is set.
func (c *Config) Icon(key integration.Key) string {
	return c.Icons[key]
}

// Options override values from the file. Empty fields are ignored.
type Options struct {
	ProjectsDir string
}

func Load(path string, opts Options) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s\nCreate a config file or set SWITCH_CRAFT_CONFIG environment variable.", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}

	cfg, err := Parse(data, home, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a JSON or YAML document. Icon keys other than the known
// integrations are ignored. home is captured so that later path
// resolution needs no environment lookups.
func Parse(data []byte, home string, opts Options) (*Config, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, invalid(doc, "configuration is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, invalid(root, "configuration must be an object")
	}

	projectsDir := opts.ProjectsDir
	if node := field(root, "projectsDir"); node != nil && projectsDir == "" {
		s, err := str(node, "projectsDir")
		if err != nil {
			return nil, err
		}
		projectsDir = s
	}
	if strings.TrimSpace(projectsDir) == "" {
		return nil, invalid(root, "projectsDir is required")
	}
	projectsDir, err = filepath.Abs(expandHome(projectsDir, home))
	if err != nil {
		return nil, fmt.Errorf("%w: projectsDir: %v", ErrInvalidConfig, err)
	}

	projects, err := parseProjects(root)
	if err != nil {
		return nil, err
	}

	icons, err := parseIcons(root)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.New(projectsDir, home, projects)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &Config{Home: home, Icons: icons, Catalog: cat}, nil
}

func parseProjects(root *yaml.Node) ([]catalog.Project, error) {
	node := field(root, "projects")
	if node == nil {
		return nil, invalid(root, "projects is required")
	}
	if node.Kind != yaml.SequenceNode {
		return nil, invalid(node, "projects must be an array")
	}

	projects := make([]catalog.Project, 0, len(node.Content))
	for i, item := range node.Content {
		p, err := parseProject(item, fmt.Sprintf("projects[%d]", i))
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func parseProject(node *yaml.Node, where string) (catalog.Project, error) {
	if node.Kind != yaml.MappingNode {
		return catalog.Project{}, invalid(node, where+" must be an object")
	}

	name, err := required(node, where, "name")
	if err != nil {
		return catalog.Project{}, err
	}
	path, err := required(node, where, "path")
	if err != nil {
		return catalog.Project{}, err
	}
	p := catalog.NewProject(name, path)

	optional := []struct {
		field string
		key   integration.Key
	}{
		{"kubectx", integration.Kubernetes},
		{"gcloud", integration.GCloud},
		{"aws", integration.AWS},
		{"azure", integration.Azure},
		{"venv", integration.Venv},
	}
	for _, o := range optional {
		v := field(node, o.field)
		if v == nil {
			continue
		}
		s, err := str(v, where+"."+o.field)
		if err != nil {
			return catalog.Project{}, err
		}
		p = p.With(o.key, s)
	}

	if env := field(node, "env"); env != nil {
		vars, err := parseEnv(env, where+".env")
		if err != nil {
			return catalog.Project{}, err
		}
		p = p.WithEnv(vars...)
	}
	return p, nil
}

func parseEnv(node *yaml.Node, where string) ([]catalog.EnvVar, error) {
	if node.Kind != yaml.MappingNode {
		return nil, invalid(node, where+" must be an object")
	}

	vars := make([]catalog.EnvVar, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		key, err := str(k, where+" key")
		if err != nil {
			return nil, err
		}
		if !envKey.MatchString(key) {
			return nil, invalid(k, fmt.Sprintf("%s: %q is not a valid variable name", where, key))
		}
		if slices.ContainsFunc(vars, func(e catalog.EnvVar) bool { return e.Key == key }) {
			return nil, invalid(k, fmt.Sprintf("%s: duplicate variable %q", where, key))
		}
		value, err := str(v, where+"."+key)
		if err != nil {
			return nil, err
		}
		vars = append(vars, catalog.EnvVar{Key: key, Value: value})
	}
	return vars, nil
}

func parseIcons(root *yaml.Node) (map[integration.Key]string, error) {
	icons := map[integration.Key]string{}
	node := field(root, "icons")
	if node == nil {
		return icons, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, invalid(node, "icons must be an object")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		key := integration.Key(k.Value)
		if !slices.Contains(iconKeys, key) {
			continue
		}
		glyph, err := str(v, "icons."+k.Value)
		if err != nil {
			return nil, err
		}
		icons[key] = glyph
	}
	return icons, nil
}

func field(node *yaml.Node, name string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == name {
			return node.Content[i+1]
		}
	}
	return nil
}

func required(node *yaml.Node, where, name string) (string, error) {
	v := field(node, name)
	if v == nil {
		return "", invalid(node, fmt.Sprintf("%s.%s is required", where, name))
	}
	s, err := str(v, where+"."+name)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", invalid(v, fmt.Sprintf("%s.%s cannot be empty", where, name))
	}
	return strings.TrimSpace(s), nil
}

// str accepts only string scalars; numbers and booleans are rejected.
func str(node *yaml.Node, where string) (string, error) {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return "", invalid(node, where+" must be a string")
	}
	return node.Value, nil
}

func invalid(node *yaml.Node, msg string) error {
	if node.Line > 0 {
		return fmt.Errorf("%w: line %d: %s", ErrInvalidConfig, node.Line, msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}
