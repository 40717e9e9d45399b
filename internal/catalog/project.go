package catalog

import (
	"errors"
	"strings"

	"switchcraft/internal/integration"
)

var ErrEmptyName = errors.New("project name cannot be empty")

type EnvVar struct {
	Key   string
	Value string
}

// Project is immutable once loaded; the With* helpers return modified copies.
type Project struct {
	Name    string
	Path    string
	Env     []EnvVar
	Kubectx string
	GCloud  string
	AWS     string
	Azure   string
	Venv    string
}

func NewProject(name, path string) Project {
	return Project{Name: name, Path: path}
}

func (p Project) WithEnv(vars ...EnvVar) Project {
	newP := p
	newP.Env = append(append([]EnvVar(nil), p.Env...), vars...)
	return newP
}

// With sets the value of an integration. Path sets the project path.
func (p Project) With(key integration.Key, value string) Project {
	newP := p
	switch key {
	case integration.Kubernetes:
		newP.Kubectx = value
	case integration.GCloud:
		newP.GCloud = value
	case integration.AWS:
		newP.AWS = value
	case integration.Azure:
		newP.Azure = value
	case integration.Venv:
		newP.Venv = value
	case integration.Path:
		newP.Path = value
	}
	return newP
}

// Value returns the configured identifier for an integration, "" when absent.
func (p Project) Value(key integration.Key) string {
	switch key {
	case integration.Kubernetes:
		return p.Kubectx
	case integration.GCloud:
		return p.GCloud
	case integration.AWS:
		return p.AWS
	case integration.Azure:
		return p.Azure
	case integration.Venv:
		return p.Venv
	case integration.Path:
		return p.Path
	}
	return ""
}

func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
