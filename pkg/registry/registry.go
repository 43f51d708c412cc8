// Package registry loads stack-profile documents into an in-memory registry
// keyed by stack identifier. The registry is built once per validation
// session and is read-only afterwards, so it is safe to share across
// concurrent document validations without locking.
package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cartforge/cartlint/pkg/logger"
)

var registryLog = logger.New("registry:load")

// StackProfile is a named bundle of technology choices plus the list of
// technologies a cartridge on this stack must not reference.
type StackProfile struct {
	ID           string            `yaml:"id" json:"id"`
	Framework    string            `yaml:"framework" json:"framework,omitempty"`
	Language     string            `yaml:"language" json:"language,omitempty"`
	UI           []string          `yaml:"ui" json:"ui,omitempty"`
	APIPattern   string            `yaml:"api_pattern" json:"api_pattern,omitempty"`
	ORM          string            `yaml:"orm" json:"orm,omitempty"`
	Database     string            `yaml:"database" json:"database,omitempty"`
	Auth         string            `yaml:"auth" json:"auth,omitempty"`
	Testing      []string          `yaml:"testing" json:"testing,omitempty"`
	Tooling      string            `yaml:"tooling" json:"tooling,omitempty"`
	RepoMode     string            `yaml:"repo_mode" json:"repo_mode,omitempty"`
	DeployTarget string            `yaml:"deploy_target" json:"deploy_target,omitempty"`
	Forbidden    []string          `yaml:"forbidden" json:"forbidden,omitempty"`
	EnvVars      map[string]string `yaml:"env_vars" json:"env_vars,omitempty"`

	// SourceFile is the profile file this stack was loaded from.
	SourceFile string `yaml:"-" json:"-"`
}

// RequiredTechnology is a technology descriptor a cartridge body is expected
// to mention.
type RequiredTechnology struct {
	Role string // framework, language, orm, api pattern
	Name string // as declared, possibly carrying a version suffix
}

// RequiredTechnologies returns the profile's non-empty core descriptors in a
// stable order.
func (p *StackProfile) RequiredTechnologies() []RequiredTechnology {
	var techs []RequiredTechnology
	add := func(role, name string) {
		if strings.TrimSpace(name) != "" {
			techs = append(techs, RequiredTechnology{Role: role, Name: name})
		}
	}
	add("framework", p.Framework)
	add("language", p.Language)
	add("orm", p.ORM)
	add("api pattern", p.APIPattern)
	return techs
}

// Registry maps stack identifiers to their profiles. Keys are unique; on a
// duplicate declaration the first-loaded profile wins and the duplicate is
// recorded as a load problem.
type Registry struct {
	profiles map[string]*StackProfile
	problems []string
}

// Load reads every stack-profile file in dir into a new Registry.
//
// A missing or unreadable directory is fatal: no stack can be resolved for
// the whole session. An individual file that fails to read or parse is
// recorded as a load problem and does not abort the rest of the load.
func Load(dir string) (*Registry, error) {
	registryLog.Printf("Loading stack registry from %s", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read stack registry directory %s: %w", dir, err)
	}

	reg := &Registry{profiles: make(map[string]*StackProfile)}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		reg.loadProfile(path)
	}

	registryLog.Printf("Registry loaded: stacks=%d, problems=%d", len(reg.profiles), len(reg.problems))
	return reg, nil
}

func (r *Registry) loadProfile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.problems = append(r.problems, fmt.Sprintf("cannot read stack profile %s: %v", path, err))
		return
	}

	var profile StackProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		r.problems = append(r.problems, fmt.Sprintf("invalid stack profile %s: %v", path, err))
		return
	}

	if strings.TrimSpace(profile.ID) == "" {
		r.problems = append(r.problems, fmt.Sprintf("stack profile %s declares no id", path))
		return
	}

	if existing, ok := r.profiles[profile.ID]; ok {
		r.problems = append(r.problems, fmt.Sprintf(
			"duplicate stack id '%s' in %s (already declared in %s)", profile.ID, path, existing.SourceFile))
		return
	}

	profile.SourceFile = path
	r.profiles[profile.ID] = &profile
	registryLog.Printf("Loaded stack profile: id=%s, forbidden=%d", profile.ID, len(profile.Forbidden))
}

// Resolve looks up a stack profile by identifier.
func (r *Registry) Resolve(id string) (*StackProfile, bool) {
	profile, ok := r.profiles[id]
	return profile, ok
}

// IDs returns the registered stack identifiers in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered stacks.
func (r *Registry) Len() int {
	return len(r.profiles)
}

// Problems returns the per-file load problems recorded during Load, in
// discovery order.
func (r *Registry) Problems() []string {
	return r.problems
}
