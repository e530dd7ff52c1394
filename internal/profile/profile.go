// Package profile holds the portfolio owner's record and renders it into the
// system prompt sent with every completion request.
package profile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Profile struct {
	Name           string          `yaml:"name"`
	Title          string          `yaml:"title"`
	Location       string          `yaml:"location"`
	Email          string          `yaml:"email"`
	GitHub         string          `yaml:"github"`
	Portfolio      string          `yaml:"portfolio"`
	LinkedIn       string          `yaml:"linkedin"`
	Experience     []Experience    `yaml:"experience"`
	Skills         []SkillCategory `yaml:"skills"`
	Projects       []Project       `yaml:"projects"`
	Education      Education       `yaml:"education"`
	Certifications []string        `yaml:"certifications"`
}

type Experience struct {
	Role    string   `yaml:"role"`
	Company string   `yaml:"company"`
	Period  string   `yaml:"period"`
	Details []string `yaml:"details"`
}

// SkillCategory keeps skills as an ordered list so the prompt is stable.
type SkillCategory struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

type Project struct {
	Key         string   `yaml:"key"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Highlights  []string `yaml:"highlights,omitempty"`
	Repo        string   `yaml:"repo"`
	Deployed    string   `yaml:"deployed"`
}

type Education struct {
	Degree    string `yaml:"degree"`
	Institute string `yaml:"institute"`
	Period    string `yaml:"period"`
	CGPA      string `yaml:"cgpa"`
}

// FirstName is the first word of Name.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return p.Name
	}
	return fields[0]
}

// Lookup returns the project with the given key, ignoring case.
func (p Profile) Lookup(key string) (Project, bool) {
	for _, proj := range p.Projects {
		if strings.EqualFold(proj.Key, key) {
			return proj, true
		}
	}
	return Project{}, false
}

// Load reads a YAML profile from path. Fields missing from the file keep the
// values of Default.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}
