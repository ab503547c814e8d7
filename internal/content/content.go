// internal/content/content.go
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	custom_errors "devfolio/internal/errors"
)

// AllCategories is the project filter value that selects every project.
const AllCategories = "All"

//go:embed site.yaml
var defaultSite []byte

// Site holds the static copy of the portfolio pages.
type Site struct {
	Owner             Owner           `yaml:"owner"`
	Navigation        []NavItem       `yaml:"navigation"`
	Highlights        []Highlight     `yaml:"highlights"`
	Timeline          []Milestone     `yaml:"timeline"`
	Skills            []SkillCategory `yaml:"skills"`
	ProjectCategories []string        `yaml:"project_categories"`
	Projects          []Project       `yaml:"projects"`
}

type Owner struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
}

type NavItem struct {
	Href  string `yaml:"href"`
	Label string `yaml:"label"`
}

type Highlight struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Milestone is one entry of the about-page timeline.
type Milestone struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"` // work|education
}

type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

// Skill level is a percentage in [0,100].
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Color string `yaml:"color"`
}

type Project struct {
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	GitHub       string   `yaml:"github"`
	Demo         string   `yaml:"demo"`
	Category     string   `yaml:"category"`
}

// Default returns the site content compiled into the binary.
func Default() (*Site, error) {
	return parse(defaultSite, "embedded site.yaml")
}

// Load reads site content from path, or the embedded default when path is empty.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	return parse(b, path)
}

func parse(b []byte, name string) (*Site, error) {
	var s Site
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("unmarshal content %s: %w", name, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks skill levels and project titles.
func (s *Site) Validate() error {
	for _, cat := range s.Skills {
		for _, sk := range cat.Skills {
			if sk.Level < 0 || sk.Level > 100 {
				return &custom_errors.ContentError{Section: "skills", Item: sk.Name, Reason: fmt.Sprintf("level %d outside 0-100", sk.Level)}
			}
		}
	}
	for i, p := range s.Projects {
		if p.Title == "" {
			return &custom_errors.ContentError{Section: "projects", Item: fmt.Sprintf("#%d", i+1), Reason: "title is required"}
		}
	}
	if len(s.ProjectCategories) == 0 {
		s.ProjectCategories = append([]string{AllCategories}, s.usedCategories()...)
	}
	return nil
}

// FilterProjects returns the projects in category. Empty or "All" returns every project.
func (s *Site) FilterProjects(category string) []Project {
	if category == "" || category == AllCategories {
		return s.Projects
	}
	out := make([]Project, 0, len(s.Projects))
	for _, p := range s.Projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SkillCategory returns the category titled title. An empty or unknown title selects the
// first category. The boolean is false only when there are no skill categories at all.
func (s *Site) SkillCategory(title string) (SkillCategory, bool) {
	if len(s.Skills) == 0 {
		return SkillCategory{}, false
	}
	for _, cat := range s.Skills {
		if cat.Title == title {
			return cat, true
		}
	}
	return s.Skills[0], true
}

// usedCategories lists project categories in order of first appearance.
func (s *Site) usedCategories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.Projects {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
