// Package content loads the portfolio's text from TOML.
//
// A default portfolio is embedded in the binary; [Load] reads a replacement
// from disk. Everything the interface shows (greeting, resume, skills,
// projects, learning items and links) comes from a [Content] value.
package content

import (
	_ "embed"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	ferrors "github.com/matzehuels/folio/pkg/errors"
)

//go:embed default.toml
var defaultTOML []byte

// FilterAll matches every project.
const FilterAll = "all"

// Content is a complete portfolio.
type Content struct {
	Owner    Owner          `toml:"owner"`
	Hero     Hero           `toml:"hero"`
	About    About          `toml:"about"`
	Resume   []ResumeEntry  `toml:"resume"`
	Skills   []SkillGroup   `toml:"skills"`
	Projects []Project      `toml:"projects"`
	Learning []LearningItem `toml:"learning"`
	Links    Links          `toml:"links"`
}

// Owner identifies the person the portfolio belongs to.
type Owner struct {
	Name  string `toml:"name"`
	Role  string `toml:"role"`
	Email string `toml:"email"`
}

// Hero is the landing section. Greeting is the text the scramble animates to.
type Hero struct {
	Greeting string `toml:"greeting"`
	Tagline  string `toml:"tagline"`
}

type About struct {
	Paragraphs []string `toml:"paragraphs"`
}

type ResumeEntry struct {
	Title   string `toml:"title"`
	Org     string `toml:"org"`
	Period  string `toml:"period"`
	Summary string `toml:"summary"`
}

type SkillGroup struct {
	Name  string   `toml:"name"`
	Items []string `toml:"items"`
}

// Project is a gallery card. Detail is only shown in the project modal.
type Project struct {
	Title      string   `toml:"title"`
	Summary    string   `toml:"summary"`
	Detail     string   `toml:"detail"`
	Categories []string `toml:"categories"`
	Tech       []string `toml:"tech"`
	URL        string   `toml:"url"`
}

// HasCategory reports whether p is tagged with category.
func (p Project) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// LearningItem is one entry of the "currently learning" widget.
type LearningItem struct {
	Text string `toml:"text"`
	Desc string `toml:"desc"`
}

type Links struct {
	GitHub   string `toml:"github"`
	LinkedIn string `toml:"linkedin"`
	Source   string `toml:"source"`
}

// Default returns the embedded portfolio.
func Default() *Content {
	c, err := Parse(defaultTOML)
	if err != nil {
		panic("content: embedded default.toml is invalid: " + err.Error())
	}
	return c
}

// Load reads and validates a portfolio file. An empty path returns Default.
func Load(path string) (*Content, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ferrors.Wrap(ferrors.ErrCodeFileNotFound, err, "content file %s", path)
	}
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidContent, err, "read %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates TOML content. Unknown keys are rejected so
// typos do not silently drop sections.
func Parse(data []byte) (*Content, error) {
	var c Content
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInvalidContent, err, "decode content")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, ferrors.New(ferrors.ErrCodeInvalidContent, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Categories returns every project category in order of first appearance.
func (c *Content) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.Projects {
		for _, cat := range p.Categories {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	return out
}

// Filters returns FilterAll followed by Categories.
func (c *Content) Filters() []string {
	return append([]string{FilterAll}, c.Categories()...)
}

// FilterProjects returns the projects shown under filter.
func (c *Content) FilterProjects(filter string) []Project {
	if filter == FilterAll {
		return c.Projects
	}
	var out []Project
	for _, p := range c.Projects {
		if p.HasCategory(filter) {
			out = append(out, p)
		}
	}
	return out
}
