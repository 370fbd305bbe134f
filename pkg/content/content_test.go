package content

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	ferrors "github.com/matzehuels/folio/pkg/errors"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Hero.Greeting != "Hello, I'm Cynthia Motaung" {
		t.Errorf("Greeting = %q", c.Hero.Greeting)
	}
	if len(c.Learning) != 4 {
		t.Fatalf("len(Learning) = %d, want 4", len(c.Learning))
	}
	if c.Learning[1].Text != "Microservices w/ DAPR" {
		t.Errorf("Learning[1].Text = %q", c.Learning[1].Text)
	}
	if c.Links.LinkedIn != "https://www.linkedin.com/in/cynthia-motaung/" {
		t.Errorf("LinkedIn = %q", c.Links.LinkedIn)
	}
}

func TestCategoriesAndFilters(t *testing.T) {
	c := Default()

	if got, want := c.Categories(), []string{"web", "api", "cloud"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
	if got := c.Filters(); got[0] != FilterAll || len(got) != 4 {
		t.Errorf("Filters() = %v", got)
	}
}

func TestFilterProjects(t *testing.T) {
	c := Default()

	tests := []struct {
		filter string
		want   []string
	}{
		{FilterAll, []string{"Portfolio", "Inventory API", "Task Board"}},
		{"web", []string{"Portfolio", "Task Board"}},
		{"api", []string{"Inventory API", "Task Board"}},
		{"cloud", []string{"Inventory API"}},
		{"mobile", nil},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			var got []string
			for _, p := range c.FilterProjects(tt.filter) {
				got = append(got, p.Title)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterProjects(%q) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

const minimal = `
[owner]
name = "Test"

[hero]
greeting = "Hi"
`

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		extra   string
		wantErr string
	}{
		{"minimal", "", ""},
		{"unknown key", "\n[owner.extra]\nfoo = 1\n", "unknown keys"},
		{"project without category", "\n[[projects]]\ntitle = \"X\"\n", "at least one category"},
		{"reserved category", "\n[[projects]]\ntitle = \"X\"\ncategories = [\"all\"]\n", "invalid category"},
		{"bad link", "\n[links]\ngithub = \"ftp://example.com\"\n", "links.github"},
		{"learning without desc", "\n[[learning]]\ntext = \"Go\"\n", "learning[0]"},
		{"syntax", "\n[owner\n", "decode content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(minimal + tt.extra))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Parse() error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Parse() succeeded, want error containing %q", tt.wantErr)
			}
			if !ferrors.Is(err, ferrors.ErrCodeInvalidContent) {
				t.Errorf("code = %s, want INVALID_CONTENT", ferrors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseRequiresGreeting(t *testing.T) {
	_, err := Parse([]byte("[owner]\nname = \"Test\"\n"))
	if !ferrors.Is(err, ferrors.ErrCodeInvalidContent) {
		t.Errorf("Parse() without greeting error = %v, want INVALID_CONTENT", err)
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil || c.Owner.Name != "Cynthia Motaung" {
		t.Fatalf("Load(\"\") = (%v, %v), want the default", c, err)
	}

	path := filepath.Join(t.TempDir(), "folio.toml")
	if err := os.WriteFile(path, []byte(minimal), 0600); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if c.Hero.Greeting != "Hi" {
		t.Errorf("Greeting = %q", c.Hero.Greeting)
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !ferrors.Is(err, ferrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
