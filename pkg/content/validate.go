package content

import (
	"net/url"
	"strings"

	ferrors "github.com/matzehuels/folio/pkg/errors"
)

// Validate checks that c can be displayed.
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Owner.Name) == "" {
		return invalid("owner.name is required")
	}
	if err := ferrors.ValidateText(c.Hero.Greeting); err != nil {
		return ferrors.Wrap(ferrors.ErrCodeInvalidContent, err, "hero.greeting")
	}
	if c.Hero.Greeting == "" {
		return invalid("hero.greeting is required")
	}

	for i, e := range c.Resume {
		if e.Title == "" {
			return invalid("resume[%d].title is required", i)
		}
	}
	for i, g := range c.Skills {
		if g.Name == "" {
			return invalid("skills[%d].name is required", i)
		}
	}
	for i, p := range c.Projects {
		if p.Title == "" {
			return invalid("projects[%d].title is required", i)
		}
		if len(p.Categories) == 0 {
			return invalid("project %q needs at least one category", p.Title)
		}
		for _, cat := range p.Categories {
			if cat == "" || cat == FilterAll || strings.ContainsAny(cat, " \t") {
				return invalid("project %q has invalid category %q", p.Title, cat)
			}
		}
		if err := checkURL(p.URL); err != nil {
			return ferrors.Wrap(ferrors.ErrCodeInvalidContent, err, "project %q url", p.Title)
		}
	}
	for i, item := range c.Learning {
		if item.Text == "" || item.Desc == "" {
			return invalid("learning[%d] needs text and desc", i)
		}
	}

	for name, link := range map[string]string{
		"links.github":   c.Links.GitHub,
		"links.linkedin": c.Links.LinkedIn,
		"links.source":   c.Links.Source,
	} {
		if err := checkURL(link); err != nil {
			return ferrors.Wrap(ferrors.ErrCodeInvalidContent, err, "%s", name)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return ferrors.New(ferrors.ErrCodeInvalidContent, format, args...)
}

// checkURL accepts empty strings and absolute http(s) URLs.
func checkURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return ferrors.New(ferrors.ErrCodeInvalidContent, "%q is not an http(s) URL", raw)
	}
	return nil
}
