package core

import (
	"fmt"
	"net/url"
	"strings"

	packageurl "github.com/package-url/packageurl-go"
)

// GitHubRepo splits a github.com repository URL into owner and name.
// ok is false for URLs on other hosts or without both path segments.
func GitHubRepo(repoURL string) (owner, name string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(repoURL))
	if err != nil {
		return "", "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", false
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}

// RepoPURL returns the package URL for a GitHub repository URL, e.g.
// "pkg:github/mock/search-filter". It returns "" for other hosts.
func RepoPURL(repoURL string) string {
	owner, name, ok := GitHubRepo(repoURL)
	if !ok {
		return ""
	}
	p := packageurl.NewPackageURL(packageurl.TypeGithub, strings.ToLower(owner), strings.ToLower(name), "", nil, "")
	return p.ToString()
}

// PURL returns the package URL of the entity's repository.
func (e PluginEntity) PURL() string {
	return RepoPURL(e.URL)
}

// GitHubURLs builds related URLs for GitHub-hosted repositories.
var GitHubURLs URLBuilder = &BaseURLs{
	RepositoryFn: func(repoURL string) string {
		owner, name, ok := GitHubRepo(repoURL)
		if !ok {
			return repoURL
		}
		return "https://github.com/" + owner + "/" + name
	},
	IssuesFn: func(repoURL string) string {
		owner, name, ok := GitHubRepo(repoURL)
		if !ok {
			return ""
		}
		return "https://github.com/" + owner + "/" + name + "/issues"
	},
	PURLFn: RepoPURL,
}

// URLs returns all known URLs for the entity, keyed as in BuildURLs.
func (e PluginEntity) URLs() map[string]string {
	return BuildURLs(GitHubURLs, e.URL)
}

// FindByPURL returns the entities whose repository matches a pkg:github
// package URL. Matching ignores case and any version or qualifiers.
func (c PluginCollection) FindByPURL(purl string) ([]PluginEntity, error) {
	p, err := packageurl.FromString(purl)
	if err != nil {
		return nil, err
	}
	if p.Type != packageurl.TypeGithub {
		return nil, fmt.Errorf("unsupported purl type %q", p.Type)
	}

	var out []PluginEntity
	for _, e := range c.Entities() {
		owner, name, ok := GitHubRepo(e.URL)
		if ok && strings.EqualFold(owner, p.Namespace) && strings.EqualFold(name, p.Name) {
			out = append(out, e)
		}
	}
	return out, nil
}
