package client

// URLBuilder derives related URLs from a plugin's repository URL.
type URLBuilder interface {
	Repository(repoURL string) string
	Issues(repoURL string) string
	PURL(repoURL string) string
}

// BaseURLs provides a default URLBuilder implementation.
type BaseURLs struct {
	RepositoryFn func(repoURL string) string
	IssuesFn     func(repoURL string) string
	PURLFn       func(repoURL string) string
}

func (b *BaseURLs) Repository(repoURL string) string {
	if b.RepositoryFn != nil {
		return b.RepositoryFn(repoURL)
	}
	return repoURL
}

func (b *BaseURLs) Issues(repoURL string) string {
	if b.IssuesFn != nil {
		return b.IssuesFn(repoURL)
	}
	return ""
}

func (b *BaseURLs) PURL(repoURL string) string {
	if b.PURLFn != nil {
		return b.PURLFn(repoURL)
	}
	return ""
}

// BuildURLs returns a map of all non-empty URLs for a repository.
// Keys are "repository", "issues", and "purl".
func BuildURLs(urls URLBuilder, repoURL string) map[string]string {
	result := make(map[string]string)
	if v := urls.Repository(repoURL); v != "" {
		result["repository"] = v
	}
	if v := urls.Issues(repoURL); v != "" {
		result["issues"] = v
	}
	if v := urls.PURL(repoURL); v != "" {
		result["purl"] = v
	}
	return result
}
