// Package github resolves issue metadata from the GitHub REST API.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/pkg/clients"
)

var ErrNotGitHubIssue = errors.New("not a github issue url")

type issueResponse struct {
	Title string `json:"title"`
	State string `json:"state"`
}

type Resolver struct {
	client clients.HTTPClientI
	apiURL string
	token  string
}

func New(client clients.HTTPClientI, apiURL, token string) *Resolver {
	return &Resolver{
		client: client,
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
	}
}

// FetchTitle looks up the title and state of the issue or pull request at issueURL.
func (r *Resolver) FetchTitle(ctx context.Context, issueURL string) (domain.IssueInfo, error) {
	path, err := apiPath(issueURL)
	if err != nil {
		return domain.IssueInfo{}, err
	}

	headers := http.Header{}
	headers.Set("Accept", "application/vnd.github+json")
	if r.token != "" {
		headers.Set("Authorization", "Bearer "+r.token)
	}

	httpResp, err := r.client.Get(ctx, r.apiURL+path, headers)
	if err != nil {
		return domain.IssueInfo{}, fmt.Errorf("github request: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return domain.IssueInfo{}, fmt.Errorf("github responded with status %d", httpResp.StatusCode)
	}

	var resp issueResponse
	if err := json.Unmarshal(httpResp.Body, &resp); err != nil {
		return domain.IssueInfo{}, fmt.Errorf("decode github issue: %w", err)
	}
	return domain.IssueInfo{Title: resp.Title, State: resp.State}, nil
}

// apiPath maps https://github.com/{owner}/{repo}/(issues|pull)/{n} to /repos/{owner}/{repo}/issues/{n}.
func apiPath(issueURL string) (string, error) {
	u, err := url.Parse(issueURL)
	if err != nil {
		return "", ErrNotGitHubIssue
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", ErrNotGitHubIssue
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 4 || (parts[2] != "issues" && parts[2] != "pull") || parts[3] == "" {
		return "", ErrNotGitHubIssue
	}
	return fmt.Sprintf("/repos/%s/%s/issues/%s", parts[0], parts[1], parts[3]), nil
}
