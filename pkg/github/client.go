// Package github membungkus go-github untuk kebutuhan fork repo mahasiswa
// ke organisasi kampus.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	"github.com/pkg/errors"

	"capstone-backend/app/interfaces"
)

var (
	ErrNotConfigured = errors.New("github token / organisasi belum dikonfigurasi")
	ErrRepoNotFound  = errors.New("repository tidak ditemukan atau tidak bisa diakses")
	ErrInvalidURL    = errors.New("url repository github tidak valid")
)

type Client struct {
	gh      *gh.Client
	org     string
	timeout time.Duration
}

// NewClient token kosong tetap menghasilkan client (tanpa auth) supaya
// validasi repo publik masih bisa jalan; fork akan ditolak.
func NewClient(token, org string, timeout time.Duration) *Client {
	c := gh.NewClient(nil)
	if token != "" {
		c = c.WithAuthToken(token)
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{gh: c, org: org, timeout: timeout}
}

// NewClientWithBaseURL dipakai untuk GitHub Enterprise atau server test.
func NewClientWithBaseURL(baseURL, token, org string, timeout time.Duration) (*Client, error) {
	c := NewClient(token, org, timeout)
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
	if err != nil {
		return nil, err
	}
	c.gh.BaseURL = u
	return c, nil
}

func (c *Client) Org() string { return c.org }

func (c *Client) ForkToOrg(ctx context.Context, req interfaces.ForkRequest) (*interfaces.ForkResult, error) {
	org := req.Org
	if org == "" {
		org = c.org
	}
	if org == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	repo, resp, err := c.gh.Repositories.CreateFork(ctx, req.Owner, req.Repo, &gh.RepositoryCreateForkOptions{
		Organization: org,
		Name:         req.Name,
	})
	if err != nil {
		// 202: fork dijadwalkan GitHub, datanya sudah ada di body
		var accepted *gh.AcceptedError
		if !errors.As(err, &accepted) {
			if resp != nil && resp.StatusCode == http.StatusNotFound {
				return nil, ErrRepoNotFound
			}
			return nil, fmt.Errorf("fork %s/%s ke %s: %w", req.Owner, req.Repo, org, err)
		}
	}
	if repo == nil {
		return nil, fmt.Errorf("fork %s/%s ke %s: response kosong", req.Owner, req.Repo, org)
	}

	return &interfaces.ForkResult{
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
		HTMLURL:  repo.GetHTMLURL(),
	}, nil
}

func (c *Client) AddCollaborator(ctx context.Context, owner, repo, username string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	_, _, err := c.gh.Repositories.AddCollaborator(ctx, owner, repo, username, &gh.RepositoryAddCollaboratorOptions{
		Permission: "push",
	})
	if err != nil {
		return fmt.Errorf("tambah collaborator %s ke %s/%s: %w", username, owner, repo, err)
	}
	return nil
}

func (c *Client) GetRepo(ctx context.Context, owner, repo string) (*interfaces.RepoInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrRepoNotFound
		}
		return nil, err
	}

	return &interfaces.RepoInfo{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		HTMLURL:       r.GetHTMLURL(),
		Private:       r.GetPrivate(),
		Fork:          r.GetFork(),
		DefaultBranch: r.GetDefaultBranch(),
	}, nil
}

// ParseRepoURL mengambil owner dan nama repo dari URL github.com.
// Menerima bentuk https://github.com/owner/repo, akhiran .git, dan path tambahan
// seperti /tree/main.
func ParseRepoURL(raw string) (owner, repo string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", ErrInvalidURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", ErrInvalidURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidURL
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), nil
}
