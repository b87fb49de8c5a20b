// Package client is a typed HTTP client for the inkwell API.
//
// Sessions are carried two ways at once: the cookie jar keeps the session
// cookie the way a browser would, and the bearer token returned by register
// and login is replayed in the Authorization header. Either alone is enough
// for the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// Identity describes the authenticated caller.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
}

// Record is a chat message or a blog post as returned by the server.
type Record struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"ownerId"`
	AuthorName string    `json:"authorName"`
	Title      string    `json:"title,omitempty"`
	Content    string    `json:"content"`
	Published  bool      `json:"published,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Revision is one saved version on the shared content page.
type Revision struct {
	Content string    `json:"content"`
	Author  string    `json:"author"`
	SavedAt time.Time `json:"savedAt"`
}

// ContentPage is the shared page with its bounded edit history.
type ContentPage struct {
	Current string     `json:"currentContent"`
	History []Revision `json:"history"`
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New returns a Client talking to the server at baseURL,
// e.g. "http://127.0.0.1:8080".
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: 10 * time.Second},
	}, nil
}

// errorBody mirrors the server's error envelope.
type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return apiError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func apiError(resp *http.Response) error {
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err != nil || eb.Error == "" {
		eb.Error = resp.Status
	}

	var sentinel error
	switch resp.StatusCode {
	case http.StatusBadRequest:
		sentinel = ErrInvalidInput
	case http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case http.StatusForbidden:
		sentinel = ErrForbidden
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusConflict:
		sentinel = ErrConflict
	default:
		sentinel = ErrServer
	}
	return fmt.Errorf("%w: %s", sentinel, eb.Error)
}

// Register creates an account and starts a session.
func (c *Client) Register(ctx context.Context, username, password, role string) (Identity, error) {
	var ident Identity
	err := c.do(ctx, http.MethodPost, "/api/register",
		map[string]string{"username": username, "password": password, "role": role}, &ident)
	if err != nil {
		return Identity{}, err
	}
	c.token = ident.Token
	return ident, nil
}

// Login authenticates and starts a session.
func (c *Client) Login(ctx context.Context, username, password string) (Identity, error) {
	var ident Identity
	err := c.do(ctx, http.MethodPost, "/api/login",
		map[string]string{"username": username, "password": password}, &ident)
	if err != nil {
		return Identity{}, err
	}
	c.token = ident.Token
	return ident, nil
}

// Logout revokes the current session. Safe to call when not logged in.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

// Me returns the identity bound to the current session.
func (c *Client) Me(ctx context.Context) (Identity, error) {
	var ident Identity
	err := c.do(ctx, http.MethodGet, "/api/me", nil, &ident)
	return ident, err
}

// Messages lists chat messages, newest first.
func (c *Client) Messages(ctx context.Context) ([]Record, error) {
	var msgs []Record
	err := c.do(ctx, http.MethodGet, "/api/messages", nil, &msgs)
	return msgs, err
}

// PostMessage creates a chat message.
func (c *Client) PostMessage(ctx context.Context, content string) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPost, "/api/messages",
		map[string]string{"content": content}, &rec)
	return rec, err
}

// EditMessage replaces the content of an own message.
func (c *Client) EditMessage(ctx context.Context, id, content string) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPut, "/api/messages/"+id,
		map[string]string{"content": content}, &rec)
	return rec, err
}

// Posts lists blog posts, newest first. Drafts of other authors arrive
// with placeholder content.
func (c *Client) Posts(ctx context.Context) ([]Record, error) {
	var posts []Record
	err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts)
	return posts, err
}

// CreatePost creates a blog post. Requires the editor role.
func (c *Client) CreatePost(ctx context.Context, title, content string, published bool) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPost, "/api/posts",
		map[string]any{"title": title, "content": content, "published": published}, &rec)
	return rec, err
}

// UpdatePost replaces an own post, including its published flag.
func (c *Client) UpdatePost(ctx context.Context, id, title, content string, published bool) (Record, error) {
	var rec Record
	err := c.do(ctx, http.MethodPut, "/api/posts/"+id,
		map[string]any{"title": title, "content": content, "published": published}, &rec)
	return rec, err
}

// DeletePost removes an own post.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/posts/"+id, nil, nil)
}

// Content fetches the shared page.
func (c *Client) Content(ctx context.Context) (ContentPage, error) {
	var page ContentPage
	err := c.do(ctx, http.MethodGet, "/api/content", nil, &page)
	return page, err
}

// UpdateContent replaces the shared page, pushing the previous version
// onto its history.
func (c *Client) UpdateContent(ctx context.Context, content string) (ContentPage, error) {
	var page ContentPage
	err := c.do(ctx, http.MethodPut, "/api/content",
		map[string]string{"content": content}, &page)
	return page, err
}
