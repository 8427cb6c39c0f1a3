// Package client talks to the game server's JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"quoridor/internal/quoridor"
)

// RejectedError carries the server's explanation for a refused request.
type RejectedError struct {
	Status  int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("rejected (%d): %s", e.Status, e.Message)
}

// GameOverError is returned by Play when the match has ended.
type GameOverError struct {
	Winner string
	State  quoridor.State
}

func (e *GameOverError) Error() string {
	return "game over, winner: " + e.Winner
}

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api". A nil hc means http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

type response struct {
	ID      string          `json:"id"`
	State   *quoridor.State `json:"state"`
	Winner  string          `json:"winner"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		var rej struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &rej) == nil && rej.Message != "" {
			return &RejectedError{Status: resp.StatusCode, Message: rej.Message}
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return nil
}

// Start opens a match for name and returns its id and opening state.
func (c *Client) Start(ctx context.Context, name string) (string, quoridor.State, error) {
	var out response
	if err := c.do(ctx, http.MethodPost, "/games", map[string]string{"name": name}, &out); err != nil {
		return "", quoridor.State{}, err
	}
	if out.ID == "" || out.State == nil {
		return "", quoridor.State{}, fmt.Errorf("start: incomplete response")
	}
	return out.ID, *out.State, nil
}

// Play sends a move and returns the state after the server's reply. When the
// match is over the error is a *GameOverError holding the final state.
func (c *Client) Play(ctx context.Context, id string, mv quoridor.Move) (quoridor.State, error) {
	var out response
	if err := c.do(ctx, http.MethodPost, "/games/"+url.PathEscape(id)+"/moves", mv, &out); err != nil {
		return quoridor.State{}, err
	}
	if out.State == nil {
		return quoridor.State{}, fmt.Errorf("play: response has no state")
	}
	if out.Winner != "" {
		return *out.State, &GameOverError{Winner: out.Winner, State: *out.State}
	}
	return *out.State, nil
}

// Get fetches the current state and the winner's name, empty while the
// match is running.
func (c *Client) Get(ctx context.Context, id string) (quoridor.State, string, error) {
	var out response
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(id), nil, &out); err != nil {
		return quoridor.State{}, "", err
	}
	if out.State == nil {
		return quoridor.State{}, "", fmt.Errorf("get: response has no state")
	}
	return *out.State, out.Winner, nil
}

// Suggest asks the server which move its bot would play for the caller.
func (c *Client) Suggest(ctx context.Context, id string) (quoridor.Move, error) {
	var mv quoridor.Move
	if err := c.do(ctx, http.MethodGet, "/games/"+url.PathEscape(id)+"/suggestion", nil, &mv); err != nil {
		return quoridor.Move{}, err
	}
	return mv, nil
}

// List returns the ids of name's most recent matches, newest first.
func (c *Client) List(ctx context.Context, name string) ([]string, error) {
	var out struct {
		Games []string `json:"games"`
	}
	if err := c.do(ctx, http.MethodGet, "/games?name="+url.QueryEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return out.Games, nil
}
