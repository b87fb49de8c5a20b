// Package cli implements the interactive inkwell client.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"inkwell/internal/client/client"
	"inkwell/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *client.Client
	identity client.Identity
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	api, err := client.New(c.ServerURL)
	if err != nil {
		return nil, err
	}
	return &App{config: c, api: api, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) isLoggedIn() bool {
	return a.identity.ID != ""
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", a.identity.Username, a.identity.Role)
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to inkwell CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
