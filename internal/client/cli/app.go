package cli

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/everli/internal/client/client"
	"github.com/dmitrijs2005/everli/internal/client/config"
	"github.com/dmitrijs2005/everli/internal/client/services"
	"github.com/dmitrijs2005/everli/internal/logging"
)

// clientFactory builds a session client for the given credentials. Tests
// swap it for one pointing at an httptest server.
type clientFactory func(creds client.Credentials) (client.Client, error)

type App struct {
	config    *config.Config
	log       logging.Logger
	newClient clientFactory

	client client.Client
	slots  services.SlotService

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config, log logging.Logger) *App {
	factory := func(creds client.Credentials) (client.Client, error) {
		return client.NewHTTPClient(creds,
			client.WithBaseURL(c.BaseURL),
			client.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
			client.WithLogger(log),
		)
	}

	return &App{
		config:    c,
		log:       log,
		newClient: factory,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client != nil && a.client.Token() != ""
}

// location picks the explicit argument, then the configured location.
// "" lets the client resolve the session location.
func (a *App) location(args []string, pos int) string {
	if len(args) > pos {
		return args[pos]
	}
	return a.config.Location
}
