// Package sheets appends rows to a Google spreadsheet through the Sheets v4
// API. Authentication is a service account JWT flow from golang.org/x/oauth2.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	// Scope grants read/write access to spreadsheets.
	Scope = sheetsapi.SpreadsheetsScope

	defaultRange = "Sheet1!A:E"
)

// ErrNotConfigured is returned when the client was built without credentials.
var ErrNotConfigured = errors.New("sheets: not configured")

// Config identifies the service account and the target range.
type Config struct {
	ServiceAccountEmail string
	PrivateKey          string // PEM
	SpreadsheetID       string
	Range               string // e.g. "Sheet1!A:E"
}

// Client appends rows to one spreadsheet range.
type Client struct {
	spreadsheetID string
	rng           string
	svc           *sheetsapi.Service
}

// NewClient builds a Client whose HTTP transport signs requests with a
// service-account token. Tokens are fetched lazily on the first call.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ServiceAccountEmail == "" || cfg.PrivateKey == "" || cfg.SpreadsheetID == "" {
		return nil, ErrNotConfigured
	}
	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{Scope},
		TokenURL:   google.JWTTokenURL,
	}
	return newClient(ctx, jwtCfg.Client(ctx), cfg.SpreadsheetID, cfg.Range)
}

func newClient(ctx context.Context, httpClient *http.Client, spreadsheetID, rng string, opts ...option.ClientOption) (*Client, error) {
	if rng == "" {
		rng = defaultRange
	}
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Client{spreadsheetID: spreadsheetID, rng: rng, svc: svc}, nil
}

// Append adds row after the last row of the configured range.
func (c *Client) Append(ctx context.Context, row []any) error {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.rng, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append: %w", err)
	}
	return nil
}
