package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	spreadsheetsScope = sheetsapi.SpreadsheetsScope
	valueInputOption  = "USER_ENTERED"
)

// GoogleConfig configures the Sheets appender. TokenURL, BaseURL and HTTPClient
// default to Google's endpoints and a 10s client.
type GoogleConfig struct {
	SpreadsheetID string
	Range         string // e.g. "Respuestas!A:D"
	ClientEmail   string // service account email; share the sheet with it as Editor
	PrivateKey    string // PEM; literal "\n" sequences are expanded
	TokenURL      string
	BaseURL       string // Sheets API root, e.g. "https://sheets.googleapis.com/"
	HTTPClient    *http.Client
}

// GoogleAppender appends rows with values.append (USER_ENTERED).
// The oauth2 token source caches and renews the access token. Safe for concurrent use.
type GoogleAppender struct {
	spreadsheetID string
	rng           string
	srv           *sheetsapi.Service
}

// NewGoogleAppender validates cfg, parses the service-account key and builds the Sheets client.
func NewGoogleAppender(cfg GoogleConfig) (*GoogleAppender, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("sheets: spreadsheet id is required")
	}
	if cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("sheets: service account email and private key are required")
	}
	if cfg.Range == "" {
		cfg.Range = "Respuestas!A:D"
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = google.JWTTokenURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}

	pem := strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n")
	if _, err := gojwt.ParseRSAPrivateKeyFromPEM([]byte(pem)); err != nil {
		return nil, fmt.Errorf("sheets: parse private key: %w", err)
	}

	jc := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(pem),
		Scopes:     []string{spreadsheetsScope},
		TokenURL:   cfg.TokenURL,
	}
	// token exchange and API calls share the configured transport
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, cfg.HTTPClient)

	opts := []option.ClientOption{option.WithHTTPClient(jc.Client(ctx))}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	srv, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: new service: %w", err)
	}
	return &GoogleAppender{spreadsheetID: cfg.SpreadsheetID, rng: cfg.Range, srv: srv}, nil
}

// Append adds row after the last row of the configured range.
func (a *GoogleAppender) Append(ctx context.Context, row []string) (string, error) {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
	}

	resp, err := a.srv.Spreadsheets.Values.
		Append(a.spreadsheetID, a.rng, &sheetsapi.ValueRange{Values: [][]interface{}{values}}).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("sheets: append: %w", err)
	}
	if resp.Updates == nil {
		return "", nil
	}
	return resp.Updates.UpdatedRange, nil
}
