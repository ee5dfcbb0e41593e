// Package sheet reaches the remote spreadsheet that is the durable store for
// activity reports and keeps a short-lived in-memory snapshot of its rows.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RowSource yields every cell of the remote worksheet as text, row-major,
// first row = header. That is the only contract the normalizer depends on.
type RowSource interface {
	FetchRows(ctx context.Context) ([][]string, error)
}

// SourceConfig identifies the worksheet and the service account used to
// read it. Either CredentialsFile or ClientEmail+PrivateKey must be set.
type SourceConfig struct {
	URL             string
	ReadRange       string
	CredentialsFile string
	ClientEmail     string
	PrivateKey      string
}

const defaultReadRange = "A:Z"

type GoogleSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

func NewGoogleSource(ctx context.Context, cfg SourceConfig) (*GoogleSource, error) {
	spreadsheetID, err := SpreadsheetIDFromURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	readRange := strings.TrimSpace(cfg.ReadRange)
	if readRange == "" {
		readRange = defaultReadRange
	}

	jwtConfig, err := jwtConfigFor(cfg)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &GoogleSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

func (s *GoogleSource) FetchRows(ctx context.Context) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch sheet values: %w", err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			if cell == nil {
				row = append(row, "")
				continue
			}
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func jwtConfigFor(cfg SourceConfig) (*jwt.Config, error) {
	if path := strings.TrimSpace(cfg.CredentialsFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("parse service account credentials: %w", err)
		}
		return jwtConfig, nil
	}

	email := strings.TrimSpace(cfg.ClientEmail)
	key := RepairPrivateKey(cfg.PrivateKey)
	if email == "" || key == "" {
		return nil, errors.New("service account credentials are required (credentials_file or client_email + private_key)")
	}

	return &jwt.Config{
		Email:      email,
		PrivateKey: []byte(key),
		Scopes:     []string{sheets.SpreadsheetsReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}, nil
}

// RepairPrivateKey fixes keys pasted into config with literal "\n" sequences
// instead of real newlines, a recurring deployment mistake with multi-line
// PEM secrets.
func RepairPrivateKey(key string) string {
	key = strings.TrimSpace(key)
	if strings.Contains(key, `\n`) && !strings.Contains(key, "\n") {
		key = strings.ReplaceAll(key, `\n`, "\n")
	}
	return key
}

// SpreadsheetIDFromURL extracts the document ID from a Google Sheets share
// URL. A value without the /spreadsheets/d/ prefix is treated as a bare ID.
func SpreadsheetIDFromURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("sheet URL is required")
	}

	marker := "/spreadsheets/d/"
	index := strings.Index(raw, marker)
	if index < 0 {
		if strings.Contains(raw, "/") {
			return "", fmt.Errorf("unrecognized sheet URL %q", raw)
		}
		return raw, nil
	}

	id := raw[index+len(marker):]
	if cut := strings.IndexAny(id, "/?#"); cut >= 0 {
		id = id[:cut]
	}
	if id == "" {
		return "", fmt.Errorf("sheet URL %q has no document id", raw)
	}
	return id, nil
}
