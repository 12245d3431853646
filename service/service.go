package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/legcowatch/agenda-mcp/agenda"
	"github.com/legcowatch/agenda-mcp/service/vo"
)

// ErrAgendaTooLarge is returned when a download exceeds Settings.MaxBodyBytes.
var ErrAgendaTooLarge = errors.New("agenda too large")

type Service interface {
	// ParseAgenda parses an agenda already held in memory.
	ParseAgenda(ctx context.Context, id, source string) (*agenda.Document, error)
	// ParseFile reads and parses an agenda from disk. An empty id is taken
	// from the file name.
	ParseFile(ctx context.Context, path, id string) (*agenda.Document, error)
	// FetchAgenda downloads and parses an agenda.
	FetchAgenda(ctx context.Context, id, url string) (*agenda.Document, error)
}

type service struct {
	logger     *zap.Logger
	httpClient *http.Client
	settings   Settings
}

type Settings struct {
	// Language overrides the marker in document ids when set.
	Language     vo.Language
	UserAgent    string
	FetchTimeout time.Duration
	// MaxBodyBytes caps downloaded agendas; zero means no limit.
	MaxBodyBytes int64
}

func NewService(
	logger *zap.Logger,
	settings Settings,
	httpClient *http.Client,
) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &service{
		logger:     logger,
		httpClient: httpClient,
		settings:   settings,
	}
}

func (s *service) parseOptions() []agenda.Option {
	opts := []agenda.Option{agenda.WithLogger(s.logger)}
	if s.settings.Language != 0 {
		opts = append(opts, agenda.WithLanguage(s.settings.Language))
	}
	return opts
}

func (s *service) ParseAgenda(ctx context.Context, id, source string) (*agenda.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := agenda.Parse(id, source, s.parseOptions()...)
	if err != nil {
		return nil, err
	}
	s.logger.Info("parsed agenda",
		zap.String("document", id),
		zap.Int("headers", len(doc.Headers)),
		zap.Int("diagnostics", len(doc.Diagnostics)),
	)
	return doc, nil
}

func (s *service) ParseFile(ctx context.Context, path, id string) (*agenda.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read agenda: %w", err)
	}
	if id == "" {
		id = DocumentID(path)
	}
	return s.ParseAgenda(ctx, id, string(data))
}

func (s *service) FetchAgenda(ctx context.Context, id, url string) (*agenda.Document, error) {
	if s.settings.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.FetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if s.settings.UserAgent != "" {
		req.Header.Set("User-Agent", s.settings.UserAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download agenda: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request failed with status: %d", resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if s.settings.MaxBodyBytes > 0 {
		body = io.LimitReader(resp.Body, s.settings.MaxBodyBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if s.settings.MaxBodyBytes > 0 && int64(len(data)) > s.settings.MaxBodyBytes {
		return nil, fmt.Errorf("%w: agenda exceeds %d bytes", ErrAgendaTooLarge, s.settings.MaxBodyBytes)
	}

	if id == "" {
		id = DocumentID(resp.Request.URL.Path)
	}
	return s.ParseAgenda(ctx, id, string(data))
}

// DocumentID derives a document id from a file name or URL path by dropping
// the directory and extension.
func DocumentID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
