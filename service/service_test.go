package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/legcowatch/agenda-mcp/agenda"
	"github.com/legcowatch/agenda-mcp/service/vo"
)

const testAgenda = `<html><body>` +
	`<p>II. Questions</p>` +
	`<p>1. Hon Alice WONG to ask:</p>` +
	`<p>Will the Government inform this Council of the cases?</p>` +
	`<p>Public Officer to reply: Secretary for Security</p>` +
	`</body></html>`

func TestParseAgenda(t *testing.T) {
	s := NewService(nil, Settings{}, nil)

	doc, err := s.ParseAgenda(context.Background(), "cm20140115e", testAgenda)
	require.NoError(t, err)
	require.Len(t, doc.Questions, 1)
	assert.Equal(t, "Secretary for Security", doc.Questions[0].Responder)
}

func TestParseAgendaCanceled(t *testing.T) {
	s := NewService(nil, Settings{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ParseAgenda(ctx, "cm20140115e", testAgenda)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseAgendaLanguageOverride(t *testing.T) {
	s := NewService(nil, Settings{Language: vo.LanguageEnglish}, nil)

	doc, err := s.ParseAgenda(context.Background(), "agenda-2014", testAgenda)
	require.NoError(t, err)
	assert.Equal(t, vo.LanguageEnglish, doc.Language)

	_, err = NewService(nil, Settings{}, nil).ParseAgenda(context.Background(), "agenda-2014", testAgenda)
	assert.True(t, errors.Is(err, agenda.ErrUnknownLanguage))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cm20140115e.html")
	require.NoError(t, os.WriteFile(path, []byte(testAgenda), 0o644))

	doc, err := NewService(nil, Settings{}, nil).ParseFile(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "cm20140115e", doc.ID)
	assert.Len(t, doc.Questions, 1)

	_, err = NewService(nil, Settings{}, nil).ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.html"), "")
	assert.Error(t, err)
}

func TestFetchAgenda(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.UserAgent() != "agenda-test" {
			http.Error(w, "unexpected user agent", http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/agendas/cm20140115e.htm" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(testAgenda))
	}))
	defer server.Close()

	s := NewService(nil, Settings{UserAgent: "agenda-test"}, server.Client())

	doc, err := s.FetchAgenda(context.Background(), "", server.URL+"/agendas/cm20140115e.htm")
	require.NoError(t, err)
	assert.Equal(t, "cm20140115e", doc.ID)
	assert.Len(t, doc.Questions, 1)

	_, err = s.FetchAgenda(context.Background(), "cm1e", server.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchAgendaRejectsOversizedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testAgenda))
	}))
	defer server.Close()

	limit := int64(len(testAgenda))

	_, err := NewService(nil, Settings{MaxBodyBytes: limit - 1}, server.Client()).
		FetchAgenda(context.Background(), "cm1e", server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAgendaTooLarge)
	assert.Contains(t, err.Error(), "exceeds")

	doc, err := NewService(nil, Settings{MaxBodyBytes: limit}, server.Client()).
		FetchAgenda(context.Background(), "cm1e", server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Secretary for Security", doc.Questions[0].Responder)
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "cm20140115e", DocumentID("/tmp/agendas/cm20140115e.html"))
	assert.Equal(t, "cm20140115c", DocumentID("cm20140115c"))
}
