package lsp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
	"github.com/kralicky/tools-lite/pkg/diff"
	"github.com/kralicky/tools-lite/pkg/jsonrpc2"
)

// DidOpen implements protocol.Server.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.documentsMu.Lock()
	s.documents[uri] = protocol.NewMapper(uri, []byte(params.TextDocument.Text))
	s.documentsMu.Unlock()
	slog.Debug("DidOpen", "uri", uri, "languageId", params.TextDocument.LanguageID)
	return nil
}

// DidClose implements protocol.Server.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.documentsMu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.documentsMu.Unlock()
	slog.Debug("DidClose", "uri", params.TextDocument.URI)
	return nil
}

// DidChange implements protocol.Server.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	content, err := s.changedText(uri, params.ContentChanges)
	if err != nil {
		return err
	}
	s.documentsMu.Lock()
	s.documents[uri] = protocol.NewMapper(uri, content)
	s.documentsMu.Unlock()
	return nil
}

// DidSave implements protocol.Server.
func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	slog.Debug("DidSave", "uri", params.TextDocument.URI)
	return nil
}

// changedText applies content changes to the tracked buffer. A single change
// with no range is a full-content replacement; we accept one even when the
// client was asked for incremental changes.
func (s *Server) changedText(uri protocol.DocumentURI, changes []protocol.TextDocumentContentChangeEvent) ([]byte, error) {
	if len(changes) == 0 {
		return nil, fmt.Errorf("%w: no content changes provided", jsonrpc2.ErrInternal)
	}
	if len(changes) == 1 && changes[0].Range == nil && changes[0].RangeLength == 0 {
		return []byte(changes[0].Text), nil
	}

	s.documentsMu.RLock()
	m, ok := s.documents[uri]
	s.documentsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: document %s is not open", jsonrpc2.ErrInternal, uri)
	}
	diffs, err := contentChangeEventsToDiffEdits(m, changes)
	if err != nil {
		return nil, err
	}
	return diff.ApplyBytes(m.Content, diffs)
}

func contentChangeEventsToDiffEdits(mapper *protocol.Mapper, changes []protocol.TextDocumentContentChangeEvent) ([]diff.Edit, error) {
	var edits []protocol.TextEdit
	for _, change := range changes {
		edits = append(edits, protocol.TextEdit{
			Range:   *change.Range,
			NewText: change.Text,
		})
	}
	return protocol.EditsToDiffEdits(mapper, edits)
}
