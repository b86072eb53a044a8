// Package lsp hosts the language server: document synchronization, settings,
// and dispatch of hover and definition requests into the symbol engine.
package lsp

import (
	"context"
	"log/slog"
	"sync"

	"github.com/kralicky/tools-lite/gopls/pkg/protocol"
	"github.com/protonav/protonav/pkg/engine"
	"github.com/protonav/protonav/pkg/sources"
)

type Server struct {
	client protocol.Client
	source engine.FileSource

	documentsMu sync.RWMutex
	documents   map[protocol.DocumentURI]*protocol.Mapper

	settingsMu sync.RWMutex
	settings   Settings
	folders    []protocol.WorkspaceFolder
	roots      []string
}

type ServerOption func(*Server)

// WithFileSource overrides the filesystem access used for resolution.
func WithFileSource(src engine.FileSource) ServerOption {
	return func(s *Server) {
		s.source = src
	}
}

func NewServer(client protocol.Client, opts ...ServerOption) *Server {
	s := &Server{
		client:    client,
		source:    sources.OSSource{},
		documents: map[protocol.DocumentURI]*protocol.Mapper{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize implements protocol.Server.
func (s *Server) Initialize(ctx context.Context, params *protocol.ParamInitialize) (*protocol.InitializeResult, error) {
	settings, err := DecodeSettings(params.InitializationOptions)
	if err != nil {
		slog.Warn("ignoring malformed initialization options", "error", err)
		settings = Settings{}
	}
	s.applySettings(settings, params.WorkspaceFolders)

	if files, err := sources.SearchDirs(engine.ProtoGlob, s.searchRoots()...); err == nil {
		slog.Info("workspace initialized",
			"folders", len(params.WorkspaceFolders),
			"searchRoots", len(s.searchRoots()),
			"protoFiles", len(files),
		)
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.Incremental,
				Save:      &protocol.SaveOptions{IncludeText: false},
			},
			HoverProvider:      &protocol.Or_ServerCapabilities_hoverProvider{Value: true},
			DefinitionProvider: &protocol.Or_ServerCapabilities_definitionProvider{Value: true},
			Workspace: &protocol.WorkspaceOptions{
				WorkspaceFolders: &protocol.WorkspaceFolders5Gn{
					Supported:           true,
					ChangeNotifications: "workspace/didChangeWorkspaceFolders",
				},
			},
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "protonav",
			Version: "0.1.0",
		},
	}, nil
}

// Initialized implements protocol.Server.
func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	slog.Debug("Initialized")
	return nil
}

// Shutdown implements protocol.Server.
func (s *Server) Shutdown(context.Context) error {
	return nil
}

// Exit implements protocol.Server.
func (s *Server) Exit(context.Context) error {
	return nil
}

// DidChangeConfiguration implements protocol.Server.
func (s *Server) DidChangeConfiguration(ctx context.Context, params *protocol.DidChangeConfigurationParams) error {
	settings, err := DecodeSettings(params.Settings)
	if err != nil {
		slog.Warn("ignoring malformed configuration", "error", err)
		return nil
	}
	s.settingsMu.RLock()
	folders := s.folders
	s.settingsMu.RUnlock()
	s.applySettings(settings, folders)
	return nil
}

// DidChangeWorkspaceFolders implements protocol.Server.
func (s *Server) DidChangeWorkspaceFolders(ctx context.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	s.settingsMu.Lock()
	folders := s.folders[:0:0]
	removed := map[string]bool{}
	for _, f := range params.Event.Removed {
		removed[f.URI] = true
	}
	for _, f := range s.folders {
		if !removed[f.URI] {
			folders = append(folders, f)
		}
	}
	folders = append(folders, params.Event.Added...)
	settings := s.settings
	s.settingsMu.Unlock()
	s.applySettings(settings, folders)
	return nil
}

func (s *Server) applySettings(settings Settings, folders []protocol.WorkspaceFolder) {
	if err := SetLogLevel(settings.LogLevel); err != nil {
		slog.Warn("unrecognized log level", "logLevel", settings.LogLevel)
	}
	roots := settings.ResolveSearchRoots(folders)
	s.settingsMu.Lock()
	s.settings = settings
	s.folders = folders
	s.roots = roots
	s.settingsMu.Unlock()
	slog.Debug("settings applied", "searchRoots", roots)
}

// searchRoots returns the current merged root list. The engine receives it
// as a value; a configuration change mid-flight affects only later queries.
func (s *Server) searchRoots() []string {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()
	roots := make([]string, len(s.roots))
	copy(roots, s.roots)
	return roots
}

// snapshot produces the engine's view of a document: the open buffer if the
// editor holds one, the on-disk bytes otherwise.
func (s *Server) snapshot(uri protocol.DocumentURI) (engine.Document, bool) {
	s.documentsMu.RLock()
	m, ok := s.documents[uri]
	s.documentsMu.RUnlock()
	if ok {
		return engine.Document{Path: uri.Path(), Text: string(m.Content)}, true
	}
	data, err := s.source.ReadFile(uri.Path())
	if err != nil {
		slog.Debug("no snapshot for document", "uri", uri, "error", err)
		return engine.Document{}, false
	}
	return engine.Document{Path: uri.Path(), Text: string(data)}, true
}

// Hover implements protocol.Server.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	eng := engine.NewEngine(s.source, s.searchRoots())
	hover, err := eng.Hover(ctx, doc, params.Position)
	if err != nil {
		slog.Debug("hover failed", "uri", params.TextDocument.URI, "error", err)
		return nil, nil
	}
	return hover, nil
}

// Definition implements protocol.Server.
func (s *Server) Definition(ctx context.Context, params *protocol.DefinitionParams) ([]protocol.Location, error) {
	doc, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}
	eng := engine.NewEngine(s.source, s.searchRoots())
	loc, err := eng.Definition(ctx, doc, params.Position)
	if err != nil {
		slog.Debug("definition failed", "uri", params.TextDocument.URI, "error", err)
		return nil, nil
	}
	if loc == nil {
		slog.Debug("no definition found", "uri", params.TextDocument.URI, "position", params.Position)
		return nil, nil
	}
	return []protocol.Location{
		{
			URI:   protocol.URIFromPath(loc.Path),
			Range: loc.Range,
		},
	}, nil
}
