// Package lsp serves translation diagnostics and on-demand translation over
// the Language Server Protocol.
package lsp

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/dhamidi/cs2fs/diag"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "cs2fs"

// TranslateCommand is the workspace/executeCommand name that returns the F#
// translation of the document whose URI is the first argument.
const TranslateCommand = "cs2fs.translate"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
	convert []convert.Option
	log     commonlog.Logger

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

func NewServer(version string, opts ...convert.Option) *Server {
	s := &Server{
		version:   version,
		convert:   opts,
		log:       commonlog.GetLogger("cs2fs.lsp"),
		documents: make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:              s.initialize,
		Initialized:             s.initialized,
		Shutdown:                s.shutdown,
		SetTrace:                s.setTrace,
		TextDocumentDidOpen:     s.textDocumentDidOpen,
		TextDocumentDidChange:   s.textDocumentDidChange,
		TextDocumentDidClose:    s.textDocumentDidClose,
		TextDocumentDidSave:     s.textDocumentDidSave,
		WorkspaceExecuteCommand: s.workspaceExecuteCommand,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{TranslateCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	s.log.Info("client initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.update(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	s.publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	if params.Command != TranslateCommand {
		return nil, fmt.Errorf("unknown command: %s", params.Command)
	}
	if len(params.Arguments) == 0 {
		return nil, fmt.Errorf("%s: missing document URI", TranslateCommand)
	}
	uri, ok := params.Arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s: document URI must be a string", TranslateCommand)
	}
	return s.Translate(uri)
}

// Translate returns the F# text for an open document, or for the file
// behind uri when the client has not opened it.
func (s *Server) Translate(uri protocol.DocumentUri) (string, error) {
	text, ok := s.document(uri)
	if !ok {
		path, err := uriToPath(uri)
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		text = string(data)
	}
	return convert.String(text, s.options(uri)...)
}

// Diagnostics checks one document. The result is empty, never nil, when the
// document translates cleanly, so that publishing it clears old markers.
func (s *Server) Diagnostics(uri protocol.DocumentUri, text string) []protocol.Diagnostic {
	_, err := convert.String(text, s.options(uri)...)
	if err == nil {
		return []protocol.Diagnostic{}
	}
	return []protocol.Diagnostic{toProtocolDiagnostic(diag.FromError(err))}
}

func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	s.documents[uri] = text
	s.mu.Unlock()

	diagnostics := s.Diagnostics(uri, text)
	s.log.Debugf("%s: %d diagnostics", uri, len(diagnostics))
	s.publish(ctx, uri, diagnostics)
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func (s *Server) document(uri protocol.DocumentUri) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, ok := s.documents[uri]
	return text, ok
}

func (s *Server) options(uri protocol.DocumentUri) []convert.Option {
	name := uri
	if path, err := uriToPath(uri); err == nil {
		name = path
	}
	return append([]convert.Option{convert.WithFile(name)}, s.convert...)
}

func toProtocolDiagnostic(d diag.Diagnostic) protocol.Diagnostic {
	var start protocol.Position
	if d.HasPosition() {
		start = protocol.Position{
			Line:      protocol.UInteger(d.Pos.Line - 1),
			Character: protocol.UInteger(d.Pos.Column - 1),
		}
	}
	end := start
	end.Character += protocol.UInteger(d.Length)

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  d.Kind + ": " + d.Message,
	}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
