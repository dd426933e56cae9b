// Package langserver exposes the NanoCalc front-end over the Language
// Server Protocol: it re-parses a document on every open/change/save and
// publishes the first lexical or syntactic diagnostic, if any.
package langserver

import (
	"errors"

	"github.com/dhamidi/nanocalc/nano/parser"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "nanocalc"

var log = commonlog.GetLogger(lsName)

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
}

func New(version string) *Server {
	s := &Server{
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
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

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized, version %s", s.version)
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.validate(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.validate(ctx, params.TextDocument.URI, textChange.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	publish(ctx, params.TextDocument.URI, nil)
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.validate(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

// validate runs a fresh lexer/parser pair over the document and publishes
// either the single diagnostic or an empty set to clear earlier ones.
func (s *Server) validate(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	var diagnostics []protocol.Diagnostic
	if _, err := parser.Parse(text); err != nil {
		diagnostics = append(diagnostics, toDiagnostic(err))
		log.Debugf("%s: %v", uri, err)
	}
	publish(ctx, uri, diagnostics)
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

// toDiagnostic converts a parser error to an LSP diagnostic spanning the
// single offending character. Parser positions are 1-based, LSP positions
// 0-based.
func toDiagnostic(err error) protocol.Diagnostic {
	line, column := 1, 1

	var lexErr *parser.LexError
	var synErr *parser.SyntaxError
	switch {
	case errors.As(err, &lexErr):
		line, column = lexErr.Line, lexErr.Column
	case errors.As(err, &synErr):
		line, column = synErr.Line, synErr.Column
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line - 1), Character: protocol.UInteger(column - 1)},
			End:   protocol.Position{Line: protocol.UInteger(line - 1), Character: protocol.UInteger(column)},
		},
		Severity: &severity,
		Source:   &source,
		Message:  err.Error(),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
