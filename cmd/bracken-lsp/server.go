package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sourcegraph/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/jward/bracken"
	"github.com/jward/bracken/internal/textpos"
)

// server tracks one Document per open file. The bracken engine itself is
// single-threaded by contract; the mutex serializes access from the
// connection's handler.
type server struct {
	logger *zap.Logger
	lang   *bracken.Language

	mu   sync.Mutex
	docs map[protocol.DocumentURI]*bracken.Document
}

func newServer(logger *zap.Logger, tablesPath string) (*server, error) {
	lang := bracken.PHP()
	if tablesPath != "" {
		tables, err := bracken.LoadTablesFile(tablesPath)
		if err != nil {
			return nil, err
		}
		lang = tables.Extend(lang)
	}
	return &server{
		logger: logger,
		lang:   lang,
		docs:   make(map[protocol.DocumentURI]*bracken.Document),
	}, nil
}

func (s *server) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uri, doc := range s.docs {
		doc.Close()
		delete(s.docs, uri)
	}
}

func (s *server) handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
	switch req.Method {
	case "initialize":
		return s.initialize()
	case "initialized", "shutdown", "exit":
		return nil, nil
	case "textDocument/didOpen":
		return nil, s.didOpen(req)
	case "textDocument/didChange":
		return nil, s.didChange(req)
	case "textDocument/didClose":
		return nil, s.didClose(req)
	case "textDocument/completion":
		return s.completion(req)
	default:
		if req.Notif {
			return nil, nil
		}
		return nil, &jsonrpc2.Error{Code: jsonrpc2.CodeMethodNotFound, Message: fmt.Sprintf("method not supported: %s", req.Method)}
	}
}

func (s *server) initialize() (*protocol.InitializeResult, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindIncremental,
			},
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{"$"},
			},
		},
		ServerInfo: &protocol.ServerInfo{Name: "bracken-lsp", Version: version},
	}, nil
}

func (s *server) didOpen(req *jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return err
	}

	doc, err := bracken.NewDocument(s.lang, []byte(params.TextDocument.Text))
	if err != nil {
		return err
	}

	s.mu.Lock()
	if old, ok := s.docs[params.TextDocument.URI]; ok {
		old.Close()
	}
	s.docs[params.TextDocument.URI] = doc
	s.mu.Unlock()

	s.logger.Debug("didOpen", zap.String("uri", string(params.TextDocument.URI)))
	return nil
}

// didChangeParams mirrors the wire shape of DidChangeTextDocumentParams with
// a pointer Range, so full-document changes (no range) are distinguishable
// from incremental ones.
type didChangeParams struct {
	TextDocument   protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []contentChange                          `json:"contentChanges"`
}

type contentChange struct {
	Range *protocol.Range `json:"range,omitempty"`
	Text  string          `json:"text"`
}

func (s *server) didChange(req *jsonrpc2.Request) error {
	var params didChangeParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[params.TextDocument.URI]
	if !ok {
		return fmt.Errorf("document not open: %s", params.TextDocument.URI)
	}

	for _, change := range params.ContentChanges {
		if change.Range == nil {
			if err := doc.SetText([]byte(change.Text)); err != nil {
				return err
			}
			continue
		}
		src := doc.Text()
		start := textpos.OffsetFor(src, change.Range.Start)
		end := textpos.OffsetFor(src, change.Range.End)
		if err := doc.Replace(start, end, []byte(change.Text)); err != nil {
			return err
		}
	}
	return nil
}

func (s *server) didClose(req *jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if doc, ok := s.docs[params.TextDocument.URI]; ok {
		doc.Close()
		delete(s.docs, params.TextDocument.URI)
	}
	return nil
}

func (s *server) completion(req *jsonrpc2.Request) (*protocol.CompletionList, error) {
	var params protocol.CompletionParams
	if err := json.Unmarshal(*req.Params, &params); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[params.TextDocument.URI]
	if !ok {
		return nil, fmt.Errorf("document not open: %s", params.TextDocument.URI)
	}

	src := doc.Text()
	offset := textpos.OffsetFor(src, params.Position)
	explicit := params.Context == nil ||
		params.Context.TriggerKind == protocol.CompletionTriggerKindInvoked

	res := doc.CompleteAll(bracken.Request{Offset: offset, Explicit: explicit})
	if res == nil {
		return &protocol.CompletionList{Items: []protocol.CompletionItem{}}, nil
	}

	rng := protocol.Range{
		Start: textpos.PositionFor(src, res.From),
		End:   textpos.PositionFor(src, res.To),
	}
	s.logger.Debug("completion",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character),
		zap.Int("candidates", len(res.Candidates)))

	return &protocol.CompletionList{Items: completionItems(res.Candidates, rng)}, nil
}

// completionItems converts candidates to LSP items. SortText preserves the
// engine's ordering (inner scopes first) against client-side resorting.
func completionItems(candidates []bracken.Candidate, rng protocol.Range) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(candidates))
	padding := len(fmt.Sprint(len(candidates)))
	for i, c := range candidates {
		item := protocol.CompletionItem{
			Label:    c.Name,
			Kind:     itemKind(c.Kind),
			Detail:   c.Detail,
			SortText: fmt.Sprintf("%0*d", padding, i),
		}
		if c.Template != "" {
			item.InsertTextFormat = protocol.InsertTextFormatSnippet
			item.TextEdit = &protocol.TextEdit{Range: rng, NewText: c.Template}
		} else {
			item.TextEdit = &protocol.TextEdit{Range: rng, NewText: c.Name}
		}
		if item.Detail == "" && c.Kind != "" {
			item.Detail = c.Kind
		}
		items = append(items, item)
	}
	return items
}

func itemKind(kind string) protocol.CompletionItemKind {
	switch kind {
	case "variable", "superglobal":
		return protocol.CompletionItemKindVariable
	case "function":
		return protocol.CompletionItemKindFunction
	case "method":
		return protocol.CompletionItemKindMethod
	case "class":
		return protocol.CompletionItemKindClass
	case "type":
		return protocol.CompletionItemKindStruct
	case "keyword":
		return protocol.CompletionItemKindKeyword
	case "constant":
		return protocol.CompletionItemKindConstant
	case "snippet":
		return protocol.CompletionItemKindSnippet
	default:
		return protocol.CompletionItemKindText
	}
}
