// Package lsp 实现 Lumen 的语言服务器
//
// 只依赖词法层：诊断来自扫描器的错误产出，语义着色来自 token 流。
package lsp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/lumenlang/lumen/internal/project"
)

// Server LSP 服务器
type Server struct {
	// 核心组件
	docManager *DocumentManager
	logger     *Logger

	// 工作区信息
	workspaceRoot string
	analyzeOpts   analyzeOptions

	// 输入输出
	reader *bufio.Reader
	writer io.Writer
	mu     sync.Mutex

	// 服务器状态
	initialized bool
	shutdown    bool
}

// NewServer 创建 LSP 服务器
func NewServer(logPath string) *Server {
	logger := NewLogger(logPath)

	s := &Server{
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
		writer:      os.Stdout,
		analyzeOpts: defaultAnalyzeOptions(),
	}
	s.docManager = NewDocumentManager(logger)
	return s
}

// NewServerWithIO 创建指定输入输出的服务器（测试用）
func NewServerWithIO(r io.Reader, w io.Writer, logger *Logger) *Server {
	s := &Server{
		logger:      logger,
		reader:      bufio.NewReader(r),
		writer:      w,
		analyzeOpts: defaultAnalyzeOptions(),
	}
	s.docManager = NewDocumentManager(logger)
	return s
}

func defaultAnalyzeOptions() analyzeOptions {
	cfg := project.GenerateDefault(".")
	return analyzeOptions{
		scanner:          cfg.ScannerOptions(),
		strictOctal:      cfg.Language.StrictOctal,
		warnHtmlComments: cfg.Language.WarnHtmlComments,
	}
}

// Run 启动 LSP 服务器主循环
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("Lumen LSP Server started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("Client disconnected")
				return nil
			}
			s.logger.Error("Error reading message: %v", err)
			continue
		}

		s.handleMessage(msg)

		if s.shutdown {
			s.logger.Info("Server shutdown")
			s.logger.Close()
			return nil
		}
	}
}

// readMessage 读取一条 LSP 消息
func (s *Server) readMessage() ([]byte, error) {
	var contentLength int
	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)

		if line == "" {
			// 头部结束
			break
		}

		if strings.HasPrefix(line, "Content-Length:") {
			lengthStr := strings.TrimSpace(strings.TrimPrefix(line, "Content-Length:"))
			contentLength, err = strconv.Atoi(lengthStr)
			if err != nil {
				return nil, fmt.Errorf("invalid Content-Length: %s", lengthStr)
			}
		}
	}

	if contentLength == 0 {
		return nil, fmt.Errorf("missing Content-Length header")
	}

	content := make([]byte, contentLength)
	if _, err := io.ReadFull(s.reader, content); err != nil {
		return nil, err
	}

	s.logger.Debug("Received message: %d bytes", contentLength)
	return content, nil
}

// sendMessage 发送一条 LSP 消息
func (s *Server) sendMessage(msg interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("Content-Length: %d\r\n\r\n", len(content))

	s.logger.Debug("Sending message: %d bytes", len(content))

	if _, err = s.writer.Write([]byte(header)); err != nil {
		return err
	}
	_, err = s.writer.Write(content)
	return err
}

// handleMessage 处理收到的消息
func (s *Server) handleMessage(msg []byte) {
	var baseMsg struct {
		JSONRPC string          `json:"jsonrpc"`
		ID      json.RawMessage `json:"id,omitempty"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}

	if err := json.Unmarshal(msg, &baseMsg); err != nil {
		s.logger.Error("Error parsing message: %v", err)
		return
	}

	s.logger.Debug("Handling method: %s", baseMsg.Method)

	switch baseMsg.Method {
	case "initialize":
		s.handleInitialize(baseMsg.ID, baseMsg.Params)
	case "initialized":
		s.handleInitialized()
	case "shutdown":
		s.handleShutdown(baseMsg.ID)
	case "exit":
		s.handleExit()
	case "textDocument/didOpen":
		s.handleDidOpen(baseMsg.Params)
	case "textDocument/didChange":
		s.handleDidChange(baseMsg.Params)
	case "textDocument/didClose":
		s.handleDidClose(baseMsg.Params)
	case "textDocument/didSave":
		s.handleDidSave(baseMsg.Params)
	case "textDocument/semanticTokens/full":
		s.handleSemanticTokens(baseMsg.ID, baseMsg.Params)
	default:
		s.logger.Debug("Unhandled method: %s", baseMsg.Method)
		if baseMsg.ID != nil {
			s.sendError(baseMsg.ID, -32601, "Method not found: "+baseMsg.Method)
		}
	}
}

// handleInitialize 处理初始化请求
func (s *Server) handleInitialize(id json.RawMessage, params json.RawMessage) {
	var initParams protocol.InitializeParams
	if err := json.Unmarshal(params, &initParams); err != nil {
		s.sendError(id, -32700, "Parse error")
		return
	}

	if initParams.RootURI != "" {
		s.workspaceRoot = uri.URI(initParams.RootURI).Filename()
		s.loadProjectConfig()
	}

	s.logger.Info("Initialize: workspace=%s", s.workspaceRoot)

	result := map[string]interface{}{
		"capabilities": map[string]interface{}{
			// 文档同步：完整同步
			"textDocumentSync": map[string]interface{}{
				"openClose": true,
				"change":    1, // Full sync
				"save": map[string]interface{}{
					"includeText": true,
				},
			},
			// 语义着色
			"semanticTokensProvider": map[string]interface{}{
				"legend": map[string]interface{}{
					"tokenTypes":     SemanticTokenTypes,
					"tokenModifiers": []string{},
				},
				"full": true,
			},
		},
		"serverInfo": map[string]interface{}{
			"name":    "lumenls",
			"version": "0.1.0",
		},
	}

	s.sendResult(id, result)
}

// loadProjectConfig 从工作区根目录读取 lumen.toml 的语言开关
func (s *Server) loadProjectConfig() {
	configPath := project.FindConfigFile(s.workspaceRoot)
	if configPath == "" {
		s.logger.Debug("No %s found under %s, using defaults", project.ConfigFileName, s.workspaceRoot)
		return
	}
	cfg, err := project.LoadConfig(configPath)
	if err != nil {
		s.logger.Error("Error loading %s: %v", configPath, err)
		return
	}
	s.analyzeOpts = analyzeOptions{
		scanner:          cfg.ScannerOptions(),
		strictOctal:      cfg.Language.StrictOctal,
		warnHtmlComments: cfg.Language.WarnHtmlComments,
	}
	s.logger.Info("Loaded project config: %s", configPath)
}

// handleInitialized 处理初始化完成通知
func (s *Server) handleInitialized() {
	s.initialized = true
	s.logger.Info("Server initialized")
}

// handleShutdown 处理关闭请求
func (s *Server) handleShutdown(id json.RawMessage) {
	s.logger.Info("Shutdown requested")
	s.sendResult(id, nil)
}

// handleExit 处理退出通知
func (s *Server) handleExit() {
	s.shutdown = true
	s.logger.Info("Exit notification received")
}

// handleDidOpen 处理文档打开
func (s *Server) handleDidOpen(params json.RawMessage) {
	var p protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didOpen params: %v", err)
		return
	}

	docURI := uri.URI(p.TextDocument.URI)
	s.docManager.Open(docURI, p.TextDocument.Text, int(p.TextDocument.Version))
	s.publishDiagnostics(docURI, p.TextDocument.Text, int(p.TextDocument.Version))
}

// handleDidChange 处理文档变更
func (s *Server) handleDidChange(params json.RawMessage) {
	var p protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didChange params: %v", err)
		return
	}

	// 完整同步：取最后一个变更的全文
	if len(p.ContentChanges) == 0 {
		return
	}
	docURI := uri.URI(p.TextDocument.URI)
	newContent := p.ContentChanges[len(p.ContentChanges)-1].Text
	s.docManager.Update(docURI, newContent, int(p.TextDocument.Version))
	s.publishDiagnostics(docURI, newContent, int(p.TextDocument.Version))
}

// handleDidClose 处理文档关闭
func (s *Server) handleDidClose(params json.RawMessage) {
	var p protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didClose params: %v", err)
		return
	}

	docURI := uri.URI(p.TextDocument.URI)
	s.docManager.Close(docURI)

	// 清空已关闭文档的诊断
	s.sendNotification("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

// handleDidSave 处理文档保存
func (s *Server) handleDidSave(params json.RawMessage) {
	var p protocol.DidSaveTextDocumentParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.logger.Error("Error parsing didSave params: %v", err)
		return
	}

	s.logger.Debug("Document saved: %s", p.TextDocument.URI)

	if p.Text != "" {
		docURI := uri.URI(p.TextDocument.URI)
		if doc := s.docManager.Get(docURI); doc != nil {
			s.docManager.Update(docURI, p.Text, doc.Version+1)
			s.publishDiagnostics(docURI, p.Text, doc.Version)
		}
	}
}

// handleSemanticTokens 处理整文档语义着色请求
func (s *Server) handleSemanticTokens(id json.RawMessage, params json.RawMessage) {
	var p protocol.SemanticTokensParams
	if err := json.Unmarshal(params, &p); err != nil {
		s.sendError(id, -32700, "Parse error")
		return
	}

	doc := s.docManager.Get(uri.URI(p.TextDocument.URI))
	if doc == nil {
		s.sendResult(id, nil)
		return
	}

	data := semanticTokens(doc.Text, s.analyzeOpts.scanner)
	s.sendResult(id, protocol.SemanticTokens{Data: data})
}

// publishDiagnostics 扫描文档并推送诊断
func (s *Server) publishDiagnostics(docURI uri.URI, text string, version int) {
	diags := analyze(text, s.analyzeOpts)
	s.logger.Debug("Publishing %d diagnostics for %s", len(diags), docURI)

	s.sendNotification("textDocument/publishDiagnostics", protocol.PublishDiagnosticsParams{
		URI:         docURI,
		Version:     uint32(version),
		Diagnostics: diags,
	})
}

// sendResult 发送成功响应
func (s *Server) sendResult(id json.RawMessage, result interface{}) {
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	}
	s.sendMessage(response)
}

// sendError 发送错误响应
func (s *Server) sendError(id json.RawMessage, code int, message string) {
	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
		},
	}
	s.sendMessage(response)
}

// sendNotification 发送服务端通知
func (s *Server) sendNotification(method string, params interface{}) {
	notification := map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	}
	s.sendMessage(notification)
}
