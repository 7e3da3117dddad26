package lsp

import (
	"sync"

	"go.lsp.dev/uri"
)

// Document 打开的文档
type Document struct {
	URI     uri.URI
	Text    string
	Version int
}

// DocumentManager 管理所有打开的文档
//
// 诊断和语义着色在请求 goroutine 里读取文档，读写需要加锁。
type DocumentManager struct {
	mu     sync.RWMutex
	docs   map[uri.URI]*Document
	logger *Logger
}

// NewDocumentManager 创建文档管理器
func NewDocumentManager(logger *Logger) *DocumentManager {
	return &DocumentManager{
		docs:   make(map[uri.URI]*Document),
		logger: logger,
	}
}

// Open 打开文档
func (m *DocumentManager) Open(docURI uri.URI, text string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[docURI] = &Document{URI: docURI, Text: text, Version: version}
	m.logger.Debug("document opened: %s (%d bytes)", docURI, len(text))
}

// Update 更新文档内容（完整同步）
func (m *DocumentManager) Update(docURI uri.URI, text string, version int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc, ok := m.docs[docURI]; ok {
		doc.Text = text
		doc.Version = version
	} else {
		m.docs[docURI] = &Document{URI: docURI, Text: text, Version: version}
	}
	m.logger.Debug("document updated: %s v%d", docURI, version)
}

// Close 关闭文档
func (m *DocumentManager) Close(docURI uri.URI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, docURI)
	m.logger.Debug("document closed: %s", docURI)
}

// Get 取出文档；不存在时返回 nil
func (m *DocumentManager) Get(docURI uri.URI) *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.docs[docURI]
}
