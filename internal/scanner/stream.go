package scanner

import (
	"bufio"
	"io"
	"unicode/utf16"
)

// ============================================================================
// CharacterStream - UTF-16 码元流
// ============================================================================
//
// 扫描器以 UTF-16 码元为单位消费输入。一个码元要么是一个 16 位码点，
// 要么是代理对的一半（两个码元合成一个 21 位码点）。
//
// 位置计数器单调递增；越过输入末尾的那一次 Advance 也会递增位置，
// 这样合成的 EOF token 才有一个良定义的单码元跨度。
//
// ============================================================================

// EndOfInput 输入结束哨兵（负值，不与任何码元冲突）
const EndOfInput rune = -1

// CharacterStream 码元流接口
type CharacterStream interface {
	// Advance 返回并越过下一个码元；输入耗尽时返回 EndOfInput。
	// 位置计数器总是递增，包括在真正的输入末尾那一次。
	Advance() rune

	// Pos 返回已消费的码元数（从 0 开始）
	Pos() int

	// SeekForward 向前跳过至多 n 个码元，返回实际跳过的数量
	// （只有在到达输入末尾时才会少于 n）。已缓冲的数据必须先被用掉。
	SeekForward(n int) int

	// PushBack 撤销最近一次 Advance。紧跟在 SeekForward 之后调用是非法的。
	PushBack(codeUnit rune)

	// SetBookmark 记录当前位置，供 ResetToBookmark 回退。
	// 不支持回退的流（如单向网络流）返回 false，
	// 此时扫描器自身的书签功能也必须失败。
	SetBookmark() bool

	// ResetToBookmark 回退到上一次 SetBookmark 的位置
	ResetToBookmark()
}

// ============================================================================
// StringStream - 字符串源
// ============================================================================

// StringStream 以整段源码字符串为后备的码元流
//
// 源码在构造时一次性转码为 UTF-16，之后所有操作都是游标移动，
// 回退（PushBack、书签）天然支持。
type StringStream struct {
	units    []uint16
	pos      int
	bookmark int // -1 表示未设置
}

// NewStringStream 创建字符串源
func NewStringStream(source string) *StringStream {
	return &StringStream{
		units:    utf16.Encode([]rune(source)),
		bookmark: -1,
	}
}

// Advance 返回下一个码元并前进
func (s *StringStream) Advance() rune {
	if s.pos < len(s.units) {
		u := s.units[s.pos]
		s.pos++
		return rune(u)
	}
	// 到达末尾也要递增位置，EOF token 依赖这个跨度
	s.pos++
	return EndOfInput
}

// Pos 返回当前位置
func (s *StringStream) Pos() int {
	return s.pos
}

// SeekForward 向前跳过至多 n 个码元
func (s *StringStream) SeekForward(n int) int {
	remaining := len(s.units) - s.pos
	if n <= remaining {
		s.pos += n
		return n
	}
	s.pos = len(s.units)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// PushBack 撤销一次 Advance（游标回退）
func (s *StringStream) PushBack(codeUnit rune) {
	s.pos--
}

// SetBookmark 记录当前位置
func (s *StringStream) SetBookmark() bool {
	s.bookmark = s.pos
	return true
}

// ResetToBookmark 回退到书签位置
func (s *StringStream) ResetToBookmark() {
	if s.bookmark < 0 {
		panic("scanner: ResetToBookmark on StringStream without bookmark")
	}
	s.pos = s.bookmark
}

// ============================================================================
// ReaderStream - 单向流式源
// ============================================================================

// ReaderStream 包装 io.Reader 的单向码元流
//
// 输入按 UTF-8 解码后转为 UTF-16 码元。不支持书签（SetBookmark
// 返回 false），因此扫描器在这种源上无法进行投机回退。
// 回压槽是一个小栈：代理对重组最多需要退回两个码元。
type ReaderStream struct {
	br       *bufio.Reader
	pos      int
	trail    rune   // 待发出的代理对后半，0 表示无
	pushback []rune // 回压栈（LIFO）
}

// NewReaderStream 创建单向流式源
func NewReaderStream(r io.Reader) *ReaderStream {
	return &ReaderStream{
		br:       bufio.NewReader(r),
		pushback: make([]rune, 0, 4),
	}
}

// Advance 返回下一个码元并前进
func (s *ReaderStream) Advance() rune {
	if u, ok := s.read(); ok {
		s.pos++
		return u
	}
	s.pos++
	return EndOfInput
}

// read 取出下一个码元；输入耗尽时返回 ok=false
func (s *ReaderStream) read() (rune, bool) {
	if n := len(s.pushback); n > 0 {
		u := s.pushback[n-1]
		s.pushback = s.pushback[:n-1]
		return u, true
	}
	if s.trail != 0 {
		u := s.trail
		s.trail = 0
		return u, true
	}
	r, _, err := s.br.ReadRune()
	if err != nil {
		return 0, false
	}
	if r <= 0xFFFF {
		return r, true
	}
	lead, trail := utf16.EncodeRune(r)
	s.trail = trail
	return lead, true
}

// Pos 返回当前位置
func (s *ReaderStream) Pos() int {
	return s.pos
}

// SeekForward 逐个消费至多 n 个码元
func (s *ReaderStream) SeekForward(n int) int {
	skipped := 0
	for skipped < n {
		if _, ok := s.read(); !ok {
			break
		}
		s.pos++
		skipped++
	}
	return skipped
}

// PushBack 撤销一次 Advance
func (s *ReaderStream) PushBack(codeUnit rune) {
	s.pos--
	if codeUnit == EndOfInput {
		// 末尾哨兵没有对应的真实码元，只回退位置
		return
	}
	s.pushback = append(s.pushback, codeUnit)
}

// SetBookmark 单向流不支持书签
func (s *ReaderStream) SetBookmark() bool {
	return false
}

// ResetToBookmark 单向流不支持书签
func (s *ReaderStream) ResetToBookmark() {
	panic("scanner: ResetToBookmark on forward-only ReaderStream")
}
