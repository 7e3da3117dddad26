package scanner

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ============================================================================
// LiteralBuffer - 字面量缓冲
// ============================================================================
//
// 累积 token 的"煮熟"文本（转义已求值）或原始文本。缓冲有两种编码：
// 窄编码（Latin-1，每字符一字节）和宽编码（UTF-16，每码元两字节）。
// 新缓冲从窄编码开始，遇到第一个超出 Latin-1 的字符时一次性加宽，
// 之后在本轮生命周期内保持宽编码。
//
// ============================================================================

const (
	literalInitialCapacity = 16
	literalGrowthFactor    = 4
	literalMaxGrowth       = 1 << 20 // 单次扩容的增量上限（元素数）

	maxLatin1 = 0xFF
)

// LiteralBuffer 双编码字面量缓冲
//
// 零值可用（空的窄缓冲）。底层存储在 Reset 后保留，供下一个 token 复用。
type LiteralBuffer struct {
	wide    bool
	length  int // 当前有效元素数（窄时为字节，宽时为码元）
	narrow  []byte
	wideBuf []uint16
}

// AddChar 追加一个码点
//
// 超出 BMP 的码点编码为代理对，两个码元一次性写入。
func (b *LiteralBuffer) AddChar(c rune) {
	if !b.wide {
		if c <= maxLatin1 {
			if b.length >= len(b.narrow) {
				b.growNarrow()
			}
			b.narrow[b.length] = byte(c)
			b.length++
			return
		}
		b.convertToWide()
	}
	if c <= 0xFFFF {
		b.appendUnit(uint16(c))
		return
	}
	lead, trail := utf16.EncodeRune(c)
	b.appendUnit(uint16(lead))
	b.appendUnit(uint16(trail))
}

func (b *LiteralBuffer) appendUnit(u uint16) {
	if b.length >= len(b.wideBuf) {
		b.growWide()
	}
	b.wideBuf[b.length] = u
	b.length++
}

// newCapacity 几何增长（4 倍），单次增量封顶
func newCapacity(min, cur int) int {
	capacity := cur
	if capacity < min {
		capacity = min
	}
	grown := capacity * literalGrowthFactor
	if grown > capacity+literalMaxGrowth {
		grown = capacity + literalMaxGrowth
	}
	return grown
}

func (b *LiteralBuffer) growNarrow() {
	next := make([]byte, newCapacity(literalInitialCapacity, len(b.narrow)))
	copy(next, b.narrow[:b.length])
	b.narrow = next
}

func (b *LiteralBuffer) growWide() {
	next := make([]uint16, newCapacity(literalInitialCapacity, len(b.wideBuf)))
	copy(next, b.wideBuf[:b.length])
	b.wideBuf = next
}

// convertToWide 把已有的窄内容逐字节提升为码元
func (b *LiteralBuffer) convertToWide() {
	if b.length > len(b.wideBuf) {
		b.wideBuf = make([]uint16, newCapacity(b.length, len(b.wideBuf)))
	}
	for i := 0; i < b.length; i++ {
		b.wideBuf[i] = uint16(b.narrow[i])
	}
	b.wide = true
}

// IsNarrow 报告缓冲是否仍为窄编码
func (b *LiteralBuffer) IsNarrow() bool {
	return !b.wide
}

// Length 返回逻辑长度（窄为字节数，宽为码元数）
func (b *LiteralBuffer) Length() int {
	return b.length
}

// ReduceLength 截掉末尾 n 个元素
func (b *LiteralBuffer) ReduceLength(n int) {
	b.length -= n
}

// Reset 清空内容并回到窄编码，底层存储保留复用
func (b *LiteralBuffer) Reset() {
	b.length = 0
	b.wide = false
}

// CopyFrom 深拷贝另一缓冲的内容；other 为 nil 时等价于 Reset
func (b *LiteralBuffer) CopyFrom(other *LiteralBuffer) {
	if other == nil {
		b.Reset()
		return
	}
	b.Reset()
	if other.wide {
		if other.length > len(b.wideBuf) {
			b.wideBuf = make([]uint16, newCapacity(other.length, len(b.wideBuf)))
		}
		copy(b.wideBuf, other.wideBuf[:other.length])
		b.wide = true
	} else {
		if other.length > len(b.narrow) {
			b.narrow = make([]byte, newCapacity(other.length, len(b.narrow)))
		}
		copy(b.narrow, other.narrow[:other.length])
	}
	b.length = other.length
}

// NarrowChars 返回窄编码内容（Latin-1 字节），仅窄缓冲可用
func (b *LiteralBuffer) NarrowChars() []byte {
	if b.wide {
		panic("scanner: NarrowChars on wide literal buffer")
	}
	return b.narrow[:b.length]
}

// WideChars 返回宽编码内容（UTF-16 码元），仅宽缓冲可用
func (b *LiteralBuffer) WideChars() []uint16 {
	if !b.wide {
		panic("scanner: WideChars on narrow literal buffer")
	}
	return b.wideBuf[:b.length]
}

// EqualsKeyword 与给定的 ASCII 关键字逐字节比较
//
// 宽缓冲必然含有非 Latin-1 字符，直接不匹配。
func (b *LiteralBuffer) EqualsKeyword(keyword string) bool {
	if b.wide || b.length != len(keyword) {
		return false
	}
	for i := 0; i < b.length; i++ {
		if b.narrow[i] != keyword[i] {
			return false
		}
	}
	return true
}

// String 解码为 Go 字符串
func (b *LiteralBuffer) String() string {
	if b.wide {
		return string(utf16.Decode(b.wideBuf[:b.length]))
	}
	// 窄内容是 Latin-1，0x80..0xFF 需要按码点解码
	ascii := true
	for i := 0; i < b.length; i++ {
		if b.narrow[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b.narrow[:b.length])
	}
	runes := make([]rune, b.length)
	for i := 0; i < b.length; i++ {
		runes[i] = rune(b.narrow[i])
	}
	return string(runes)
}
