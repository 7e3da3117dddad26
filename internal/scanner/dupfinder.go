package scanner

import "github.com/lumenlang/lumen/internal/numconv"

// ============================================================================
// DuplicateFinder - 重复键检测
// ============================================================================
//
// 供语法分析阶段检测对象字面量的重复属性名、严格模式下的重复形参等。
// 每个键编码为一个自描述的字节串：变长长度前缀（首字节携带宽窄标志）
// 加上键内容本身，窄键存 Latin-1 字节，宽键存小端序码元。编码串追加进
// 后备存储，并以其为索引键记录首次出现时关联的值。
//
// 数字键先做规范化：字面量 "1.0"、"1"、"0x1" 都折叠为同一个键 "1"，
// 与数值相等语义一致。
//
// ============================================================================

// DuplicateFinder 追加式的键存储加索引
type DuplicateFinder struct {
	backing []byte         // 追加式后备存储，保存所有编码后的键
	index   map[string]int // 编码键 -> 首次插入时的值
}

// NewDuplicateFinder 创建空的重复键检测器
func NewDuplicateFinder() *DuplicateFinder {
	return &DuplicateFinder{
		index: make(map[string]int),
	}
}

// AddNarrowSymbol 插入窄编码（Latin-1）符号键
//
// 首次出现时记录 value 并原样返回；再次出现时返回首次记录的值。
// 调用方用 "返回值 != 本次传入值" 判定重复。
func (f *DuplicateFinder) AddNarrowSymbol(key []byte, value int) int {
	return f.add(encodeKey(key, false), value)
}

// AddWideSymbol 插入宽编码（UTF-16）符号键
func (f *DuplicateFinder) AddWideSymbol(key []uint16, value int) int {
	bytes := make([]byte, 0, len(key)*2)
	for _, u := range key {
		bytes = append(bytes, byte(u), byte(u>>8))
	}
	return f.add(encodeKey(bytes, true), value)
}

// AddNumber 插入数字字面量键，先折叠为规范十进制形式
func (f *DuplicateFinder) AddNumber(key []byte, value int) int {
	if !isNumberCanonical(key) {
		v := numconv.StringToDouble(string(key),
			numconv.AllowHex|numconv.AllowOctal|numconv.AllowBinary|numconv.AllowImplicitOctal)
		key = []byte(numconv.DoubleToString(v))
	}
	return f.AddNarrowSymbol(key, value)
}

func (f *DuplicateFinder) add(encoded []byte, value int) int {
	if v, ok := f.index[string(encoded)]; ok {
		return v
	}
	start := len(f.backing)
	f.backing = append(f.backing, encoded...)
	f.index[string(f.backing[start:])] = value
	return value
}

// encodeKey 组装长度前缀 + 内容
//
// 首字节：长度低 6 位左移一位，最低位是宽窄标志（1 = 窄）。
// 剩余长度按 7 位一组续接，续接字节最高位置 1。
func encodeKey(content []byte, isWide bool) []byte {
	length := len(content)
	flag := byte(1)
	if isWide {
		flag = 0
	}
	encoded := make([]byte, 0, len(content)+3)
	encoded = append(encoded, byte(length&0x3F)<<1|flag)
	length >>= 6
	for length != 0 {
		encoded = append(encoded, byte(length&0x7F)|0x80)
		length >>= 7
	}
	return append(encoded, content...)
}

// isNumberCanonical 判断字面量是否已是规范十进制形式，是则跳过折叠
//
// 保守检查：非负十进制，无前导零（"0" 本身除外），小数部分无尾随零，
// 且总位数不超过 15（双精度可精确表示的安全范围）。
func isNumberCanonical(key []byte) bool {
	pos := 0
	length := len(key)
	if length == 0 {
		return false
	}
	if length > 15 {
		return false
	}
	if key[pos] == '0' {
		pos++
	} else {
		// 整数部分：无前导零的数字串
		start := pos
		for pos < length && isDecimalDigit(rune(key[pos])) {
			pos++
		}
		if pos == start {
			return false
		}
	}
	if pos == length {
		return true
	}
	if key[pos] != '.' {
		return false
	}
	pos++
	hasMoreDigits := false
	for pos < length && isDecimalDigit(rune(key[pos])) {
		hasMoreDigits = true
		pos++
	}
	if !hasMoreDigits {
		return false
	}
	if pos != length {
		return false
	}
	// 小数部分的尾随零不规范（"1.10" 应折叠为 "1.1"）
	return key[length-1] != '0'
}
