package utils

import (
	"strings"
	"unicode/utf8"
)

// 默认截断长度
const (
	DefaultTextMaxLength = 1000
	URLMaxLength         = 2000
)

// SanitizeText 清洗用户输入文本，防止注入邮件 HTML
// maxLength <= 0 时使用默认值 1000
// 注意：转义顺序固定，& 不转义（保持与历史行为一致，二次清洗结果不变）
func SanitizeText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if maxLength <= 0 {
		maxLength = DefaultTextMaxLength
	}

	s := strings.ReplaceAll(text, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	s = strings.TrimSpace(s)

	return truncate(s, maxLength)
}

// SanitizeURL 清洗 URL，只允许 http/https 协议
// 非法协议 (javascript: 等) 一律返回空串
func SanitizeURL(url string) string {
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return ""
	}

	return truncate(strings.TrimSpace(url), URLMaxLength)
}

// truncate 按字节上限截断，但退避到字符边界，绝不截断半个多字节字符
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// DigitsOnly 提取字符串中的数字字符
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone 格式化美国电话号码，便于店主直接拨打
// 10 位: (xxx) xxx-xxxx
// 11 位且 1 开头: +1 (xxx) xxx-xxxx
// 其他格式原样返回
func FormatPhone(phone string) string {
	digits := DigitsOnly(phone)
	switch {
	case len(digits) == 10:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+1 (" + digits[1:4] + ") " + digits[4:7] + "-" + digits[7:]
	default:
		return phone
	}
}
