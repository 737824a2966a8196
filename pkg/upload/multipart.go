package upload

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
)

// 只处理单文件上传的极简 multipart 解析器。
// 前端只会提交一个图片字段，不支持多文件、普通表单字段、嵌套 multipart、
// transfer-encoding。这些限制是刻意保留的，不要"修复"。

// DefaultMaxBytes 默认最大请求体 10MB
const DefaultMaxBytes int64 = 10 << 20

var (
	// ErrExpectedMultipart Content-Type 不是 multipart/form-data
	ErrExpectedMultipart = errors.New("expected multipart/form-data")
	// ErrNoBoundary Content-Type 中缺少 boundary 参数
	ErrNoBoundary = errors.New("no boundary found in content-type")
	// ErrNoFile 请求体中没有带 filename 的文件分片
	ErrNoFile = errors.New("no file found in request")
	// ErrFileTooLarge 请求体超过大小上限（读取途中即中止）
	ErrFileTooLarge = errors.New("file too large")
)

// File 解析出的文件
type File struct {
	Data        []byte
	ContentType string
	Filename    string
}

// boundary 参数支持带引号和裸值两种写法
var (
	boundaryRe    = regexp.MustCompile(`(?i)boundary=(?:"([^"]+)"|([^;]+))`)
	filenameRe    = regexp.MustCompile(`filename="([^"]+)"`)
	partTypeRe    = regexp.MustCompile(`(?i)Content-Type:\s*([^\r\n]+)`)
	crlf          = []byte("\r\n")
	headerBodySep = []byte("\r\n\r\n")
)

// ==================== 解析状态机 ====================

type parseState int

const (
	stateSeekBoundary parseState = iota // 寻找下一个 --boundary 标记
	stateReadHeaders                    // 读取分片头，判断是否文件分片
	stateReadBody                       // 截取文件体
	stateDone
)

// Parse 从原始请求体中提取第一个文件分片
// r: 原始 body 流（框架层已关闭 body 解析）
// contentType: 请求的 Content-Type 头
// maxBytes: 累计字节上限，<=0 时取 DefaultMaxBytes；超限在读取途中即失败
func Parse(r io.Reader, contentType string, maxBytes int64) (*File, error) {
	if !strings.Contains(contentType, "multipart/form-data") {
		return nil, ErrExpectedMultipart
	}

	boundary := extractBoundary(contentType)
	if boundary == "" {
		return nil, ErrNoBoundary
	}

	body, err := readCapped(r, maxBytes)
	if err != nil {
		return nil, err
	}

	return parseBody(body, boundary)
}

// readCapped 分块读取并累计计数，超限立刻中止，不等整个 body 读完
func readCapped(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	var buf bytes.Buffer
	chunk := make([]byte, 32*1024)
	var total int64

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			total += int64(n)
			if total > maxBytes {
				return nil, ErrFileTooLarge
			}
			buf.Write(chunk[:n])
		}
		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func extractBoundary(contentType string) string {
	m := boundaryRe.FindStringSubmatch(contentType)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return strings.TrimSpace(m[2])
}

// parseBody 按字节在分片标记间推进
// 状态流转: seekBoundary -> readHeaders -> (非文件分片回到 seekBoundary) -> readBody -> done
func parseBody(body []byte, boundary string) (*File, error) {
	marker := []byte("--" + boundary)

	state := stateSeekBoundary
	rest := body
	var headers, payload []byte

	for state != stateDone {
		switch state {
		case stateSeekBoundary:
			idx := bytes.Index(rest, marker)
			if idx == -1 {
				return nil, ErrNoFile
			}
			rest = rest[idx+len(marker):]
			state = stateReadHeaders

		case stateReadHeaders:
			sep := bytes.Index(rest, headerBodySep)
			if sep == -1 {
				// 没有空行分隔的分片（比如结尾的 "--" 残段），跳过
				state = stateSeekBoundary
				continue
			}
			headers = rest[:sep]
			if !isFilePart(headers) {
				state = stateSeekBoundary
				continue
			}
			rest = rest[sep+len(headerBodySep):]
			state = stateReadBody

		case stateReadBody:
			if end := bytes.Index(rest, marker); end != -1 {
				payload = rest[:end]
			} else {
				payload = rest
			}
			payload = trimClosing(payload)
			state = stateDone
		}
	}

	return &File{
		Data:        payload,
		ContentType: partContentType(headers),
		Filename:    partFilename(headers),
	}, nil
}

// isFilePart 分片头里同时出现 Content-Disposition 和 filename= 才算文件
func isFilePart(headers []byte) bool {
	return bytes.Contains(headers, []byte("Content-Disposition")) &&
		bytes.Contains(headers, []byte("filename="))
}

func partFilename(headers []byte) string {
	if m := filenameRe.FindSubmatch(headers); m != nil {
		return string(m[1])
	}
	return "upload.jpg"
}

func partContentType(headers []byte) string {
	if m := partTypeRe.FindSubmatch(headers); m != nil {
		return strings.TrimSpace(string(m[1]))
	}
	return "image/jpeg"
}

// trimClosing 剥掉尾部被顺带截进来的结束标记:
// 至多一个 \r\n，再一个可选的 "--"，再一个可选的 \r\n
func trimClosing(data []byte) []byte {
	data = bytes.TrimSuffix(data, crlf)
	data = bytes.TrimSuffix(data, []byte("--"))
	data = bytes.TrimSuffix(data, crlf)
	return data
}
