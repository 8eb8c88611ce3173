// httpd 实现一个极简的多线程HTTP/1.x服务器:
// 解析请求行，按(动词,路径)分发给用户注册的处理函数，
// 在同一条连接上写回响应后关闭连接。
// 不支持请求主体、首部字段解析、keep-alive长连接与分块传输。
package httpd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net"
	"regexp"
)

// Stream 是Request独占的底层TCP连接。*net.TCPConn天然满足该接口，
// 测试中可以用内存实现替代。
// 优雅关闭需要单独关闭写端，所以在io.ReadWriteCloser之外还要求CloseWrite。
type Stream interface {
	io.ReadWriteCloser
	CloseWrite() error
	RemoteAddr() net.Addr
}

// maxLineSize 读缓冲大小，同时也是请求行的长度上限。
// 如果客户端发来一个超长的请求行，不加限制地读下去会耗尽内存，
// 所以读满缓冲仍没见到\r\n就直接拒绝。
const maxLineSize = 4 << 10

var (
	// 请求行的规范文法。动词对大小写不敏感，路径以/开头且不含空格，
	// 版本号接受HTTP/1、HTTP/1.1、HTTP/2、HTTP/3以及带.0后缀的形式。
	firstLineRegexp = regexp.MustCompile(
		`^((?i:GET|POST|UPDATE|PATCH|DELETE|HEAD|OPTIONS|TRACE|CONNECT)) (/[^ ]*(?:/[^ ]*)*) (HTTP/(?:1\.1|[1-3](?:\.0)?))\r\n`)

	versionRegexp = regexp.MustCompile(`HTTP/(?:1\.1|[1-3](?:\.0)?)`)
)

// Request 代表解析后的请求行以及产生它的TCP连接。
// 连接由Request独占，生成Response时移交给Response。
type Request struct {
	Method  Method
	Version Version

	stream Stream
}

// ReadRequest 从连接上读到第一个\r\n为止，解析出Request。
// 请求行超出读缓冲容量时走拒绝路径:回写422、优雅关闭连接，
// 并返回ReceiveTooBigMessageError。
// 请求行不符合文法时返回InvalidHTTPRequestError，此时连接未被关闭，
// 由调用方负责。
func ReadRequest(stream Stream) (*Request, error) {
	bufr := bufio.NewReaderSize(stream, maxLineSize)

	line, err := bufr.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		return nil, rejectTooBig(stream, line)
	}
	// 对端在发完一行前就关闭连接，把读到的残缺内容交给正则判非法
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, err
	}

	matches := firstLineRegexp.FindSubmatch(line)
	if matches == nil {
		return nil, &InvalidHTTPRequestError{Line: string(line)}
	}

	verb, err := ParseVerb(string(matches[1]))
	if err != nil {
		return nil, &InvalidHTTPRequestError{Line: string(line)}
	}
	uri, err := ParseURI(string(matches[2]))
	if err != nil {
		return nil, &InvalidHTTPRequestError{Line: string(line)}
	}
	version, err := ParseVersion(string(matches[3]))
	if err != nil {
		return nil, &InvalidHTTPRequestError{Line: string(line)}
	}

	return &Request{
		Method:  Method{Verb: verb, URI: uri},
		Version: version,
		stream:  stream,
	}, nil
}

// rejectTooBig 处理超长请求行:尽力从已读到的前缀里解析出版本号
// (解析不出就按HTTP/1.1)，回写"{version} 422 UNPROCESSABLE CONTENT\r\n\r\n"，
// 优雅关闭连接后返回ReceiveTooBigMessageError。
func rejectTooBig(stream Stream, prefix []byte) error {
	version := Http11
	if m := versionRegexp.Find(prefix); m != nil {
		if v, err := ParseVersion(string(m)); err == nil {
			version = v
		}
	}

	errorResponse := fmt.Sprintf("%s %s\r\n\r\n", version, StatusUnprocessableContent)
	addr := stream.RemoteAddr()

	n, err := io.WriteString(stream, errorResponse)
	if err != nil {
		stream.Close()
		return err
	}
	if n < len(errorResponse) {
		stream.Close()
		return &MessagePartiallySentError{Missing: len(errorResponse) - n, Addr: addr}
	}

	closeGracefully(stream)
	return &ReceiveTooBigMessageError{Addr: addr}
}

// Response 从Request派生响应，连接随之移交。每个Request只会派生一个Response。
func (r *Request) Response(status Status) *Response {
	return &Response{
		Version: r.Version,
		Status:  status,
		stream:  r.stream,
	}
}

// RemoteAddr 客户端地址。
func (r *Request) RemoteAddr() net.Addr {
	return r.stream.RemoteAddr()
}
