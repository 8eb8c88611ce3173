package httpd

import (
	"fmt"
	"io"
	"os"

	"github.com/valyala/bytebufferpool"
)

// Response 服务端的响应对象。从Request创建并接管其连接，
// Send负责序列化、发送以及连接的优雅关闭。
type Response struct {
	Version Version
	Status  Status

	body   []byte
	stream Stream
}

// AddContent 追加报文主体。
func (w *Response) AddContent(content []byte) *Response {
	w.body = append(w.body, content...)
	return w
}

// AddFile 把文件的全部内容作为报文主体追加。
// 打开或读取失败对当前请求的处理是致命的，错误原样上抛。
func (w *Response) AddFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot add the file %q: %w", path, err)
	}
	w.body = append(w.body, content...)
	return nil
}

// Body 序列化前的报文主体。
func (w *Response) Body() []byte {
	return w.body
}

// Send 把整个响应一次性写到连接上，格式:
//
//	{version} {status}\r\nContent-Length: {n}\r\n\r\n{body}
//
// 除Content-Length外不发送任何首部。写入量不足时返回MessagePartiallySentError。
// 发送成功后优雅关闭连接。
func (w *Response) Send() error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "%s %s\r\nContent-Length: %d\r\n\r\n", w.Version, w.Status, len(w.body))
	buf.Write(w.body)

	n, err := w.stream.Write(buf.B)
	if err != nil {
		w.stream.Close()
		return err
	}
	if n < buf.Len() {
		addr := w.stream.RemoteAddr()
		w.stream.Close()
		return &MessagePartiallySentError{Missing: buf.Len() - n, Addr: addr}
	}

	return closeGracefully(w.stream)
}

// closeGracefully 先关闭写端，把对端还在发送的数据读到EOF，最后释放连接。
// 直接Close会让还在读响应的浏览器收到RST，截断报文主体。
func closeGracefully(stream Stream) error {
	if err := stream.CloseWrite(); err != nil {
		stream.Close()
		return err
	}
	if _, err := io.Copy(io.Discard, stream); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}
