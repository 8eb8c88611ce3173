package httpd

import (
	"bytes"
	"net"
)

// fakeStream 测试用的内存Stream实现。ops按顺序记录关闭动作，
// 用来断言优雅关闭的先后次序。
type fakeStream struct {
	input      *bytes.Reader
	output     bytes.Buffer
	writeLimit int // 单次Write最多接受的字节数，-1表示不限
	ops        []string
}

func newFakeStream(input string) *fakeStream {
	return &fakeStream{
		input:      bytes.NewReader([]byte(input)),
		writeLimit: -1,
	}
}

func (s *fakeStream) Read(p []byte) (int, error) {
	return s.input.Read(p)
}

func (s *fakeStream) Write(p []byte) (int, error) {
	if s.writeLimit >= 0 && len(p) > s.writeLimit {
		p = p[:s.writeLimit]
	}
	return s.output.Write(p)
}

func (s *fakeStream) Close() error {
	s.ops = append(s.ops, "close")
	return nil
}

func (s *fakeStream) CloseWrite() error {
	s.ops = append(s.ops, "close-write")
	return nil
}

func (s *fakeStream) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 56789}
}
