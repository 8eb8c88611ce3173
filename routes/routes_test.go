package routes

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"webserver/httpd"
)

type requestStream struct {
	bytes.Reader
}

func (*requestStream) Write(p []byte) (int, error) { return len(p), nil }
func (*requestStream) Close() error                { return nil }
func (*requestStream) CloseWrite() error           { return nil }
func (*requestStream) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(192, 0, 2, 1), Port: 56789}
}

func newRequest(t *testing.T, line string) *httpd.Request {
	t.Helper()

	stream := new(requestStream)
	stream.Reset([]byte(line))
	request, err := httpd.ReadRequest(stream)
	require.NoError(t, err)
	return request
}

func newTemplates(t *testing.T, pages map[string]string) *httpd.Templates {
	t.Helper()

	dir := t.TempDir()
	for name, content := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return httpd.NewTemplates(dir)
}

func TestBasicUsage_Index(t *testing.T) {
	require := require.New(t)

	templates := newTemplates(t, map[string]string{"index.html": "<h1>Hello!</h1>"})
	response, err := Index(templates)(newRequest(t, "GET / HTTP/1.1\r\n"))
	require.NoError(err)
	require.Equal(httpd.StatusOK, response.Status)
	require.Equal([]byte("<h1>Hello!</h1>"), response.Body())
}

func TestIndex_MissingTemplate(t *testing.T) {
	require := require.New(t)

	templates := newTemplates(t, nil)
	_, err := Index(templates)(newRequest(t, "GET / HTTP/1.1\r\n"))
	require.ErrorIs(err, os.ErrNotExist)
}

func TestSlowRequest_ServesItsPage(t *testing.T) {
	if testing.Short() {
		t.Skip("the route sleeps for several seconds on purpose")
	}
	require := require.New(t)

	templates := newTemplates(t, map[string]string{"slow_request.html": "<h1>Hello!</h1>"})
	response, err := SlowRequest(templates)(newRequest(t, "GET /slow_request HTTP/1.1\r\n"))
	require.NoError(err)
	require.Equal(httpd.StatusOK, response.Status)
	require.Equal([]byte("<h1>Hello!</h1>"), response.Body())
}
