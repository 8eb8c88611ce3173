package httpd

import (
	"fmt"
	"strings"
)

// Version HTTP协议版本。报文中的HTTP/1.0、HTTP/2.0、HTTP/3.0
// 分别规整成HTTP/1、HTTP/2、HTTP/3，响应时输出规整后的形式。
type Version string

const (
	Http1  Version = "HTTP/1"
	Http11 Version = "HTTP/1.1"
	Http2  Version = "HTTP/2"
	Http3  Version = "HTTP/3"
)

var allowedVersions = []Version{Http1, Http11, Http2, Http3}

// ParseVersion 把报文中的版本号解析成Version。
func ParseVersion(s string) (Version, error) {
	upper := strings.ToUpper(s)
	if upper != string(Http11) {
		upper = strings.TrimSuffix(upper, ".0")
	}

	for _, version := range allowedVersions {
		if string(version) == upper {
			return version, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVersion, s)
}
