package httpd

import (
	"fmt"
	"regexp"
)

// URI 请求路径。非空、以/开头且不含空格，构造时校验。
type URI string

var uriRegexp = regexp.MustCompile(`^(?:/[^ ]*)+$`)

// ParseURI 校验并构造URI。
func ParseURI(s string) (URI, error) {
	if !uriRegexp.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidURI, s)
	}
	return URI(s), nil
}
