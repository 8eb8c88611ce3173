package httpd

import (
	"fmt"
	"strings"
)

// Verb 表示HTTP方法，闭合枚举。报文中的动词对大小写不敏感，解析后统一成大写。
type Verb string

const (
	VerbGet    Verb = "GET"
	VerbPost   Verb = "POST"
	VerbUpdate Verb = "UPDATE" // 兼容历史客户端保留的非标准动词
	VerbPatch  Verb = "PATCH"
	VerbDelete Verb = "DELETE"

	VerbHead    Verb = "HEAD"
	VerbOptions Verb = "OPTIONS"
	VerbTrace   Verb = "TRACE"
	VerbConnect Verb = "CONNECT"
)

var allowedVerbs = []Verb{
	VerbGet, VerbPost, VerbUpdate, VerbPatch, VerbDelete,
	VerbHead, VerbOptions, VerbTrace, VerbConnect,
}

// ParseVerb 把报文中的动词解析成Verb。
func ParseVerb(s string) (Verb, error) {
	upper := Verb(strings.ToUpper(s))
	for _, verb := range allowedVerbs {
		if verb == upper {
			return verb, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVerb, s)
}
