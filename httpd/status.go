package httpd

import "fmt"

// Status 响应状态码。
type Status int

const (
	StatusOK                   Status = 200
	StatusNotFound             Status = 404
	StatusUnprocessableContent Status = 422
)

// String 返回状态行中的文本，如"200 OK"。短语全大写，码与短语之间单个空格。
// 未知状态码属于编程错误，直接panic。
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "200 OK"
	case StatusNotFound:
		return "404 NOT FOUND"
	case StatusUnprocessableContent:
		return "422 UNPROCESSABLE CONTENT"
	}
	panic(fmt.Sprintf("httpd: unknown status code %d", int(s)))
}
