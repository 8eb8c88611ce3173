package httpd

import "fmt"

// Method (动词,路径)二元组，路由表的键。结构体可比较，直接用作map的key。
type Method struct {
	Verb Verb
	URI  URI
}

// NewMethod 校验uri并构造Method。verb必须是本包导出的枚举值之一。
func NewMethod(verb Verb, uri string) (Method, error) {
	if _, err := ParseVerb(string(verb)); err != nil {
		return Method{}, err
	}

	u, err := ParseURI(uri)
	if err != nil {
		return Method{}, err
	}

	return Method{Verb: verb, URI: u}, nil
}

// 每个动词一个便捷构造函数，路由注册时用。

func Get(uri string) (Method, error)     { return NewMethod(VerbGet, uri) }
func Post(uri string) (Method, error)    { return NewMethod(VerbPost, uri) }
func Update(uri string) (Method, error)  { return NewMethod(VerbUpdate, uri) }
func Patch(uri string) (Method, error)   { return NewMethod(VerbPatch, uri) }
func Delete(uri string) (Method, error)  { return NewMethod(VerbDelete, uri) }
func Head(uri string) (Method, error)    { return NewMethod(VerbHead, uri) }
func Options(uri string) (Method, error) { return NewMethod(VerbOptions, uri) }
func Trace(uri string) (Method, error)   { return NewMethod(VerbTrace, uri) }
func Connect(uri string) (Method, error) { return NewMethod(VerbConnect, uri) }

// Must 包装Method构造函数，出错直接panic。路由注册发生在serve之前，
// 注册阶段的错误都是致命的。
func Must(m Method, err error) Method {
	if err != nil {
		panic(err)
	}
	return m
}

func (m Method) String() string {
	return fmt.Sprintf("%s %s", m.Verb, m.URI)
}
