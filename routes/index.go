// routes 存放示例站点的页面处理函数。
// 每个构造函数接收模板目录，返回可注册到服务器上的处理闭包。
package routes

import "webserver/httpd"

// Index 首页:200加index.html的内容。
func Index(templates *httpd.Templates) httpd.Listener {
	return func(request *httpd.Request) (*httpd.Response, error) {
		response := request.Response(httpd.StatusOK)
		content, err := templates.Load("index.html")
		if err != nil {
			return nil, err
		}
		response.AddContent(content)
		return response, nil
	}
}
