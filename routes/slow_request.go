package routes

import (
	"time"

	"webserver/httpd"
)

// slowRequestDelay 模拟慢处理的睡眠时长。
const slowRequestDelay = 5 * time.Second

// SlowRequest 故意睡5秒再返回页面，用来观察协程池下
// 慢请求不会阻塞其他连接的处理。
func SlowRequest(templates *httpd.Templates) httpd.Listener {
	return func(request *httpd.Request) (*httpd.Response, error) {
		time.Sleep(slowRequestDelay)
		response := request.Response(httpd.StatusOK)
		content, err := templates.Load("slow_request.html")
		if err != nil {
			return nil, err
		}
		response.AddContent(content)
		return response, nil
	}
}
