package httpd

// Listener 用户注册的路由处理函数:接收一个Request，返回一个Response。
// 处理函数可以阻塞、可以读文件，但只能通过Response操作底层连接。
type Listener func(*Request) (*Response, error)

// Job 把Request与选中的Listener打包成延迟执行的任务单元，
// 由协程池中的某一个Worker消费，恰好一次。
type Job struct {
	request  *Request
	listener Listener
}

// NewJob 构造任务单元。
func NewJob(request *Request, listener Listener) *Job {
	return &Job{
		request:  request,
		listener: listener,
	}
}

// Run 调用Listener生成Response并发送。处理函数的错误原样上抛，
// 由Worker在循环边界处捕获。
func (j *Job) Run() error {
	response, err := j.listener(j.request)
	if err != nil {
		return err
	}
	return response.Send()
}
