package httpd

// server.go只负责WEB服务器的启动、分发与停机逻辑

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"webserver/threads"
)

const (
	// 监听地址固定为本机回环。端口做成可配置意义不大，部署时前面总有一层代理。
	listenAddr = "127.0.0.1:8000"

	// accept的轮询周期。Shutdown只翻转标志位，
	// 正在Accept的循环最多等这么久就能观察到标志并退出。
	acceptPollInterval = 100 * time.Millisecond
)

// Server 接收TCP连接，解析请求行，按(动词,路径)分发给注册的Listener。
// 请求的执行在协程池中，accept循环本身永不处理业务。
type Server struct {
	addr      string
	templates *Templates
	listeners map[Method]Listener
	pool      *threads.WorkerPool
	running   atomic.Bool
	cpt       uint64
}

// NewServer 创建带workers个Worker的服务器。
// templatesDir是HTML模板目录，Listener通过Templates()取用。
func NewServer(workers int, templatesDir string) *Server {
	return &Server{
		addr:      listenAddr,
		templates: NewTemplates(templatesDir),
		listeners: make(map[Method]Listener),
		pool:      threads.NewWorkerPool(workers),
	}
}

// Templates 服务器的模板目录。
func (s *Server) Templates() *Templates {
	return s.templates
}

// Handle 注册method到listener的路由。重复注册同一个method属于编程错误，
// 直接panic。返回Server本身，注册可以链式书写。
func (s *Server) Handle(method Method, listener Listener) *Server {
	if _, ok := s.listeners[method]; ok {
		panic(fmt.Sprintf("httpd: a listener is already registered for %q", method))
	}
	s.listeners[method] = listener
	return s
}

// Serve 启动accept循环，直到Shutdown被调用、ctx被取消或收到停机信号。
// 返回前会关闭协程池:已入队的请求处理完毕，响应照常发出。
// 监听失败时协程池同样会被关闭，错误原样返回。
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp4", s.addr)
	if err != nil {
		s.pool.Close()
		return fmt.Errorf("cannot listen on %q: %w", s.addr, err)
	}
	listener := ln.(*net.TCPListener)
	defer listener.Close()

	s.running.Store(true)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM, syscall.SIGABRT)
	defer signal.Stop(sigc)
	go func() {
		select {
		case <-sigc:
		case <-ctx.Done():
		}
		s.Shutdown()
	}()

	logger.Info("Server started and waiting for incoming connections on " + s.addr)
	s.logRoutes()

	for s.running.Load() {
		if err := listener.SetDeadline(time.Now().Add(acceptPollInterval)); err != nil {
			logger.Error("Error during the acceptation of a new connection:", err)
			continue
		}

		conn, err := listener.AcceptTCP()
		if errors.Is(err, os.ErrDeadlineExceeded) {
			continue
		}
		if err != nil {
			logger.Error("Error during the acceptation of a new connection:", err)
			continue
		}

		s.handle(conn)
	}

	logger.Info("Server is shutting down")
	s.pool.Close()
	return nil
}

// Shutdown 让accept循环在下一个轮询周期退出。可以从任意goroutine调用，
// 重复调用没有任何效果。
func (s *Server) Shutdown() {
	s.running.Store(false)
}

// handle 读出请求行并把任务提交给协程池。协议错误与网络错误只影响
// 当前这一条连接，记录日志后accept循环继续。
func (s *Server) handle(conn *net.TCPConn) {
	request, err := ReadRequest(conn)
	if err != nil {
		logger.Error(err)
		var tooBig *ReceiveTooBigMessageError
		if !errors.As(err, &tooBig) {
			conn.Close()
		}
		return
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("Request %d: %s", s.cpt, request.Method))
	}
	s.cpt++

	listener, ok := s.listeners[request.Method]
	if !ok {
		listener = s.notFoundListener
	}

	s.pool.Submit(NewJob(request, listener))
}

// notFoundListener 未注册路径的兜底响应:404加not_found.html的内容。
func (s *Server) notFoundListener(request *Request) (*Response, error) {
	response := request.Response(StatusNotFound)
	content, err := s.templates.Load("not_found.html")
	if err != nil {
		return nil, err
	}
	response.AddContent(content)
	return response, nil
}

// logRoutes 按字典序打印已注册的路由，方便启动时核对。
func (s *Server) logRoutes() {
	routes := make([]string, 0, len(s.listeners))
	for method := range s.listeners {
		routes = append(routes, method.String())
	}
	slices.Sort(routes)
	for _, route := range routes {
		logger.Info("Registered route: " + route)
	}
}
