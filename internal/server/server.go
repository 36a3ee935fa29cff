package server

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/sw33tLie/bocheck/pkg/logging"
)

//go:embed web
var WebFS embed.FS

type Server struct {
	Ctl      *Controller
	Username string
	Password string
	Log      logging.Logger
}

func New(ctl *Controller, user, pass string, log logging.Logger) *Server {
	return &Server{
		Ctl:      ctl,
		Username: user,
		Password: pass,
		Log:      log,
	}
}

// Handler builds the routing table of the web UI.
func (s *Server) Handler() (http.Handler, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.basicAuth(s.handleIndex))
	mux.HandleFunc("POST /project", s.basicAuth(s.handleProject))
	mux.HandleFunc("POST /toggle", s.basicAuth(s.handleToggle))
	mux.HandleFunc("POST /start", s.basicAuth(s.handleStart))
	mux.HandleFunc("POST /clear", s.basicAuth(s.handleClear))
	mux.HandleFunc("GET /api/status", s.basicAuth(s.handleStatus))

	webRoot, err := fs.Sub(WebFS, "web")
	if err != nil {
		return nil, err
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(webRoot)))
	mux.Handle("GET /static/", s.basicAuthMiddlewareForStatic(fileServer))

	return mux, nil
}

func (s *Server) Start(addr string) error {
	h, err := s.Handler()
	if err != nil {
		return err
	}
	logging.OrNop(s.Log).Infof("Starting server on %s", addr)
	return http.ListenAndServe(addr, h)
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return s.basicAuthMiddlewareForStatic(next).ServeHTTP
}

func (s *Server) basicAuthMiddlewareForStatic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
