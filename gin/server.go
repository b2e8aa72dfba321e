// Package gin provides the HTTP front-end for converting pages through
// a browser form.
package gin

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/fwojciec/webreduce"
	"github.com/gin-gonic/gin"
)

const formPage = `<!DOCTYPE html>
<html>
<head><title>webreduce</title></head>
<body>
<h1>Convert a page</h1>
<form action="/convert" method="post">
<input type="text" name="url" placeholder="https://example.com/docs" size="60">
<button type="submit">Convert</button>
</form>
</body>
</html>`

const resultPage = `<!DOCTYPE html>
<html>
<head><title>webreduce</title></head>
<body>
<h1>Converted</h1>
<p>{{.URL}} reduced successfully.</p>
<p><a href="/download/{{.Name}}">Download {{.Name}}</a></p>
<p><a href="/">Convert another</a></p>
</body>
</html>`

var resultTmpl = template.Must(template.New("result").Parse(resultPage))

// Server serves the conversion form and download endpoints.
type Server struct {
	router    *gin.Engine
	converter webreduce.PageConverter
	writer    webreduce.PageWriter
	outDir    string
	logger    *slog.Logger
}

// NewServer creates a Server. outDir is where converted JSON files are
// written and served from.
func NewServer(converter webreduce.PageConverter, writer webreduce.PageWriter, outDir string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		router:    router,
		converter: converter,
		writer:    writer,
		outDir:    outDir,
		logger:    logger,
	}

	router.GET("/", s.handleForm)
	router.POST("/convert", s.handleConvert)
	router.GET("/download/:name", s.handleDownload)

	return s
}

// Handler returns the server's HTTP handler, usable with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) handleForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPage))
}

func (s *Server) handleConvert(c *gin.Context) {
	url := c.PostForm("url")
	if url == "" {
		c.String(http.StatusBadRequest, "url is required")
		return
	}

	page, err := s.converter.Convert(c.Request.Context(), url)
	if err != nil {
		s.logger.Error("convert failed", "url", url, "err", err)
		c.String(httpStatus(err), webreduce.ErrorMessage(err))
		return
	}

	name, err := s.writer.WritePage(c.Request.Context(), page)
	if err != nil {
		s.logger.Error("write failed", "url", url, "err", err)
		c.String(http.StatusInternalServerError, webreduce.ErrorMessage(err))
		return
	}

	s.logger.Info("converted", "url", url, "name", name)

	var buf bytes.Buffer
	_ = resultTmpl.Execute(&buf, map[string]string{"URL": url, "Name": name})
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *Server) handleDownload(c *gin.Context) {
	name := c.Param("name")

	// Reject anything that could escape the output directory.
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		c.String(http.StatusBadRequest, "invalid file name")
		return
	}

	c.FileAttachment(filepath.Join(s.outDir, name), name)
}

// httpStatus maps domain error codes to HTTP status codes.
func httpStatus(err error) int {
	switch webreduce.ErrorCode(err) {
	case webreduce.EINVALID:
		return http.StatusBadRequest
	case webreduce.ENOTFOUND:
		return http.StatusNotFound
	case webreduce.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
