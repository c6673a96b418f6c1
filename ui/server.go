package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/dhamidi/cs2fs/diag"
	"github.com/dhamidi/cs2fs/samples"
	"github.com/tliron/commonlog"
)

//go:embed templates
var embeddedFS embed.FS

// inputName labels playground input in diagnostics.
const inputName = "input.cs"

type Server struct {
	templateFS fs.FS
	templates  *template.Template
	mux        *http.ServeMux
	convert    []convert.Option
	log        commonlog.Logger
}

// NewServer builds the playground handler. Templates under ui/templates in
// the working directory take precedence over the embedded ones, so they can
// be edited without rebuilding.
func NewServer(opts ...convert.Option) (*Server, error) {
	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))

	tmpl, err := template.ParseFS(templateFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templateFS: templateFS,
		templates:  tmpl,
		mux:        http.NewServeMux(),
		convert:    append([]convert.Option{convert.WithFile(inputName)}, opts...),
		log:        commonlog.GetLogger("cs2fs.ui"),
	}

	s.mux.HandleFunc("POST /translate", s.handleTranslate)
	s.mux.HandleFunc("POST /api/translate", s.handleAPITranslate)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.log.Debugf("%s %s", r.Method, r.URL.Path)
	s.mux.ServeHTTP(w, r)
}

type PageData struct {
	Source string
	Output string
	Error  string
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Errorf("render %s: %s", name, err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	source := samples.Sample()
	output, err := convert.String(source, s.convert...)
	data := PageData{Source: source, Output: output}
	if err != nil {
		data.Error = diag.Format(err, source, false)
	}
	s.render(w, "index.html", data)
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	source := r.FormValue("source")
	output, err := convert.String(source, s.convert...)
	data := PageData{Source: source, Output: output}
	if err != nil {
		data.Error = diag.Format(err, source, false)
	}
	s.render(w, "index.html", data)
}

type translateRequest struct {
	Source string `json:"source"`
}

type translateResponse struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (s *Server) handleAPITranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	status := http.StatusOK
	var resp translateResponse
	output, err := convert.String(req.Source, s.convert...)
	if err != nil {
		d := diag.FromError(err)
		status = http.StatusUnprocessableEntity
		resp = translateResponse{
			Error:  d.Message,
			Kind:   d.Kind,
			Line:   d.Pos.Line,
			Column: d.Pos.Column,
		}
	} else {
		resp.Output = output
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Errorf("encode response: %s", err)
	}
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	for _, fsys := range []fs.FS{o.secondary, o.primary} {
		if list, err := fs.ReadDir(fsys, name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
