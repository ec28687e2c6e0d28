package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/geosvg/pkg/buildinfo"
	errs "github.com/matzehuels/geosvg/pkg/errors"
	gio "github.com/matzehuels/geosvg/pkg/io"
	"github.com/matzehuels/geosvg/pkg/pipeline"
	"github.com/matzehuels/geosvg/pkg/svg"
)

const contentTypeSVG = "image/svg+xml"

// renderRequest is the body of POST /render and POST /bbox. The named
// profile is the base the inline style is merged over.
type renderRequest struct {
	pipeline.Request
	Profile string `json:"profile,omitempty"`
}

type boundsResponse struct {
	ViewBox svg.ViewBox `json:"viewbox"`
	Members int         `json:"members"`
	Cached  bool        `json:"cached"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      errs.Code `json:"code"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Render(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSVG(w, res)
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Bounds(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boundsResponse{ViewBox: res.ViewBox, Members: res.Members, Cached: res.CacheHit})
}

// handleFile renders a geometry file below the data directory. The query
// accepts profile and margin.
func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	if err := errs.ValidatePath(rel); err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := os.ReadFile(filepath.Join(s.dataDir, filepath.FromSlash(rel)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = errs.Wrap(errs.ErrCodeFileNotFound, err, "no such file %s", rel)
		} else {
			err = errs.Wrap(errs.ErrCodeInternal, err, "read %s", rel)
		}
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	body := renderRequest{
		Request: pipeline.Request{Input: string(data), Format: gio.FormatFromPath(rel)},
		Profile: q.Get("profile"),
	}
	if m := q.Get("margin"); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			s.writeError(w, r, errs.New(errs.ErrCodeInvalidInput, "margin must be a number, got %q", m))
			return
		}
		body.Margin = v
	}

	req, err := s.resolve(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Render(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeSVG(w, res)
}

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (pipeline.Request, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()

	var body renderRequest
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return pipeline.Request{}, errs.New(errs.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return pipeline.Request{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "decode request")
	}
	return s.resolve(body)
}

// resolve merges the request over the configured profile and fills unset
// document options from the configuration.
func (s *Server) resolve(body renderRequest) (pipeline.Request, error) {
	base, err := s.cfg.Profile(body.Profile)
	if err != nil {
		return pipeline.Request{}, err
	}
	req := body.Request
	req.Style = base.Merge(req.Style)

	doc := s.cfg.Document
	if req.Margin == 0 {
		req.Margin = doc.Margin
	}
	if req.Background.IsZero() {
		req.Background = doc.Background
	}
	if req.Stylesheet == "" {
		req.Stylesheet = doc.Stylesheet
	}
	return req, nil
}

func writeSVG(w http.ResponseWriter, res *pipeline.Result) {
	h := w.Header()
	h.Set("Content-Type", contentTypeSVG)
	h.Set("X-Members", strconv.Itoa(res.Members))
	h.Set("X-ViewBox", res.ViewBox.String())
	if res.CacheHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(res.SVG)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errs.HTTPStatus(err)
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "error", err)
	}
	writeJSON(w, status, errorResponse{Error: errorDetail{
		Code:      code,
		Message:   errs.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	}})
}
