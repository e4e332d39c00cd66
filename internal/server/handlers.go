package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/callirhoe/pkg/buildinfo"
	"github.com/matzehuels/callirhoe/pkg/calendar"
	"github.com/matzehuels/callirhoe/pkg/errors"
	"github.com/matzehuels/callirhoe/pkg/holiday"
	"github.com/matzehuels/callirhoe/pkg/pipeline"
	"github.com/matzehuels/callirhoe/pkg/render/sink"
	"github.com/matzehuels/callirhoe/pkg/theme"
)

var contentTypes = map[string]string{
	sink.FormatSVG: "image/svg+xml",
	sink.FormatPNG: "image/png",
	sink.FormatPDF: "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, buildinfo.String()+"\n")
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"styles":     s.themes.List(theme.KindStyle),
		"geometries": s.themes.List(theme.KindGeometry),
		"languages":  s.themes.List(theme.KindLanguage),
	})
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, page, err := s.parseOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Format = format

	if r.Method == http.MethodPost {
		set := holiday.NewSet(holiday.WithTerse(opts.Terse))
		if err := set.Load(http.MaxBytesReader(w, r.Body, maxHolidayBody), "request body"); err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Holidays = set
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if page < 1 || page > len(result.Files) {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "page %d out of range 1..%d", page, len(result.Files)))
		return
	}

	h := w.Header()
	h.Set("Content-Type", contentTypes[format])
	h.Set("X-Calendar-Pages", strconv.Itoa(len(result.Files)))
	if result.CacheHit {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Files[page-1])
}

// parseOptions reads render options from query parameters. Parameter names
// follow the JSON names of pipeline.Options; the month range uses the CLI
// syntax (months=3, months=3-5, months=3:6). Holiday files are never read
// from the server's disk.
func (s *Server) parseOptions(v url.Values) (pipeline.Options, int, error) {
	q := query{values: v}
	now := s.now()

	var opts pipeline.Options
	year, err := calendar.ParseYear(q.str("year", "0"), now)
	if err != nil {
		return opts, 0, err
	}
	opts.Year, opts.Month, opts.Span = year, 1, 12
	if m := q.str("months", ""); m != "" {
		if opts.Month, opts.Span, err = calendar.ParseMonthRange(m, now); err != nil {
			return opts, 0, err
		}
	}

	opts.Rows = q.int("rows")
	opts.Cols = q.int("cols")
	opts.GridOrder = q.str("grid_order", "")
	opts.ZOrder = q.str("z_order", "")

	opts.MonthWithYear = q.bool("month_with_year")
	opts.ShortMonthNames = q.bool("short_monthnames")
	opts.LongDayNames = q.bool("long_daynames")
	opts.ShortDayCellRatio = q.float("short_daycell_ratio")
	opts.NoFooter = q.bool("no_footer")
	opts.Symmetric = q.bool("symmetric")
	opts.Padding = q.float("padding")
	opts.NoShadow = q.bool("no_shadow")
	opts.Opaque = q.bool("opaque")
	opts.SwapColors = q.bool("swap_colors")

	opts.Paper = q.str("paper", "")
	if dpi := q.float("dpi"); dpi != nil {
		opts.DPI = *dpi
	}
	opts.Border = q.float("border")
	opts.Landscape = q.bool("landscape")

	opts.Style = q.str("style", "")
	opts.Geometry = q.str("geometry", "")
	opts.Language = q.str("lang", "")
	opts.StyleVars = v["style_var"]
	opts.GeometryVars = v["geom_var"]
	opts.LanguageVars = v["lang_var"]
	opts.Terse = q.bool("terse")

	opts.Themes = s.themes
	page := q.int("page")
	if page == 0 {
		page = 1
	}
	return opts, page, q.err
}

// query decodes typed query parameters, keeping the first error.
type query struct {
	values url.Values
	err    error
}

func (q *query) str(name, def string) string {
	if s := q.values.Get(name); s != "" {
		return s
	}
	return def
}

func (q *query) int(name string) int {
	s := q.values.Get(name)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		q.fail(name, s)
	}
	return n
}

func (q *query) float(name string) *float64 {
	s := q.values.Get(name)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.fail(name, s)
		return nil
	}
	return &f
}

func (q *query) bool(name string) bool {
	s, ok := q.values[name]
	if !ok {
		return false
	}
	if len(s) == 0 || s[0] == "" {
		return true
	}
	b, err := strconv.ParseBool(s[0])
	if err != nil {
		q.fail(name, s[0])
	}
	return b
}

func (q *query) fail(name, value string) {
	if q.err == nil {
		q.err = errors.New(errors.ErrCodeInvalidInput, "invalid value %q for %s", value, name)
	}
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError maps err to a status code: bad input is a 400, an unknown
// variant a 404, anything else a 500 whose details stay in the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	id := middleware.GetReqID(r.Context())
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	msg := "internal error"
	switch {
	case errors.IsUserError(err):
		status, msg = http.StatusBadRequest, errors.UserMessage(err)
	case code == errors.ErrCodeNotFound:
		status, msg = http.StatusNotFound, errors.UserMessage(err)
	case code == errors.ErrCodeUnsupported:
		status, msg = http.StatusNotImplemented, errors.UserMessage(err)
	default:
		s.logger.Error("render failed", "id", id, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: msg, Code: string(code), RequestID: id})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
