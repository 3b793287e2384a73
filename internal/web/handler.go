// Package web serves the calculator as an HTML form and a small JSON API.
package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tiliavir/schedule-monitor/internal/calc"
	"github.com/Tiliavir/schedule-monitor/internal/logger"
	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/schedule"
	"github.com/Tiliavir/schedule-monitor/internal/source"
	"github.com/Tiliavir/schedule-monitor/internal/timecalc"
)

// maxUploadBytes bounds the multipart form held in memory.
const maxUploadBytes = 1 << 20

// formDateLayout is what <input type="date"> submits.
const formDateLayout = "2006-01-02"

// Handler wires HTTP requests to the calculator.
type Handler struct {
	rules schedule.Rules
	log   *logger.Logger
	now   func() time.Time
}

// NewHandler constructs a handler using the given rules.
func NewHandler(rules schedule.Rules, log *logger.Logger) *Handler {
	return &Handler{rules: rules, log: log, now: time.Now}
}

// InitRoutes builds the gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = maxUploadBytes
	router.SetHTMLTemplate(template.Must(template.New("page").Funcs(templateFuncs).Parse(pageHTML)))

	router.GET("/health", h.health)
	router.GET("/", h.form)
	router.POST("/calc", h.calcForm)

	api := router.Group("/api/v1")
	{
		api.POST("/calc", h.calcJSON)
	}
	return router
}

var templateFuncs = template.FuncMap{
	"hours": timecalc.FormatHours,
	"date": func(t time.Time) string {
		return t.Format(model.DateLayout)
	},
	"clock": func(c *model.Clock) string {
		if c == nil {
			return "(no time)"
		}
		return c.String()
	},
}

type pageData struct {
	Start       string
	End         string
	Entries     string
	EdgeHours   string
	MiddleHours string
	WindowStart string
	WindowEnd   string

	Error     string
	Invalid   []string
	Summary   model.Summary
	HasResult bool
}

func (h *Handler) newPage() pageData {
	today := h.now().Format(formDateLayout)
	return pageData{
		Start:       today,
		End:         today,
		EdgeHours:   timecalc.FormatHours(h.rules.EdgeHours),
		MiddleHours: timecalc.FormatHours(h.rules.MiddleHours),
		WindowStart: h.rules.Window.Start.String(),
		WindowEnd:   h.rules.Window.End.String(),
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) form(c *gin.Context) {
	c.HTML(http.StatusOK, "page", h.newPage())
}

// calcForm handles the HTML form. An uploaded file takes precedence over
// the free-text field.
func (h *Handler) calcForm(c *gin.Context) {
	page := h.newPage()
	page.Start = strings.TrimSpace(c.PostForm("start"))
	page.End = strings.TrimSpace(c.PostForm("end"))
	page.Entries = c.PostForm("entries")

	var fileTokens []string
	fh, err := c.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		h.log.Warnw("reading form failed", "err", err)
		page.Error = "could not read form: " + err.Error()
		c.HTML(http.StatusBadRequest, "page", page)
		return
	}
	hasFile := fh != nil
	if hasFile {
		f, err := fh.Open()
		if err == nil {
			fileTokens, err = source.ReadLines(f)
			f.Close()
		}
		if err != nil {
			h.log.Warnw("reading upload failed", "file", fh.Filename, "err", err)
			page.Error = "could not read uploaded file: " + err.Error()
			c.HTML(http.StatusBadRequest, "page", page)
			return
		}
	}
	tokens := source.Select(fileTokens, hasFile, page.Entries)

	start, end, err := parseRange(page.Start, page.End)
	if err != nil {
		page.Error = err.Error()
		c.HTML(http.StatusBadRequest, "page", page)
		return
	}

	out, err := calc.Run(calc.Request{Start: start, End: end, Tokens: tokens}, h.rules)
	page.Summary = out.Summary
	if err != nil {
		h.log.Infow("calculation rejected", "err", err, "invalid", len(out.Invalid))
		page.Error = capitalize(err.Error()) + "."
		page.Invalid = out.Invalid
		c.HTML(statusFor(err), "page", page)
		return
	}

	h.log.Infow("calculated",
		"entries", len(out.Summary.Entries),
		"ignored", len(out.Summary.Ignored),
		"total_hours", out.Summary.TotalMonitoringHours)
	page.HasResult = true
	c.HTML(http.StatusOK, "page", page)
}

type calcRequest struct {
	Start   string   `json:"start" binding:"required"`
	End     string   `json:"end" binding:"required"`
	Entries []string `json:"entries"`
}

func (h *Handler) calcJSON(c *gin.Context) {
	var req calcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	start, end, err := parseRange(req.Start, req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := calc.Run(calc.Request{Start: start, End: end, Tokens: req.Entries}, h.rules)
	if err != nil {
		body := gin.H{"error": err.Error()}
		if len(out.Invalid) > 0 {
			body["errors"] = out.Invalid
		}
		if len(out.Summary.Ignored) > 0 {
			body["ignored"] = out.Summary.Ignored
		}
		c.JSON(statusFor(err), body)
		return
	}
	c.JSON(http.StatusOK, out.Summary)
}

// parseRange accepts dates as YYYY-MM-DD (HTML date input) or MM/DD/YYYY.
func parseRange(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := parseFormDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid start date '" + startStr + "'")
	}
	end, err := parseFormDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("invalid end date '" + endStr + "'")
	}
	return start, end, nil
}

func parseFormDate(s string) (time.Time, error) {
	if t, err := time.Parse(formDateLayout, s); err == nil {
		return timecalc.Date(t), nil
	}
	return timecalc.ParseDate(s)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, calc.ErrInvalidEntries), errors.Is(err, schedule.ErrNoEntriesInRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
