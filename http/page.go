package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/devhub"
)

// SiteTitle is the portal name shown in page titles and the header.
const SiteTitle = "Developer Hub"

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"indent": func(depth int) int { return depth * 16 },
}).ParseFS(templateFS, "templates/*.html"))

// sidebarLink is a SidebarItem with its rendered hrefs.
type sidebarLink struct {
	devhub.SidebarItem
	Href       string
	ToggleHref string
}

// pageView is the data of the layout template.
type pageView struct {
	Site        string
	Title       string
	Sidebar     []sidebarLink
	Breadcrumbs []devhub.Breadcrumb
	Body        template.HTML
	NotFound    bool
}

// handlePage renders the document at the request path inside the layout.
// The query parameter "toggle" flips sidebar expansion of the named paths.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	current := devhub.JoinPath(devhub.SplitPath(r.URL.Path))
	toggles := r.URL.Query()["toggle"]

	expanded := devhub.ExpandedPaths(current, s.NavConfig)
	for _, p := range toggles {
		expanded.Toggle(p)
	}

	view := pageView{
		Site:        SiteTitle,
		Title:       SiteTitle,
		Sidebar:     sidebarLinks(devhub.BuildSidebar(s.Tree, current, expanded), current, toggles),
		Breadcrumbs: devhub.Breadcrumbs(current),
	}

	status := http.StatusOK
	doc, err := s.ContentResolver.Resolve(r.Context(), devhub.SplitPath(r.URL.EscapedPath()))
	switch {
	case devhub.ErrorCode(err) == devhub.ENOTFOUND:
		status = http.StatusNotFound
		view.NotFound = true
		view.Title = "Page Not Found · " + SiteTitle
	case err != nil:
		s.htmlError(w, r, err)
		return
	default:
		body, err := s.Renderer.Render(doc.Body)
		if err != nil {
			s.htmlError(w, r, err)
			return
		}
		view.Body = template.HTML(body)
		if title := pageTitle(doc, view.Breadcrumbs); title != "" {
			view.Title = title + " · " + SiteTitle
		}
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "layout.html", view); err != nil {
		s.htmlError(w, r, err)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(buf.Bytes()), 16) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	if status == http.StatusOK && etagMatch(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// htmlError writes a plain error page. Internal details are logged, never shown.
func (s *Server) htmlError(w http.ResponseWriter, r *http.Request, err error) {
	status := ErrorStatusCode(devhub.ErrorCode(err))
	if status == http.StatusInternalServerError {
		s.Logger.Error("page render failed", "path", r.URL.Path, "error", err)
	}
	http.Error(w, devhub.ErrorMessage(err), status)
}

func pageTitle(doc *devhub.Document, crumbs []devhub.Breadcrumb) string {
	if t := doc.Title(); t != "" {
		return t
	}
	if len(crumbs) > 0 {
		return crumbs[len(crumbs)-1].Label
	}
	return ""
}

func sidebarLinks(items []devhub.SidebarItem, current string, toggles []string) []sidebarLink {
	links := make([]sidebarLink, len(items))
	for i, item := range items {
		links[i] = sidebarLink{SidebarItem: item, Href: item.Path}
		if item.HasChildren {
			links[i].ToggleHref = toggleHref(current, toggles, item.Path)
		}
	}
	return links
}

// toggleHref links to current with path added to, or removed from, the
// active toggles.
func toggleHref(current string, toggles []string, path string) string {
	next := make([]string, 0, len(toggles)+1)
	found := false
	for _, t := range toggles {
		if t == path {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		next = append(next, path)
	}
	if len(next) == 0 {
		return current
	}
	return current + "?" + url.Values{"toggle": next}.Encode()
}

func etagMatch(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == etag || candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
