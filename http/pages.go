package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/devhub"
)

// maxSyncBodySize caps the size of a sync submission.
const maxSyncBodySize = 4 << 20

// PagesResponse is the body of the active-page endpoints.
type PagesResponse struct {
	Pages       []*devhub.ActivePage `json:"pages"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := s.ActivePageService.FindActivePages(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writePages(w, r, pages)
}

func (s *Server) handleSyncPages(w http.ResponseWriter, r *http.Request) {
	inputs, err := decodeSyncRequest(io.LimitReader(r.Body, maxSyncBodySize))
	if err != nil {
		s.Error(w, r, err)
		return
	}

	pages, err := s.ActivePageService.SyncActivePages(r.Context(), inputs)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if claims := devhub.ClaimsFromContext(r.Context()); claims != nil {
		s.Logger.Info("active pages synced", "subject", claims.Subject, "submitted", len(inputs), "stored", len(pages))
	}
	s.writePages(w, r, pages)
}

func (s *Server) handleDeletePages(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		s.Error(w, r, devhub.Errorf(devhub.EINVALID, "ids query parameter required"))
		return
	}

	pages, err := s.ActivePageService.DeleteActivePages(r.Context(), ids)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if claims := devhub.ClaimsFromContext(r.Context()); claims != nil {
		s.Logger.Info("active pages deleted", "subject", claims.Subject, "ids", ids)
	}
	s.writePages(w, r, pages)
}

func (s *Server) writePages(w http.ResponseWriter, r *http.Request, pages []*devhub.ActivePage) {
	lastUpdated, err := s.ActivePageService.LastUpdated(r.Context())
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if pages == nil {
		pages = []*devhub.ActivePage{}
	}
	writeJSON(w, http.StatusOK, PagesResponse{Pages: pages, LastUpdated: lastUpdated.UTC()})
}

// decodeSyncRequest parses a {"pages": [...]} submission.
func decodeSyncRequest(r io.Reader) ([]devhub.ActivePageInput, error) {
	var req struct {
		Pages json.RawMessage `json:"pages"`
	}
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, devhub.Errorf(devhub.EINVALID, "request body must be a JSON object")
	}

	raw := bytes.TrimSpace(req.Pages)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, devhub.Errorf(devhub.EINVALID, "pages must be an array")
	}

	var inputs []devhub.ActivePageInput
	if err := json.Unmarshal(raw, &inputs); err != nil {
		return nil, &devhub.Error{
			Code:    devhub.EINVALID,
			Message: "pages must be an array of page objects",
			Details: []string{err.Error()},
		}
	}
	return inputs, nil
}
