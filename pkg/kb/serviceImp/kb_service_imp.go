package serviceImp

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/h809829-coder/agrosmart/entities"
	"github.com/h809829-coder/agrosmart/pkg/apperr"
	"github.com/h809829-coder/agrosmart/pkg/kb/repository"
	"github.com/h809829-coder/agrosmart/pkg/kb/service"
	"github.com/h809829-coder/agrosmart/pkg/logger"
)

const chunkRunes = 1000

type Svc struct {
	r        repository.KBRepository
	allow    map[string]bool
	maxBytes int
	httpc    *http.Client
}

type Option func(*Svc)

// WithHTTPClient replaces the client used for URL ingestion.
func WithHTTPClient(c *http.Client) Option { return func(s *Svc) { s.httpc = c } }

// New builds the service. allowedDomains are host names without port;
// maxBytes caps a fetched page.
func New(r repository.KBRepository, allowedDomains []string, maxBytes int, opts ...Option) *Svc {
	allow := make(map[string]bool, len(allowedDomains))
	for _, d := range allowedDomains {
		if d = strings.ToLower(strings.TrimSpace(d)); d != "" {
			allow[d] = true
		}
	}
	s := &Svc{r: r, allow: allow, maxBytes: maxBytes, httpc: &http.Client{Timeout: 20 * time.Second}}
	for _, o := range opts {
		o(s)
	}
	s.httpc = s.guardRedirects(s.httpc)
	return s
}

var errRedirectNotAllowed = errors.New("redirect to domain not allowed")

// guardRedirects returns a copy of c that refuses to follow a redirect off
// the allow-list. c itself is left untouched.
func (s *Svc) guardRedirects(c *http.Client) *http.Client {
	if c == nil {
		c = http.DefaultClient
	}
	guarded := *c
	next := c.CheckRedirect
	guarded.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if !s.allow[strings.ToLower(req.URL.Hostname())] {
			return errRedirectNotAllowed
		}
		if next != nil {
			return next(req, via)
		}
		if len(via) >= 10 {
			return errors.New("stopped after 10 redirects")
		}
		return nil
	}
	return &guarded
}

func (s *Svc) Ingest(ctx context.Context, in service.IngestInput) (*entities.KBDocument, int, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, 0, apperr.Wrap(apperr.ErrInvalidInput, "title is required")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, 0, apperr.Wrap(apperr.ErrInvalidInput, "text is required")
	}

	parts := chunkText(in.Text, chunkRunes)
	rows := make([]entities.KBChunk, len(parts))
	for i, p := range parts {
		rows[i] = entities.KBChunk{Ord: i, Text: p}
	}

	d := &entities.KBDocument{Title: title, Tags: strings.TrimSpace(in.Tags), SourceURL: strings.TrimSpace(in.SourceURL)}
	if err := s.r.CreateDocument(ctx, d, rows); err != nil {
		return nil, 0, err
	}
	logger.Infof(ctx, "kb: ingested doc %d %q (%d chunks)", d.DocID, d.Title, len(rows))
	return d, len(rows), nil
}

func (s *Svc) IngestURL(ctx context.Context, rawURL, title, tags string) (*entities.KBDocument, int, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, 0, apperr.Wrap(apperr.ErrInvalidInput, "bad url")
	}
	if !s.allow[strings.ToLower(u.Hostname())] {
		return nil, 0, apperr.Wrap(apperr.ErrForbidden, "domain not allowed")
	}

	text, pageTitle, err := s.fetchMainText(ctx, u.String())
	if errors.Is(err, errRedirectNotAllowed) {
		logger.Warnf(ctx, "kb: fetch %s: %v", u.Redacted(), err)
		return nil, 0, apperr.Wrap(apperr.ErrForbidden, "redirect to domain not allowed")
	}
	if err != nil {
		logger.Warnf(ctx, "kb: fetch %s: %v", u.Redacted(), err)
		return nil, 0, apperr.Wrapf(apperr.ErrUpstream, "fetch failed: %v", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, 0, apperr.Wrap(apperr.ErrInvalidInput, "no text found at url")
	}
	if strings.TrimSpace(title) == "" {
		title = pageTitle
	}
	if strings.TrimSpace(title) == "" {
		title = u.Host + u.Path
	}
	return s.Ingest(ctx, service.IngestInput{Title: title, Tags: tags, Text: text, SourceURL: u.String()})
}

// Search ranks chunks by how many distinct query terms they contain.
// Equal scores keep chunk order. Chunks matching nothing are dropped.
func (s *Svc) Search(ctx context.Context, query string, k int) ([]service.Hit, error) {
	qs := terms(query)
	if len(qs) == 0 || k <= 0 {
		return []service.Hit{}, nil
	}

	chunks, err := s.r.AllChunks(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		ch entities.KBChunk
		sc int
	}
	var list []scored
	for _, ch := range chunks {
		low := strings.ToLower(ch.Text)
		sc := 0
		for _, t := range qs {
			if strings.Contains(low, t) {
				sc++
			}
		}
		if sc > 0 {
			list = append(list, scored{ch, sc})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].sc != list[j].sc {
			return list[i].sc > list[j].sc
		}
		return list[i].ch.ChunkID < list[j].ch.ChunkID
	})
	if k < len(list) {
		list = list[:k]
	}

	ids := make([]uint, 0, len(list))
	seen := map[uint]bool{}
	for _, it := range list {
		if !seen[it.ch.DocID] {
			seen[it.ch.DocID] = true
			ids = append(ids, it.ch.DocID)
		}
	}
	meta, err := s.r.DocsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]service.Hit, 0, len(list))
	for _, it := range list {
		h := service.Hit{ChunkID: it.ch.ChunkID, DocID: it.ch.DocID, Ord: it.ch.Ord, Text: it.ch.Text, Score: it.sc}
		if d, ok := meta[it.ch.DocID]; ok {
			h.DocTitle = d.Title
			h.SourceURL = d.SourceURL
		}
		out = append(out, h)
	}
	return out, nil
}

func (s *Svc) ListDocs(ctx context.Context) ([]entities.KBDocument, error) {
	return s.r.ListDocs(ctx)
}
