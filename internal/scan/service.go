package scan

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/juliusphilipponce/menu-miner/internal/imagesearch"
	"github.com/juliusphilipponce/menu-miner/internal/llm"
	"github.com/juliusphilipponce/menu-miner/internal/menu"
	"github.com/juliusphilipponce/menu-miner/internal/ratelimit"
	"github.com/juliusphilipponce/menu-miner/internal/security"
)

// The limiter key is deliberately global: this is a single-allow-listed-user
// app, so the quota throttles the whole deployment, not individual actors.
const rateLimitKey = "analyze-request"

// Restaurant name bounds after sanitization.
const (
	minRestaurantNameLen = 2
	maxRestaurantNameLen = 200
)

var (
	ErrMissingInput          = errors.New("please upload an image and enter the restaurant name")
	ErrInvalidRestaurantName = errors.New("please enter a valid restaurant name (2-200 characters)")
	ErrNoValidItems          = errors.New("no valid menu items were extracted. Please try a different image")
)

// ErrRateLimited is wrapped with the remaining-quota count when returned.
var ErrRateLimited = errors.New("rate limit exceeded")

// Request is one scan submission: menu photos plus context for the image
// search.
type Request struct {
	RestaurantName string
	NumImages      int
	Images         []llm.Image
}

// Service drives the extract -> validate -> enrich -> validate pipeline and
// records progress on a scan session.
type Service struct {
	extractor llm.Extractor
	searcher  imagesearch.Searcher
	limiter   *ratelimit.Limiter
	store     *Store
}

func NewService(extractor llm.Extractor, searcher imagesearch.Searcher, limiter *ratelimit.Limiter, store *Store) *Service {
	return &Service{
		extractor: extractor,
		searcher:  searcher,
		limiter:   limiter,
		store:     store,
	}
}

func (s *Service) Store() *Store {
	return s.store
}

// Start validates a request without touching any external service. On
// success it registers a pending session; the caller then runs the pipeline
// with Run.
func (s *Service) Start(req Request) (Session, error) {
	if len(req.Images) == 0 || strings.TrimSpace(req.RestaurantName) == "" {
		return Session{}, ErrMissingInput
	}

	files := make([]security.FileInfo, 0, len(req.Images))
	for _, img := range req.Images {
		files = append(files, security.FileInfo{
			Name:     img.Name,
			Size:     int64(len(img.Data)),
			MimeType: img.MimeType,
		})
	}
	if err := security.ValidateImageFiles(files); err != nil {
		return Session{}, err
	}

	if !s.limiter.Allowed(rateLimitKey) {
		remaining := s.limiter.Remaining(rateLimitKey)
		return Session{}, fmt.Errorf(
			"%w: please wait before making another request (%d requests remaining)",
			ErrRateLimited, remaining,
		)
	}

	name := security.SanitizeText(req.RestaurantName)
	if len(name) < minRestaurantNameLen || len(name) > maxRestaurantNameLen {
		return Session{}, ErrInvalidRestaurantName
	}

	return s.store.Create(), nil
}

// Run executes the pipeline for an already-validated request and publishes
// the outcome on the session. Extraction failure is fatal; enrichment
// failures are isolated per item inside EnrichAll.
func (s *Service) Run(ctx context.Context, sessionID string, req Request) {
	restaurant := security.SanitizeText(req.RestaurantName)
	numImages := imagesearch.ClampImageCount(req.NumImages)

	s.store.SetStatus(sessionID, StatusExtracting)

	extracted, err := s.extractAll(ctx, req.Images)
	if err != nil {
		log.Printf("scan %s: extraction failed: %v", sessionID, err)
		s.store.Fail(sessionID, "Analysis failed: "+err.Error())
		return
	}

	validated := menu.FilterAndSanitize(extracted)
	if len(validated) == 0 {
		// Stop before enrichment: no reason to spend search quota.
		s.store.Fail(sessionID, ErrNoValidItems.Error())
		return
	}

	s.store.SetStatus(sessionID, StatusEnriching)

	enriched, err := imagesearch.EnrichAll(ctx, s.searcher, validated, restaurant, numImages)
	if err != nil {
		log.Printf("scan %s: enrichment rejected: %v", sessionID, err)
		s.store.Fail(sessionID, "Analysis failed: "+err.Error())
		return
	}

	// Second validate+sanitize pass: the enrichment response is as
	// untrusted as the extraction one.
	final := menu.FilterAndSanitize(enriched)

	s.store.Finish(sessionID, final)
}

// extractAll runs extraction once per uploaded image. Output order follows
// upload order regardless of completion order; any failure aborts the scan.
func (s *Service) extractAll(ctx context.Context, images []llm.Image) ([]menu.Item, error) {
	results := make([][]menu.Item, len(images))

	g, ctx := errgroup.WithContext(ctx)
	for i := range images {
		i := i
		g.Go(func() error {
			items, err := s.extractor.ExtractMenu(ctx, images[i])
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []menu.Item
	for _, items := range results {
		all = append(all, items...)
	}
	return all, nil
}
