// Package crawl syncs a course catalog into storage. It pages through the
// catalog search results, fetches each course page and its schedule feed,
// and saves the merged course records.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/catalog"
	"golang.org/x/sync/errgroup"
)

// Defaults for a Syncer with zero-valued fields.
const (
	DefaultBaseURL     = "https://www.mcgill.ca"
	DefaultEdition     = "2022-2023"
	DefaultScheduleURL = "https://vsb.mcgill.ca/vsb/getclassdata.jsp"
	DefaultConcurrency = 10
)

// Frontier sizing for listing deduplication.
const (
	frontierExpectedListings  = 20000
	frontierFalsePositiveRate = 0.001
)

// Syncer orchestrates a catalog sync.
type Syncer struct {
	Fetcher     catalog.Fetcher
	Extractor   catalog.Extractor
	Courses     catalog.CourseService
	RateLimiter catalog.HostLimiter

	BaseURL     string
	Edition     string
	ScheduleURL string
	Concurrency int
	// MaxPages caps the number of search pages read. Zero reads all pages.
	MaxPages    int
	RetryDelays []time.Duration
	OnRetry     RetryFunc
}

// Result holds the outcome of a sync.
type Result struct {
	Pages    int
	Listings int
	Saved    int
	Failed   int
	Bytes    int
}

// ProgressEvent reports progress during a sync. For ProgressPage events,
// Completed counts the search pages read and Total the new listings found
// on the page.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Course    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressPage ProgressType = iota
	ProgressStarted
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting sync progress.
type ProgressFunc func(event ProgressEvent)

// courseResult holds the outcome of processing a single listing.
type courseResult struct {
	url    string
	course *catalog.Course
	bytes  int
	err    error
}

// Sync reads every search page, then processes the collected listings
// concurrently and saves each course. A listing page that cannot be fetched
// or parsed aborts the sync; a course that fails is counted and skipped.
// The progress callback, if provided, is called from a single goroutine.
func (s *Syncer) Sync(ctx context.Context, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	frontier := NewFrontier(frontierExpectedListings, frontierFalsePositiveRate)
	result := &Result{}

	pages, err := s.collectListings(ctx, frontier, progress)
	result.Pages = pages
	if err != nil {
		return result, err
	}

	total := frontier.Len()
	result.Listings = total
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan courseResult)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	go func() {
		for {
			listing, ok := frontier.Pop()
			if !ok || gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				resultCh <- s.processListing(gctx, listing)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Courses are saved from this goroutine only; SQLite has a single writer.
	var completed int
	for r := range resultCh {
		completed++

		if r.err == nil {
			r.err = s.Courses.CreateCourse(ctx, r.course)
		}

		if r.err != nil {
			result.Failed++
			progress(ProgressEvent{
				Type:      ProgressFailed,
				Completed: completed,
				Total:     total,
				URL:       r.url,
				Error:     r.err,
			})
			continue
		}

		result.Saved++
		result.Bytes += r.bytes
		progress(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       r.url,
			Course:    r.course.Key(),
		})
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// collectListings walks the search pages in order until one has no listing
// container or no rows, pushing every listing onto the frontier. It returns
// the number of pages read.
func (s *Syncer) collectListings(ctx context.Context, frontier *Frontier, progress ProgressFunc) (int, error) {
	for page := 0; s.MaxPages <= 0 || page < s.MaxPages; page++ {
		pageURL := s.searchURL(page)

		html, err := s.fetch(ctx, pageURL)
		if err != nil {
			return page, fmt.Errorf("search page %d: %w", page, err)
		}

		listings, ok, err := s.Extractor.ExtractCourseListings(html)
		if err != nil {
			return page, fmt.Errorf("search page %d: %w", page, err)
		}
		if !ok || len(listings) == 0 {
			return page, nil
		}

		added := 0
		for _, listing := range listings {
			if err := listing.Validate(); err != nil {
				return page, fmt.Errorf("search page %d: %w", page, err)
			}
			listing.URL = s.resolve(listing.URL)
			if frontier.Push(listing) {
				added++
			}
		}

		progress(ProgressEvent{Type: ProgressPage, Completed: page + 1, Total: added, URL: pageURL})
	}
	return s.MaxPages, nil
}

// processListing fetches and extracts one course page and the schedule of
// every term the course is offered in.
func (s *Syncer) processListing(ctx context.Context, listing catalog.CourseListing) courseResult {
	r := courseResult{url: listing.URL}

	html, err := s.fetch(ctx, listing.URL)
	if err != nil {
		r.err = err
		return r
	}
	r.bytes += len(html)

	page, err := s.Extractor.ExtractCoursePage(html)
	if err != nil {
		r.err = fmt.Errorf("%s: %w", listing.URL, err)
		return r
	}

	schedules := make([]catalog.Schedule, 0)
	for _, term := range listing.Terms {
		scheduleURL, ok := s.scheduleURL(term, page.Subject, page.Code)
		if !ok {
			continue
		}

		xml, err := s.fetch(ctx, scheduleURL)
		if err != nil {
			r.err = fmt.Errorf("schedule for %s: %w", term, err)
			return r
		}
		r.bytes += len(xml)

		blocks, err := s.Extractor.ExtractCourseSchedules(xml)
		if err != nil {
			r.err = fmt.Errorf("schedule for %s: %w", term, err)
			return r
		}
		schedules = append(schedules, blocks...)
	}

	r.course = catalog.NewCourse(listing, page, schedules)
	return r
}

// fetch rate limits by host and retries transient failures.
func (s *Syncer) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", catalog.Errorf(catalog.EINVALID, "invalid URL %q", rawURL)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return FetchWithRetry(ctx, rawURL, s.Fetcher.Fetch, delays, s.OnRetry)
}

// searchURL returns the URL of the zero-based search results page.
func (s *Syncer) searchURL(page int) string {
	edition := s.Edition
	if edition == "" {
		edition = DefaultEdition
	}
	return s.baseURL() + "/study/" + edition + "/courses/search?page=" + strconv.Itoa(page)
}

// scheduleURL returns the schedule feed URL of a course in a term. The bool
// result is false for a term the feed cannot be queried for.
func (s *Syncer) scheduleURL(term, subject, code string) (string, bool) {
	termCode, ok := catalog.TermCode(term)
	if !ok {
		return "", false
	}

	base := s.ScheduleURL
	if base == "" {
		base = DefaultScheduleURL
	}

	q := url.Values{}
	q.Set("term", termCode)
	q.Set("course_0_0", subject+"-"+code)
	return base + "?" + q.Encode(), true
}

// resolve makes a listing URL absolute against the base URL.
func (s *Syncer) resolve(ref string) string {
	base, err := url.Parse(s.baseURL() + "/")
	if err != nil {
		return ref
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ref
	}
	return u.String()
}

func (s *Syncer) baseURL() string {
	if s.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(s.BaseURL, "/")
}

func (s *Syncer) concurrency() int {
	if s.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return s.Concurrency
}
