// Package analytics aggregates order and content records into dashboard
// snapshots and compares snapshots across periods.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/cache"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// BestSellerLimit caps the best seller ranking.
const BestSellerLimit = 5

// Aggregator builds AnalyticsSnapshots from a DataSource.
type Aggregator struct {
	source DataSource
	cache  *cache.SnapshotCache
	now    func() time.Time
	locale string
}

type Option func(*Aggregator)

// WithCache serves repeated selections from c until its TTL expires.
func WithCache(c *cache.SnapshotCache) Option {
	return func(a *Aggregator) { a.cache = c }
}

// WithClock overrides the clock used for GeneratedAt.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithLocale sets the locale of snapshot labels.
func WithLocale(locale string) Option {
	return func(a *Aggregator) { a.locale = locale }
}

func NewAggregator(source DataSource, opts ...Option) *Aggregator {
	a := &Aggregator{source: source, now: time.Now, locale: "en"}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Aggregate returns the snapshot of sel, from cache when a fresh one exists.
func (a *Aggregator) Aggregate(ctx context.Context, sel models.TimeFilterValue) (*models.AnalyticsSnapshot, error) {
	if a.cache != nil {
		if snap, ok := a.cache.Get(a.cacheKey(sel)); ok {
			logrus.Debugf("[analytics.aggregate] cache hit key=%s", sel.Key())
			return snap, nil
		}
	}
	return a.Refresh(ctx, sel)
}

// Refresh recomputes the snapshot of sel and replaces any cached copy.
func (a *Aggregator) Refresh(ctx context.Context, sel models.TimeFilterValue) (*models.AnalyticsSnapshot, error) {
	start := time.Now()

	rng, err := timerange.ResolveLocale(sel, a.locale)
	if err != nil {
		return nil, err
	}
	keys, err := timerange.BucketKeys(sel)
	if err != nil {
		return nil, err
	}
	w := Window{Start: rng.Start, End: rng.End}

	var (
		orders  []OrderRow
		items   []OrderItemRow
		newCust int
		content models.ContentCounts
	)

	// ================================
	// Independent reads, joined before reduction
	// ================================
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := a.source.Orders(gctx, w)
		if err != nil {
			return readError("orders", err)
		}
		orders = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.source.OrderItems(gctx, w)
		if err != nil {
			return readError("order_items", err)
		}
		items = rows
		return nil
	})
	g.Go(func() error {
		n, err := a.source.NewCustomers(gctx, w)
		newCust = n
		return readError("new_customers", err)
	})
	g.Go(func() error {
		n, err := a.source.BlogPosts(gctx, w)
		content.BlogPosts = n
		return readError("blog_posts", err)
	})
	g.Go(func() error {
		n, err := a.source.ContactMessages(gctx, w)
		content.ContactMessages = n
		return readError("contact_messages", err)
	})
	g.Go(func() error {
		n, err := a.source.DesignRequests(gctx, w)
		content.DesignRequests = n
		return readError("design_requests", err)
	})
	g.Go(func() error {
		n, err := a.source.CareerApplications(gctx, w)
		content.CareerApplications = n
		return readError("career_applications", err)
	})
	if err := g.Wait(); err != nil {
		logrus.Errorf("[analytics.aggregate] ERROR key=%s err=%v", sel.Key(), err)
		return nil, err
	}

	if err := validateRows(w, orders, items, newCust, content); err != nil {
		logrus.Errorf("[analytics.aggregate] ERROR key=%s err=%v", sel.Key(), err)
		return nil, err
	}

	snap := reduce(sel, rng, keys, orders, items)
	snap.NewCustomers = newCust
	snap.Content = content
	snap.GeneratedAt = a.now().UTC()

	if a.cache != nil {
		a.cache.Set(a.cacheKey(sel), snap)
	}

	logrus.Infof("[analytics.aggregate] done key=%s orders=%d revenue=%.2f best_sellers=%d took=%s",
		sel.Key(), snap.Orders.Total, snap.Revenue, len(snap.BestSellers), time.Since(start))
	return snap, nil
}

// Compare aggregates primary and comparison independently and diffs them.
func (a *Aggregator) Compare(ctx context.Context, primary, comparison models.TimeFilterValue) (*models.AnalyticsComparison, error) {
	var cur, base *models.AnalyticsSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		snap, err := a.Aggregate(gctx, primary)
		cur = snap
		return err
	})
	g.Go(func() error {
		snap, err := a.Aggregate(gctx, comparison)
		base = snap
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	cmp := Compare(cur, base)
	return &cmp, nil
}

func (a *Aggregator) cacheKey(sel models.TimeFilterValue) string {
	return a.locale + "|" + sel.Key()
}

func validateRows(w Window, orders []OrderRow, items []OrderItemRow, newCust int, content models.ContentCounts) error {
	for _, o := range orders {
		if o.TotalAmount < 0 {
			return rowError("orders", "order %s has negative total %.2f", o.ID, o.TotalAmount)
		}
		if o.Status == "" {
			return rowError("orders", "order %s has no status", o.ID)
		}
		if !w.contains(o.CreatedAt) {
			return rowError("orders", "order %s created_at %s outside range", o.ID, o.CreatedAt.Format(time.RFC3339))
		}
	}
	for _, it := range items {
		if it.ProductID == "" {
			return rowError("order_items", "item of order %s has no product id", it.OrderID)
		}
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return rowError("order_items", "item %s/%s has negative quantity or price", it.OrderID, it.ProductID)
		}
		if !w.contains(it.CreatedAt) {
			return rowError("order_items", "item %s/%s created_at %s outside range", it.OrderID, it.ProductID, it.CreatedAt.Format(time.RFC3339))
		}
	}
	counts := map[string]int{
		"new_customers":       newCust,
		"blog_posts":          content.BlogPosts,
		"contact_messages":    content.ContactMessages,
		"design_requests":     content.DesignRequests,
		"career_applications": content.CareerApplications,
	}
	for read, n := range counts {
		if n < 0 {
			return rowError(read, "negative count %d", n)
		}
	}
	return nil
}

func reduce(sel models.TimeFilterValue, rng timerange.Range, keys []string, orders []OrderRow, items []OrderItemRow) *models.AnalyticsSnapshot {
	// Dense series: every bucket exists before any order is placed in it.
	index := make(map[string]int, len(keys))
	trend := make([]models.TimeSeriesPoint, len(keys))
	for i, k := range keys {
		index[k] = i
		trend[i] = models.TimeSeriesPoint{Bucket: k}
	}

	breakdown := models.OrderBreakdown{ByStatus: make(map[string]int)}
	unclassified := map[string]int{}
	for _, o := range orders {
		breakdown.Total++
		breakdown.ByStatus[o.Status]++
		switch ClassifyStatus(o.Status) {
		case StatusCompleted:
			breakdown.Completed++
		case StatusProcessing:
			breakdown.Processing++
		case StatusCancelled:
			breakdown.Cancelled++
		default:
			unclassified[o.Status]++
		}

		i := index[timerange.BucketFor(sel, o.CreatedAt)]
		trend[i].Orders++
		trend[i].Revenue += o.TotalAmount
	}
	for status, n := range unclassified {
		logrus.Warnf("[analytics.aggregate] status %q has no classification (%d orders)", status, n)
	}

	// Revenue is summed bucket by bucket so that the trend adds up to it exactly.
	var revenue float64
	for _, p := range trend {
		revenue += p.Revenue
	}
	breakdown.Trend = trend

	aov := 0.0
	if breakdown.Total > 0 {
		aov = revenue / float64(breakdown.Total)
	}

	return &models.AnalyticsSnapshot{
		Range:             sel,
		Start:             rng.StartISO(),
		End:               rng.EndISO(),
		Label:             rng.Label,
		Orders:            breakdown,
		Revenue:           revenue,
		AverageOrderValue: aov,
		BestSellers:       RankBestSellers(items, BestSellerLimit),
	}
}

// RankBestSellers groups items by product, ranks them by quantity (ties keep
// first-seen order) and keeps the top limit.
func RankBestSellers(items []OrderItemRow, limit int) []models.BestSellerRecord {
	pos := make(map[string]int)
	ranked := make([]models.BestSellerRecord, 0)
	for _, it := range items {
		i, ok := pos[it.ProductID]
		if !ok {
			i = len(ranked)
			pos[it.ProductID] = i
			ranked = append(ranked, models.BestSellerRecord{
				ProductID: it.ProductID,
				Name:      it.ProductName,
			})
		}
		rec := &ranked[i]
		if rec.Name == "" {
			rec.Name = it.ProductName
		}
		if rec.Translations == nil && len(it.Translations) > 0 {
			rec.Translations = it.Translations
		}
		rec.Quantity += it.Quantity
		rec.Revenue += it.UnitPrice * float64(it.Quantity)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
