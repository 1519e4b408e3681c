package repos

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brunakoch/auto-estetica-agenda/models"
	"github.com/brunakoch/auto-estetica-agenda/store"
)

// QuoteRepo manages quotes and their line items. Cached totals are
// recomputed on every write and again on every read, so a drifted stored
// value can never reach display or financial logic.
type QuoteRepo struct {
	store *store.Store
}

func NewQuoteRepo(s *store.Store) *QuoteRepo {
	return &QuoteRepo{store: s}
}

func (r *QuoteRepo) All(ctx context.Context) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.store.All(ctx, &quotes); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteRepo) Get(ctx context.Context, id string) (models.Quote, error) {
	var quote models.Quote
	if err := r.store.Get(ctx, &quote, id); err != nil {
		return models.Quote{}, err
	}
	if err := r.store.FindBy(ctx, &quote.Items, "quote_id", id); err != nil {
		return models.Quote{}, err
	}
	quote.Recalculate()
	return quote, nil
}

func (r *QuoteRepo) ByCustomer(ctx context.Context, customerID string) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.store.FindBy(ctx, &quotes, "customer_id", customerID); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteRepo) ByStatus(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	var quotes []models.Quote
	if err := r.store.FindBy(ctx, &quotes, "status", status); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

// Add creates the quote and its items in one transaction, defaulting the
// status to pending and recomputing the cached totals.
func (r *QuoteRepo) Add(ctx context.Context, data models.Quote) (models.Quote, error) {
	if data.Status == "" {
		data.Status = models.QuotePending
	}
	if !data.Status.Valid() {
		return models.Quote{}, fmt.Errorf("unknown quote status %q", data.Status)
	}
	data.ID = uuid.NewString()
	for i := range data.Items {
		data.Items[i].ID = uuid.NewString()
		data.Items[i].QuoteID = data.ID
	}
	data.Recalculate()

	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Insert(ctx, quoteRow(data)); err != nil {
			return err
		}
		for i := range data.Items {
			if err := tx.Insert(ctx, &data.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Quote{}, fmt.Errorf("add quote: %w", err)
	}
	return data, nil
}

// Update replaces the quote row and its whole item set, recomputing totals
// from the items passed in.
func (r *QuoteRepo) Update(ctx context.Context, quote models.Quote) (models.Quote, error) {
	if !quote.Status.Valid() {
		return models.Quote{}, fmt.Errorf("unknown quote status %q", quote.Status)
	}
	for i := range quote.Items {
		if quote.Items[i].ID == "" {
			quote.Items[i].ID = uuid.NewString()
		}
		quote.Items[i].QuoteID = quote.ID
	}
	quote.Recalculate()

	err := r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Put(ctx, quoteRow(quote)); err != nil {
			return err
		}
		if _, err := tx.DeleteBy(ctx, &models.QuoteItem{}, "quote_id", quote.ID); err != nil {
			return err
		}
		for i := range quote.Items {
			if err := tx.Insert(ctx, &quote.Items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	return quote, nil
}

// UpdateStatus moves a quote through its lifecycle without touching items.
func (r *QuoteRepo) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (models.Quote, error) {
	if !status.Valid() {
		return models.Quote{}, fmt.Errorf("unknown quote status %q", status)
	}
	quote, err := r.Get(ctx, id)
	if err != nil {
		return models.Quote{}, err
	}
	quote.Status = status
	if err := r.store.Put(ctx, quoteRow(quote)); err != nil {
		return models.Quote{}, fmt.Errorf("update quote status: %w", err)
	}
	return quote, nil
}

// Delete removes the quote and its items in one transaction. An
// appointment that originated from the quote is left in place.
func (r *QuoteRepo) Delete(ctx context.Context, id string) error {
	return r.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.Delete(ctx, &models.Quote{}, id); err != nil {
			return err
		}
		_, err := tx.DeleteBy(ctx, &models.QuoteItem{}, "quote_id", id)
		return err
	})
}

func (r *QuoteRepo) attachItems(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	var items []models.QuoteItem
	if err := r.store.All(ctx, &items); err != nil {
		return err
	}
	byQuote := make(map[string][]models.QuoteItem, len(quotes))
	for _, item := range items {
		byQuote[item.QuoteID] = append(byQuote[item.QuoteID], item)
	}
	for i := range quotes {
		quotes[i].Items = byQuote[quotes[i].ID]
		quotes[i].Recalculate()
	}
	return nil
}

// quoteRow strips the attached items so only the quote columns hit the
// quotes table; items are written to their own table.
func quoteRow(q models.Quote) *models.Quote {
	q.Items = nil
	return &q
}
