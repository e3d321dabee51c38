package memory

import (
	"context"
	"sort"

	"procuraduria/internal/domain/legajos"
)

type legajosRepo struct {
	store *Store
}

func NewLegajosRepo(store *Store) legajos.Repository {
	return &legajosRepo{store: store}
}

func (r *legajosRepo) Search(ctx context.Context, filter legajos.SearchFilter, opts legajos.SearchOptions) ([]legajos.Summary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	f := filter.Normalize()

	limit := opts.Limit
	if limit <= 0 || limit > legajos.MaxResults {
		limit = legajos.MaxResults
	}

	matched := make([]map[string]string, 0)
	for _, row := range r.store.legajos {
		// Exactos (texto contra texto)
		if f.Number != "" && row[legajos.ColNumber] != f.Number {
			continue
		}
		if f.Year != "" && row[legajos.ColYear] != f.Year {
			continue
		}

		// Substring sin mayúsculas (ILIKE)
		if f.Docket != "" && !containsFold(row[legajos.ColDocket], f.Docket) {
			continue
		}
		if f.Attorney != "" && !containsFold(row[legajos.ColAttorney], f.Attorney) {
			continue
		}
		if f.Status != "" && !containsFold(row[legajos.ColStatus], f.Status) {
			continue
		}

		matched = append(matched, row)
	}

	// Orden: año desc, número desc
	sort.SliceStable(matched, func(i, j int) bool {
		if c := compareNatural(matched[i][legajos.ColYear], matched[j][legajos.ColYear]); c != 0 {
			return c > 0
		}
		return compareNatural(matched[i][legajos.ColNumber], matched[j][legajos.ColNumber]) > 0
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}

	out := make([]legajos.Summary, 0, len(matched))
	for _, row := range matched {
		s := legajos.Summary{
			Key:           legajos.Key{Number: row[legajos.ColNumber], Year: row[legajos.ColYear]},
			Docket:        row[legajos.ColDocket],
			Attorney:      row[legajos.ColAttorney],
			Status:        row[legajos.ColStatus],
			Matter:        row[legajos.ColMatter],
			Plaintiff:     row[legajos.ColPlaintiff],
			StatusSummary: row[legajos.ColStatusSummary],
		}
		if opts.WithLatest {
			s.Latest = &legajos.LatestMovement{}
			if movs := r.store.movementsOf(s.Number, s.Year); len(movs) > 0 {
				s.Latest.Date = movs[0].Date
				s.Latest.Type = movs[0].Type
				s.Latest.Detail = movs[0].Detail
			}
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *legajosRepo) GetByKey(ctx context.Context, key legajos.Key) (legajos.Legajo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, row := range r.store.legajos {
		if row[legajos.ColNumber] != key.Number || row[legajos.ColYear] != key.Year {
			continue
		}
		cp := make(map[string]string, len(row))
		for k, v := range row {
			cp[k] = v
		}
		return legajos.FromFields(cp), nil
	}
	return legajos.Legajo{}, legajos.ErrNotFound
}
