package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"crochetCorner/domain"
)

type fakeInteractionRepo struct {
	byUser  map[uint][]domain.Interaction
	findErr error
	saveErr error
	saved   []domain.Interaction
}

func (f *fakeInteractionRepo) Save(_ context.Context, in *domain.Interaction) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *in)
	return nil
}

func (f *fakeInteractionRepo) FindByUser(_ context.Context, userID uint) ([]domain.Interaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.byUser[userID], nil
}

func (f *fakeInteractionRepo) FindByProductsExcludingUser(_ context.Context, productIDs []uint64, excludeUserID uint) ([]domain.Interaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	inSet := make(map[uint64]bool, len(productIDs))
	for _, pid := range productIDs {
		inSet[pid] = true
	}

	var out []domain.Interaction
	for uid, rows := range f.byUser {
		if uid == excludeUserID {
			continue
		}
		for _, in := range rows {
			if inSet[in.ProductID] {
				out = append(out, in)
			}
		}
	}
	return out, nil
}

func (f *fakeInteractionRepo) FindByUsers(_ context.Context, userIDs []uint) ([]domain.Interaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []domain.Interaction
	for _, uid := range userIDs {
		out = append(out, f.byUser[uid]...)
	}
	return out, nil
}

type fakeFeatureRepo struct {
	features []domain.ProductFeature
	err      error
}

func (f *fakeFeatureRepo) FindByProducts(_ context.Context, productIDs []uint64) ([]domain.ProductFeature, error) {
	if f.err != nil {
		return nil, f.err
	}

	inSet := make(map[uint64]bool, len(productIDs))
	for _, pid := range productIDs {
		inSet[pid] = true
	}

	var out []domain.ProductFeature
	for _, ft := range f.features {
		if inSet[ft.ProductID] {
			out = append(out, ft)
		}
	}
	return out, nil
}

func (f *fakeFeatureRepo) FindAll(_ context.Context) ([]domain.ProductFeature, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.features, nil
}

// fakeRecoRepo keeps cached rows in memory. filterExpired controls whether
// the fake behaves like the real query (dropping expired rows) or hands
// everything back so the service-side expiry guard can be exercised.
type fakeRecoRepo struct {
	rows          map[string][]domain.Recommendation
	replaceErr    error
	findErr       error
	filterExpired bool
}

func newFakeRecoRepo() *fakeRecoRepo {
	return &fakeRecoRepo{
		rows:          make(map[string][]domain.Recommendation),
		filterExpired: true,
	}
}

func cacheKey(userID uint, recommendationType string) string {
	return fmt.Sprintf("%d|%s", userID, recommendationType)
}

func (f *fakeRecoRepo) ReplaceForUser(_ context.Context, userID uint, recommendationType string, rows []domain.Recommendation) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.rows[cacheKey(userID, recommendationType)] = append([]domain.Recommendation(nil), rows...)
	return nil
}

func (f *fakeRecoRepo) FindActiveByUser(_ context.Context, userID uint, recommendationType string, now time.Time) ([]domain.Recommendation, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}

	var out []domain.Recommendation
	for _, row := range f.rows[cacheKey(userID, recommendationType)] {
		if f.filterExpired && !row.ExpiresAt.After(now) {
			continue
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	return out, nil
}

func newTestService(interactions *fakeInteractionRepo, features *fakeFeatureRepo, recos *fakeRecoRepo) *Service {
	if interactions == nil {
		interactions = &fakeInteractionRepo{byUser: map[uint][]domain.Interaction{}}
	}
	if features == nil {
		features = &fakeFeatureRepo{}
	}
	if recos == nil {
		recos = newFakeRecoRepo()
	}
	return NewService(interactions, features, recos, DefaultConfig())
}
