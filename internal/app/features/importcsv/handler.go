// internal/app/features/importcsv/handler.go
package importcsv

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/iglesiacentral/gruposhub/internal/app/features/importcsv/csvutil"
	categorystore "github.com/iglesiacentral/gruposhub/internal/app/store/categories"
	districtstore "github.com/iglesiacentral/gruposhub/internal/app/store/districts"
	groupstore "github.com/iglesiacentral/gruposhub/internal/app/store/groups"
	seasonstore "github.com/iglesiacentral/gruposhub/internal/app/store/seasons"
	"github.com/iglesiacentral/gruposhub/internal/app/system/normalize"
)

// Handler provides the admin bulk-import endpoints: validate, confirm
// and the downloadable template.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// loadSnapshot fetches the reference data a validation pass runs against.
// It is fetched once per request so every row sees the same state.
func (h *Handler) loadSnapshot(ctx context.Context) (csvutil.Snapshot, error) {
	snap := csvutil.Snapshot{
		Categories: map[string]primitive.ObjectID{},
		Districts:  map[string]primitive.ObjectID{},
		Seasons:    map[string]primitive.ObjectID{},
	}

	cats, err := categorystore.New(h.DB).ListActive(ctx)
	if err != nil {
		return snap, err
	}
	for _, c := range cats {
		snap.Categories[normalize.Fold(c.Name)] = c.ID
	}

	dists, err := districtstore.New(h.DB).ListAll(ctx)
	if err != nil {
		return snap, err
	}
	for _, d := range dists {
		snap.Districts[normalize.Fold(d.Name)] = d.ID
	}

	seasons, err := seasonstore.New(h.DB, h.Log).ListAll(ctx)
	if err != nil {
		return snap, err
	}
	for _, s := range seasons {
		snap.Seasons[normalize.Fold(s.Name)] = s.ID
	}

	snap.GroupNames, err = groupstore.New(h.DB).NamesCI(ctx)
	if err != nil {
		return snap, err
	}
	return snap, nil
}
