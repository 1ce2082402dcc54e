package store

import (
	"context"

	"github.com/emrgen/cataviz/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

// DB returns the underlying connection.
func (g *GormStore) DB() *gorm.DB {
	return g.db
}

func (g *GormStore) CreateIdentity(ctx context.Context, identity *model.Identity) (bool, error) {
	res := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(identity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (g *GormStore) FindIdentitiesByNumber(ctx context.Context, number int64) ([]*model.Identity, error) {
	var identities []*model.Identity
	err := g.db.WithContext(ctx).Where("id = ?", number).Find(&identities).Error
	return identities, err
}

func (g *GormStore) CreateDocument(ctx context.Context, doc *model.Document) error {
	return g.db.WithContext(ctx).Create(doc).Error
}

func (g *GormStore) GetDocument(ctx context.Context, id int64) (*model.Document, error) {
	var doc model.Document
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (g *GormStore) OrderDocuments(ctx context.Context) (int64, error) {
	var rows []struct {
		ID                   int64
		PrimaryContributorID int64
	}
	err := g.db.WithContext(ctx).Model(&model.Document{}).
		Select("id, primary_contributor_id").
		Where("primary_contributor_id IS NOT NULL").
		Order("primary_contributor_id, year IS NULL, year, id").
		Scan(&rows).Error
	if err != nil {
		return 0, err
	}

	last := int64(-1)
	rank := 0
	for _, row := range rows {
		if row.PrimaryContributorID != last {
			last = row.PrimaryContributorID
			rank = 0
		}
		rank++
		err := g.db.WithContext(ctx).Model(&model.Document{}).
			Where("id = ?", row.ID).
			Update("contributor_rank", rank).Error
		if err != nil {
			return 0, err
		}
	}
	logrus.Debugf("ranked %d documents", len(rows))

	return int64(len(rows)), nil
}

func (g *GormStore) CreateContributions(ctx context.Context, contributions []*model.Contribution) error {
	if len(contributions) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Create(contributions).Error
}

func (g *GormStore) ListContributions(ctx context.Context, documentID int64) ([]*model.Contribution, error) {
	var contributions []*model.Contribution
	err := g.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("id").
		Find(&contributions).Error
	return contributions, err
}

func (g *GormStore) Stats(ctx context.Context) (*Stats, error) {
	db := g.db.WithContext(ctx)
	stats := &Stats{Eras: make(map[model.Era]int64)}

	counts := []struct {
		dest  *int64
		model any
		where []any
	}{
		{&stats.Identities, &model.Identity{}, nil},
		{&stats.Persons, &model.Identity{}, []any{"kind = ?", model.KindPerson}},
		{&stats.CorporateBodies, &model.Identity{}, []any{"kind = ?", model.KindCorporateBody}},
		{&stats.Documents, &model.Document{}, nil},
		{&stats.Contributions, &model.Contribution{}, nil},
	}
	for _, c := range counts {
		q := db.Model(c.model)
		if c.where != nil {
			q = q.Where(c.where[0], c.where[1:]...)
		}
		if err := q.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	var eras []struct {
		Era   model.Era
		Count int64
	}
	err := db.Model(&model.Document{}).
		Select("era, count(*) as count").
		Group("era").
		Scan(&eras).Error
	if err != nil {
		return nil, err
	}
	for _, e := range eras {
		stats.Eras[e.Era] = e.Count
	}

	return stats, nil
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
