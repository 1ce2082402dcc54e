package store

import (
	"context"
	"testing"

	"github.com/emrgen/cataviz/internal/model"
	"github.com/emrgen/cataviz/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func int64p(v int64) *int64 { return &v }

func TestGormStore_CreateIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(tester.Setup(t))

	inserted, err := s.CreateIdentity(ctx, &model.Identity{
		ID:        11928016,
		Kind:      model.KindPerson,
		Name:      "Voltaire",
		BirthYear: intp(1694),
		SearchKey: "voltaire",
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = s.CreateIdentity(ctx, &model.Identity{
		ID:        11928016,
		Kind:      model.KindPerson,
		Name:      "Arouet",
		SearchKey: "arouet",
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	found, err := s.FindIdentitiesByNumber(ctx, 11928016)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Voltaire", found[0].Name)
	assert.Equal(t, 1694, *found[0].BirthYear)

	found, err = s.FindIdentitiesByNumber(ctx, 12345678)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestGormStore_Documents(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(tester.Setup(t))

	first := &model.Document{Title: "Candide", Era: model.EraPre1970, SourceFile: "f"}
	second := &model.Document{Title: "Zadig", Era: model.EraPre1970, SourceFile: "f"}
	require.NoError(t, s.CreateDocument(ctx, first))
	require.NoError(t, s.CreateDocument(ctx, second))
	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	err := s.CreateContributions(ctx, []*model.Contribution{
		{DocumentID: first.ID, IdentityID: 11928016, FieldTag: "700", Role: 70, Relation: model.RelationContribution},
		{DocumentID: first.ID, IdentityID: 11928016, FieldTag: "702", Role: 340, Relation: model.RelationContribution},
		{DocumentID: second.ID, IdentityID: 11928016, FieldTag: "600", Role: 70, Relation: model.RelationAbout},
	})
	require.NoError(t, err)
	require.NoError(t, s.CreateContributions(ctx, nil))

	links, err := s.ListContributions(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "700", links[0].FieldTag)
	assert.Equal(t, 340, links[1].Role)

	doc, err := s.GetDocument(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zadig", doc.Title)
}

func TestGormStore_OrderDocuments(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(tester.Setup(t))

	docs := []*model.Document{
		{Title: "undated", PrimaryContributorID: int64p(1)},
		{Title: "late", Year: intp(1760), PrimaryContributorID: int64p(1)},
		{Title: "early", Year: intp(1730), PrimaryContributorID: int64p(1)},
		{Title: "other", Year: intp(1800), PrimaryContributorID: int64p(2)},
		{Title: "anonymous", Year: intp(1700)},
	}
	for _, doc := range docs {
		doc.Era = model.EraPost1970
		require.NoError(t, s.CreateDocument(ctx, doc))
	}

	var ranked int64
	err := s.Transaction(ctx, func(tx Store) error {
		var err error
		ranked, err = tx.OrderDocuments(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), ranked)

	want := map[string]*int{
		"early":     intp(1),
		"late":      intp(2),
		"undated":   intp(3),
		"other":     intp(1),
		"anonymous": nil,
	}
	for _, doc := range docs {
		got, err := s.GetDocument(ctx, doc.ID)
		require.NoError(t, err)
		assert.Equal(t, want[doc.Title], got.ContributorRank, doc.Title)
	}
}

func TestGormStore_Stats(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(tester.Setup(t))

	_, err := s.CreateIdentity(ctx, &model.Identity{ID: 1, Kind: model.KindPerson, Name: "A", SearchKey: "a"})
	require.NoError(t, err)
	_, err = s.CreateIdentity(ctx, &model.Identity{ID: 2, Kind: model.KindCorporateBody, Name: "B", SearchKey: "b"})
	require.NoError(t, err)
	require.NoError(t, s.CreateDocument(ctx, &model.Document{Title: "x", Era: model.EraPre1970}))
	require.NoError(t, s.CreateDocument(ctx, &model.Document{Title: "y", Era: model.EraPost1970}))
	require.NoError(t, s.CreateDocument(ctx, &model.Document{Title: "z", Era: model.EraPost1970}))

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Identities)
	assert.Equal(t, int64(1), stats.Persons)
	assert.Equal(t, int64(1), stats.CorporateBodies)
	assert.Equal(t, int64(3), stats.Documents)
	assert.Equal(t, int64(0), stats.Contributions)
	assert.Equal(t, map[model.Era]int64{model.EraPre1970: 1, model.EraPost1970: 2}, stats.Eras)
}

func TestGormStore_TransactionRollback(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(tester.Setup(t))

	err := s.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateDocument(ctx, &model.Document{Title: "lost", Era: model.EraPre1970}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Documents)
}
