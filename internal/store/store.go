package store

import (
	"context"

	"github.com/emrgen/cataviz/internal/model"
)

type Store interface {
	IdentityStore
	DocumentStore
	ContributionStore
	// Stats counts the rows of every table.
	Stats(ctx context.Context) (*Stats, error)
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type IdentityStore interface {
	// CreateIdentity inserts an identity unless one with the same number
	// exists. It reports whether a row was written.
	CreateIdentity(ctx context.Context, identity *model.Identity) (bool, error)
	// FindIdentitiesByNumber retrieves the identities with the authority
	// number, at most one under the primary key.
	FindIdentitiesByNumber(ctx context.Context, number int64) ([]*model.Identity, error)
}

type DocumentStore interface {
	// CreateDocument inserts a document and sets its generated ID.
	CreateDocument(ctx context.Context, doc *model.Document) error
	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id int64) (*model.Document, error)
	// OrderDocuments ranks the documents of every primary contributor by
	// year, undated last. It returns the number of ranked documents.
	OrderDocuments(ctx context.Context) (int64, error)
}

type ContributionStore interface {
	// CreateContributions inserts links between documents and identities.
	CreateContributions(ctx context.Context, contributions []*model.Contribution) error
	// ListContributions retrieves the links of a document.
	ListContributions(ctx context.Context, documentID int64) ([]*model.Contribution, error)
}

// Stats holds row counts.
type Stats struct {
	Identities      int64               `yaml:"identities"`
	Persons         int64               `yaml:"persons"`
	CorporateBodies int64               `yaml:"corporate_bodies"`
	Documents       int64               `yaml:"documents"`
	Contributions   int64               `yaml:"contributions"`
	Eras            map[model.Era]int64 `yaml:"documents_by_era"`
}
