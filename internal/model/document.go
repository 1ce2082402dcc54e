package model

// Era is the cataloguing convention of an input file.
type Era string

const (
	EraPre1970  Era = "pre1970"
	EraPost1970 Era = "post1970"
)

// UntitledTitle replaces a missing title.
const UntitledTitle = "[Sans titre]"

// Document is a bibliographic record flattened to typed columns. Rows are
// immutable once inserted, except ContributorRank set by the ordering pass.
type Document struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Title            string `gorm:"not null"`
	Description      *string
	Year             *int `gorm:"index"`
	Place            *string
	PlaceKey         *string `gorm:"index"`
	Publisher        *string
	PublisherKey     *string `gorm:"index"`
	Format           *int
	Pages            *int
	Language         *string `gorm:"size:3"`
	IsTranslation    *bool
	OriginalLanguage *string `gorm:"size:3"`
	Country          *string
	ContentType      *string
	ShelfLetter      *string
	ShelfNumber      *int
	DigitalURL       *string
	Era              Era    `gorm:"not null;index"`
	SourceFile       string `gorm:"not null"`
	SourceURL        string `gorm:"not null"`
	Byline           *string
	// authority number of the first contributor, may not exist as an identity
	PrimaryContributorID *int64 `gorm:"index"`
	ContributorRank      *int
}

func (d *Document) TableName() string {
	return "documents"
}
