package model

// Relation tells authorship from subject links.
type Relation string

const (
	// RelationContribution links a document to one of its authors, editors...
	RelationContribution Relation = "contribution"
	// RelationAbout links a document to the identity it is about.
	RelationAbout Relation = "about"
)

// RoleAuthor is the UNIMARC relator code used when a field has no $4.
const RoleAuthor = 70

// Contribution represents a link between a document and an identity.
// The same pair may appear several times with different tags or roles.
type Contribution struct {
	ID         int64    `gorm:"primaryKey;autoIncrement"`
	DocumentID int64    `gorm:"not null;index:idx_contributions_document_id"`
	IdentityID int64    `gorm:"not null;index:idx_contributions_identity_id"`
	FieldTag   string   `gorm:"size:3;not null"`
	Role       int      `gorm:"not null"`
	Relation   Relation `gorm:"size:16;not null;default:contribution"`
}

func (c *Contribution) TableName() string {
	return "contributions"
}
