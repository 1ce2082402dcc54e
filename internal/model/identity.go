package model

import "github.com/emrgen/cataviz/internal/gender"

// IdentityKind tells persons from corporate bodies. Both share the authority
// number space.
type IdentityKind int

const (
	KindPerson        IdentityKind = 1
	KindCorporateBody IdentityKind = 2
)

func (k IdentityKind) String() string {
	if k == KindCorporateBody {
		return "corporate body"
	}
	return "person"
}

// Identity is a person or a corporate body, keyed by its authority number.
// Rows are written once, the first encounter wins.
type Identity struct {
	ID         int64        `gorm:"primaryKey;autoIncrement:false"`
	Kind       IdentityKind `gorm:"not null;index"`
	Name       string       `gorm:"not null"`
	Given      *string
	Role       *string
	Gender     *gender.Gender
	BirthYear  *int
	DeathYear  *int
	Age        *int
	BirthPlace *string
	DeathPlace *string
	Note       *string
	SearchKey  string `gorm:"not null;index"`
	// only set for identities loaded from an authority file
	SourceFile *string
	SourceURL  *string
}

func (i *Identity) TableName() string {
	return "identities"
}

// IsPerson reports whether the identity describes a person.
func (i *Identity) IsPerson() bool {
	return i.Kind == KindPerson
}
