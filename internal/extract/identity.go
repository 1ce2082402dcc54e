package extract

import (
	"errors"
	"strings"

	"github.com/emrgen/cataviz/internal/dates"
	"github.com/emrgen/cataviz/internal/gender"
	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
	"github.com/emrgen/cataviz/internal/normalize"
)

var (
	// ErrNoControlID is returned for a record without a usable 003 field.
	ErrNoControlID = errors.New("record has no control identifier")
	// ErrNoName is returned for an authority record without a heading name.
	ErrNoName = errors.New("authority record has no name")
	// ErrNotIdentity is returned for authority records which are neither a
	// person nor a corporate body (works, places, subjects).
	ErrNotIdentity = errors.New("authority record is not a person or corporate body")
)

// IdentityExtractor builds persons and corporate bodies from authority
// records or from name fields embedded in documents.
type IdentityExtractor struct {
	genders *gender.Resolver
}

// NewIdentityExtractor creates an extractor resolving genders with genders.
func NewIdentityExtractor(genders *gender.Resolver) *IdentityExtractor {
	return &IdentityExtractor{genders: genders}
}

type personName struct {
	display string
	given   *string
	role    *string
	key     string
}

// namesOfPerson assembles a person heading: $a name, $b given names (search
// key only), $d qualifier such as a regnal number, $c role.
func namesOfPerson(f *marc.Field) (personName, bool) {
	name, ok := subfield(f, 'a')
	if !ok {
		return personName{}, false
	}
	res := personName{display: name}
	deform := name
	if given, ok := subfield(f, 'b'); ok {
		res.given = &given
		deform += ", " + given
	}
	if qualifier, ok := subfield(f, 'd'); ok {
		res.display += " " + qualifier
		deform += " " + qualifier
	}
	res.role = optional(subfield(f, 'c'))
	res.key = normalize.Key(deform)
	return res, true
}

// namesOfCorporateBody assembles a corporate heading, $b subdivisions are part
// of the displayed name.
func namesOfCorporateBody(f *marc.Field) (personName, bool) {
	name, ok := subfield(f, 'a')
	if !ok {
		return personName{}, false
	}
	if sub, ok := subfield(f, 'b'); ok {
		name += ", " + sub
	}
	if qualifier, ok := subfield(f, 'd'); ok {
		name += " " + qualifier
	}
	return personName{
		display: name,
		role:    optional(subfield(f, 'c')),
		key:     normalize.Key(name),
	}, true
}

// DisplayName returns the name shown for a person or corporate name field.
func DisplayName(f *marc.Field, kind model.IdentityKind) (string, bool) {
	var n personName
	var ok bool
	if kind == model.KindCorporateBody {
		n, ok = namesOfCorporateBody(f)
	} else {
		n, ok = namesOfPerson(f)
	}
	return n.display, ok
}

func (e *IdentityExtractor) person(f *marc.Field, life dates.Lifespan, sexCode string) (*model.Identity, bool) {
	n, ok := namesOfPerson(f)
	if !ok {
		return nil, false
	}
	id := &model.Identity{
		Kind:      model.KindPerson,
		Name:      n.display,
		Given:     n.given,
		Role:      n.role,
		BirthYear: life.Birth,
		DeathYear: life.Death,
		Age:       life.Age,
		SearchKey: n.key,
	}
	given := ""
	if n.given != nil {
		given = *n.given
	}
	if g := e.genders.Resolve(sexCode, given); g != gender.Unknown {
		id.Gender = &g
	}
	return id, true
}

// Person builds a person from a name field of a document (700-703, 600).
// The date line comes from $f. A field without $a cannot be used.
func (e *IdentityExtractor) Person(f *marc.Field) (*model.Identity, bool) {
	dateline, _ := f.Subfield('f')
	return e.person(f, dates.ResolveDateline(dateline), "")
}

// CorporateBody builds a corporate body from a name field (710-713, 601).
func (e *IdentityExtractor) CorporateBody(f *marc.Field) (*model.Identity, bool) {
	n, ok := namesOfCorporateBody(f)
	if !ok {
		return nil, false
	}
	return &model.Identity{
		Kind:      model.KindCorporateBody,
		Name:      n.display,
		Role:      n.role,
		SearchKey: n.key,
	}, true
}

// Inline builds the identity referenced by a document name field. It needs
// both the authority number ($3) and a name ($a).
func (e *IdentityExtractor) Inline(f *marc.Field, kind model.IdentityKind) (*model.Identity, bool) {
	ref, ok := f.Subfield('3')
	if !ok {
		return nil, false
	}
	number, ok := marc.AuthorityNumber(ref)
	if !ok {
		return nil, false
	}

	var id *model.Identity
	if kind == model.KindCorporateBody {
		id, ok = e.CorporateBody(f)
	} else {
		id, ok = e.Person(f)
	}
	if !ok {
		return nil, false
	}
	id.ID = number
	return id, true
}

// Authority builds an identity from an authority record: 200 for persons,
// 210 for corporate bodies.
func (e *IdentityExtractor) Authority(rec *marc.Record, file string) (*model.Identity, error) {
	url, ok := rec.ControlValue("003")
	if !ok {
		return nil, ErrNoControlID
	}
	url = strings.TrimSpace(url)
	number, ok := marc.ControlNumber(url)
	if !ok {
		return nil, ErrNoControlID
	}

	var id *model.Identity
	if f, ok := rec.Field("200"); ok {
		dateline, _ := f.Subfield('f')
		coded, hasCoded := rec.Subfield("103", 'a')
		sexCode, _ := rec.Subfield("120", 'a')
		id, ok = e.person(f, dates.Resolve(dateline, coded, hasCoded), sexCode)
		if !ok {
			return nil, ErrNoName
		}
		if bio, ok := rec.Field("301"); ok {
			id.BirthPlace = optional(subfield(bio, 'a'))
			id.DeathPlace = optional(subfield(bio, 'b'))
		}
	} else if f, ok := rec.Field("210"); ok {
		id, ok = e.CorporateBody(f)
		if !ok {
			return nil, ErrNoName
		}
	} else {
		return nil, ErrNotIdentity
	}

	id.ID = number
	if note, ok := rec.Field("300"); ok {
		id.Note = optional(subfield(note, 'a'))
	}
	id.SourceFile = &file
	id.SourceURL = &url
	return id, nil
}
