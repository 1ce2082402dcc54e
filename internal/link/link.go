// Package link connects documents to the identities named in their
// contributor and subject fields.
package link

import (
	"context"
	"strconv"
	"strings"

	"github.com/emrgen/cataviz/internal/cache"
	"github.com/emrgen/cataviz/internal/extract"
	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
	"github.com/emrgen/cataviz/internal/store"
	"github.com/sirupsen/logrus"
)

// relation of every linkable tag
var tags = func() map[string]model.Relation {
	m := make(map[string]model.Relation)
	for _, tag := range append(extract.PersonTags, extract.CorporateTags...) {
		m[tag] = model.RelationContribution
	}
	for _, tag := range append(extract.PersonSubjectTags, extract.CorporateSubjectTags...) {
		m[tag] = model.RelationAbout
	}
	return m
}()

// Resolver maps the authority numbers of a document record to stored
// identities.
type Resolver struct {
	identities store.IdentityStore
	cache      cache.IdentityCache
}

// NewResolver creates a resolver looking identities up in identities, hits
// are memoized in c.
func NewResolver(identities store.IdentityStore, c cache.IdentityCache) *Resolver {
	return &Resolver{identities: identities, cache: c}
}

// Resolve returns the contributions of the document, one per field whose
// authority number resolves to exactly one identity.
func (r *Resolver) Resolve(ctx context.Context, rec *marc.Record, documentID int64) ([]*model.Contribution, error) {
	var contributions []*model.Contribution
	for _, f := range rec.AllFields() {
		relation, ok := tags[f.Tag]
		if !ok {
			continue
		}
		ref, ok := f.Subfield('3')
		if !ok {
			continue
		}
		number, ok := marc.AuthorityNumber(ref)
		if !ok {
			logrus.Debugf("document %d: field %s: bad authority number %q", documentID, f.Tag, ref)
			continue
		}

		identityID, ok, err := r.lookup(ctx, number)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		contributions = append(contributions, &model.Contribution{
			DocumentID: documentID,
			IdentityID: identityID,
			FieldTag:   f.Tag,
			Role:       role(f),
			Relation:   relation,
		})
	}
	return contributions, nil
}

func (r *Resolver) lookup(ctx context.Context, number int64) (int64, bool, error) {
	id, ok, err := r.cache.Resolved(ctx, number)
	if err != nil || ok {
		return id, ok, err
	}

	found, err := r.identities.FindIdentitiesByNumber(ctx, number)
	if err != nil {
		return 0, false, err
	}
	switch len(found) {
	case 0:
		return 0, false, nil
	case 1:
	default:
		logrus.Warnf("authority number %d matches %d identities", number, len(found))
		return 0, false, nil
	}

	id = found[0].ID
	if err := r.cache.SetResolved(ctx, number, id); err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// role reads the relator code of $4, author when absent or unreadable.
func role(f *marc.Field) int {
	code, ok := f.Subfield('4')
	if !ok {
		return model.RoleAuthor
	}
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < 0 {
		return model.RoleAuthor
	}
	return n
}
