// Package pipeline loads catalogue files into the store in three phases:
// authority records, inline identities of document records, then documents
// with their links.
package pipeline

import (
	"context"
	"fmt"

	"github.com/emrgen/cataviz/internal/cache"
	"github.com/emrgen/cataviz/internal/compress"
	"github.com/emrgen/cataviz/internal/dates"
	"github.com/emrgen/cataviz/internal/extract"
	"github.com/emrgen/cataviz/internal/gender"
	"github.com/emrgen/cataviz/internal/link"
	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
	"github.com/emrgen/cataviz/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Store    store.Store
	Cache    cache.IdentityCache
	Genders  *gender.Resolver
	Window   dates.Window
	Patterns Patterns
	// RunID tags the log lines of a run, a new one is generated when nil
	RunID uuid.UUID
}

// Driver runs the load phases. A driver and its cache serve one run.
type Driver struct {
	store      store.Store
	cache      cache.IdentityCache
	identities *extract.IdentityExtractor
	documents  *extract.DocumentExtractor
	patterns   Patterns
	runID      uuid.UUID
	log        *logrus.Entry
}

func NewDriver(opts Options) *Driver {
	runID := opts.RunID
	if runID == uuid.Nil {
		runID = uuid.New()
	}
	c := opts.Cache
	if c == nil {
		c = cache.NewMemoryIdentityCache()
	}
	genders := opts.Genders
	if genders == nil {
		genders = gender.New(nil)
	}
	return &Driver{
		store:      opts.Store,
		cache:      c,
		identities: extract.NewIdentityExtractor(genders),
		documents:  extract.NewDocumentExtractor(opts.Window),
		patterns:   opts.Patterns,
		runID:      runID,
		log:        logrus.WithField("run", runID.String()),
	}
}

// RunID identifies the run in logs and cache keys.
func (d *Driver) RunID() uuid.UUID {
	return d.runID
}

// Run loads every input file of dir.
func (d *Driver) Run(ctx context.Context, dir string) (Report, error) {
	sources, err := d.patterns.Scan(dir)
	if err != nil {
		return Report{}, err
	}
	return d.Load(ctx, sources)
}

// Load runs the three phases on sources. Authority files are loaded before
// any document file, whatever their order. The identity cache is cleared
// once the run is over.
func (d *Driver) Load(ctx context.Context, sources []Source) (Report, error) {
	var auths, docs []Source
	for _, src := range sources {
		if src.Kind == KindAuthority {
			auths = append(auths, src)
		} else {
			docs = append(docs, src)
		}
	}

	var report Report
	phases := []struct {
		name string
		run  func(context.Context, ...Source) (Report, error)
		in   []Source
	}{
		{"authorities", d.LoadAuthorities, auths},
		{"bylines", d.LoadBylines, docs},
		{"documents", d.LoadDocuments, docs},
	}
	for _, phase := range phases {
		r, err := phase.run(ctx, phase.in...)
		report.add(r)
		if err != nil {
			return report, fmt.Errorf("%s: %w", phase.name, err)
		}
	}
	report.Files = len(sources)

	if err := d.cache.Clear(ctx); err != nil {
		d.log.WithError(err).Warn("identity cache not cleared")
	}

	d.log.WithFields(report.fields()).WithField("files", report.Files).Info("run finished")
	return report, nil
}

// LoadAuthorities writes the persons and corporate bodies of authority files.
func (d *Driver) LoadAuthorities(ctx context.Context, sources ...Source) (Report, error) {
	return d.each(ctx, "authorities", sources, func(ctx context.Context, tx store.Store, src Source, rec *marc.Record, report *Report) error {
		identity, err := d.identities.Authority(rec, src.Name())
		if err != nil {
			report.Skipped++
			d.log.WithError(err).Debug("authority record skipped")
			return nil
		}
		return d.writeIdentity(ctx, tx, identity, report)
	})
}

// LoadBylines writes the identities named in document files which no
// authority record described.
func (d *Driver) LoadBylines(ctx context.Context, sources ...Source) (Report, error) {
	kinds := []struct {
		tags []string
		kind model.IdentityKind
	}{
		{append(append([]string{}, extract.PersonTags...), extract.PersonSubjectTags...), model.KindPerson},
		{append(append([]string{}, extract.CorporateTags...), extract.CorporateSubjectTags...), model.KindCorporateBody},
	}
	return d.each(ctx, "bylines", sources, func(ctx context.Context, tx store.Store, src Source, rec *marc.Record, report *Report) error {
		for _, k := range kinds {
			for _, f := range rec.Fields(k.tags...) {
				identity, ok := d.identities.Inline(f, k.kind)
				if !ok {
					continue
				}
				if err := d.writeIdentity(ctx, tx, identity, report); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// LoadDocuments writes documents and links them to stored identities.
func (d *Driver) LoadDocuments(ctx context.Context, sources ...Source) (Report, error) {
	return d.each(ctx, "documents", sources, func(ctx context.Context, tx store.Store, src Source, rec *marc.Record, report *Report) error {
		doc := d.documents.Extract(rec, src.Era, src.Name())
		if err := tx.CreateDocument(ctx, doc); err != nil {
			return fmt.Errorf("create document %s: %w", doc.SourceURL, err)
		}
		report.Documents++

		contributions, err := link.NewResolver(tx, d.cache).Resolve(ctx, rec, doc.ID)
		if err != nil {
			return err
		}
		if err := tx.CreateContributions(ctx, contributions); err != nil {
			return fmt.Errorf("link document %d: %w", doc.ID, err)
		}
		report.Contributions += len(contributions)
		return nil
	})
}

// Order ranks the documents of every primary contributor.
func (d *Driver) Order(ctx context.Context) (int64, error) {
	var ranked int64
	err := d.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		ranked, err = tx.OrderDocuments(ctx)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("order documents: %w", err)
	}
	d.log.WithField("documents", ranked).Info("documents ranked")
	return ranked, nil
}

func (d *Driver) writeIdentity(ctx context.Context, tx store.Store, identity *model.Identity, report *Report) error {
	seen, err := d.cache.Seen(ctx, identity.ID)
	if err != nil {
		return err
	}
	if seen {
		return nil
	}

	inserted, err := tx.CreateIdentity(ctx, identity)
	if err != nil {
		return fmt.Errorf("create identity %d: %w", identity.ID, err)
	}
	if inserted {
		report.Identities++
	}
	return d.cache.MarkSeen(ctx, identity.ID)
}

type recordHandler func(ctx context.Context, tx store.Store, src Source, rec *marc.Record, report *Report) error

func (d *Driver) each(ctx context.Context, phase string, sources []Source, handle recordHandler) (Report, error) {
	var total Report
	for _, src := range sources {
		report, err := d.loadFile(ctx, phase, src, handle)
		total.add(report)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// loadFile handles the records of one file in a transaction. Malformed
// records are skipped, any other error rolls the file back.
func (d *Driver) loadFile(ctx context.Context, phase string, src Source, handle recordHandler) (Report, error) {
	log := d.log.WithFields(logrus.Fields{"phase": phase, "file": src.Name()})
	if src.Era != "" {
		log = log.WithField("era", src.Era)
	}
	log.Info("loading file")

	r, err := compress.Open(src.Path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", src.Path, err)
	}
	defer r.Close()

	var report Report
	reader := marc.NewReader(r)
	err = d.store.Transaction(ctx, func(tx store.Store) error {
		for reader.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			report.Records++
			rec, err := reader.Record()
			if err != nil {
				report.Skipped++
				log.WithError(err).Warn("skipping malformed record")
				continue
			}
			if err := handle(ctx, tx, src, rec, &report); err != nil {
				return err
			}
		}
		return reader.Err()
	})
	if err != nil {
		return Report{Records: report.Records}, fmt.Errorf("load %s: %w", src.Name(), err)
	}

	report.Files = 1
	log.WithFields(report.fields()).Info("file loaded")
	return report, nil
}
