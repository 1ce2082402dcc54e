package jobs

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/cataviz/internal/pipeline"
	"github.com/sirupsen/logrus"
)

// Loader loads files, pipeline.Driver in production.
type Loader interface {
	Load(ctx context.Context, sources []pipeline.Source) (pipeline.Report, error)
	Order(ctx context.Context) (int64, error)
}

var _ Loader = (*pipeline.Driver)(nil)

// ScanTask loads the catalogue files appearing in a directory. Every tick
// gets a new loader, so a run and its identity cache cover one tick.
type ScanTask struct {
	ctx       context.Context
	schedule  string
	dir       string
	patterns  pipeline.Patterns
	newLoader func() (Loader, error)
	processed mapset.Set[string]
}

func NewScanTask(ctx context.Context, schedule, dir string, patterns pipeline.Patterns, newLoader func() (Loader, error)) *ScanTask {
	return &ScanTask{
		ctx:       ctx,
		schedule:  schedule,
		dir:       dir,
		patterns:  patterns,
		newLoader: newLoader,
		processed: mapset.NewSet[string](),
	}
}

func (s *ScanTask) Name() string {
	return "scan"
}

func (s *ScanTask) Schedule() string {
	return s.schedule
}

// Run loads the files not seen by earlier ticks. Files of a failed tick are
// not retried, reload them with the load command.
func (s *ScanTask) Run() {
	log := logrus.WithField("dir", s.dir)

	sources, err := s.patterns.Scan(s.dir)
	if err != nil {
		log.WithError(err).Error("scan failed")
		return
	}

	var fresh []pipeline.Source
	hasDocuments := false
	for _, src := range sources {
		if s.processed.Contains(src.Path) {
			continue
		}
		fresh = append(fresh, src)
		hasDocuments = hasDocuments || src.Kind == pipeline.KindDocument
	}
	if len(fresh) == 0 {
		log.Debug("no new files")
		return
	}
	loader, err := s.newLoader()
	if err != nil {
		log.WithError(err).Error("cannot start a run")
		return
	}
	for _, src := range fresh {
		s.processed.Add(src.Path)
	}

	report, err := loader.Load(s.ctx, fresh)
	if err != nil {
		log.WithError(err).Errorf("loading %d new files failed", len(fresh))
		return
	}
	log.Infof("loaded %d new files, %d documents", report.Files, report.Documents)

	if hasDocuments {
		if _, err := loader.Order(s.ctx); err != nil {
			log.WithError(err).Error("ordering failed")
		}
	}
}
