package pipeline

import "github.com/sirupsen/logrus"

// Report counts what a load did.
type Report struct {
	Files         int `yaml:"files"`
	Records       int `yaml:"records"`
	Skipped       int `yaml:"skipped"`
	Identities    int `yaml:"identities"`
	Documents     int `yaml:"documents"`
	Contributions int `yaml:"contributions"`
}

func (r *Report) add(o Report) {
	r.Files += o.Files
	r.Records += o.Records
	r.Skipped += o.Skipped
	r.Identities += o.Identities
	r.Documents += o.Documents
	r.Contributions += o.Contributions
}

func (r Report) fields() logrus.Fields {
	return logrus.Fields{
		"records":       r.Records,
		"skipped":       r.Skipped,
		"identities":    r.Identities,
		"documents":     r.Documents,
		"contributions": r.Contributions,
	}
}
