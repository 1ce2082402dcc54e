package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emrgen/cataviz/internal/compress"
	"github.com/emrgen/cataviz/internal/extract"
	"github.com/emrgen/cataviz/internal/gender"
	"github.com/emrgen/cataviz/internal/marc"
	"github.com/emrgen/cataviz/internal/model"
	"github.com/emrgen/cataviz/internal/pipeline"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var limit int
	var skip int
	var tags []string
	var extracted bool
	var out string

	command := &cobra.Command{
		Use:     "show FILE",
		Short:   "print the records of a catalogue file",
		Example: "cataviz show data/P174_1.UTF8 --limit 2 --tag 200 --tag 700 --extract\ncataviz show data/P1486_1.UTF8 --skip 100 --limit 20 --out sample.UTF8.gz",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			patterns := pipeline.Patterns{Authority: cfg.AuthPattern, Pre1970: cfg.Pre1970Pattern, Post1970: cfg.Post1970Pattern}
			src, known := patterns.Classify(args[0])

			genders, err := gender.Default()
			if err != nil {
				return err
			}
			identities := extract.NewIdentityExtractor(genders)
			documents := extract.NewDocumentExtractor(cfg.Window())

			r, err := compress.Open(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			var sample io.WriteCloser
			if out != "" {
				sample, err = compress.Create(out)
				if err != nil {
					return err
				}
				defer sample.Close()
			}

			reader := marc.NewReader(r)
			for n := 0; (limit <= 0 || n < skip+limit) && reader.Next(); n++ {
				if n < skip {
					continue
				}
				rec, err := reader.Record()
				if err != nil {
					color.Red("record %d: %v", n+1, err)
					continue
				}

				if sample != nil {
					if _, err := sample.Write(marc.Encode(rec)); err != nil {
						return err
					}
				}

				color.Cyan("record %d", n+1)
				printRecord(rec, tags)
				if extracted && known {
					if src.Kind == pipeline.KindAuthority {
						printIdentity(identities, rec, src.Name())
					} else {
						printDocument(documents.Extract(rec, src.Era, src.Name()), rec)
					}
				}
				fmt.Println()
			}
			if err := reader.Err(); err != nil {
				return err
			}
			if sample != nil {
				return sample.Close()
			}
			return nil
		},
	}

	command.Flags().IntVarP(&limit, "limit", "n", 10, "number of records, 0 for all")
	command.Flags().IntVar(&skip, "skip", 0, "records to skip")
	command.Flags().StringSliceVarP(&tags, "tag", "t", nil, "only print these tags")
	command.Flags().BoolVarP(&extracted, "extract", "x", false, "print the extracted row")
	command.Flags().StringVarP(&out, "out", "o", "", "also write the shown records to this file, compressed by extension")

	command.Flags().SortFlags = false

	return command
}

func printRecord(rec *marc.Record, tags []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Tag", "Ind", "Content"})
	table.SetAutoWrapText(false)

	fields := rec.AllFields()
	if len(tags) > 0 {
		fields = rec.Fields(tags...)
	}
	for _, f := range fields {
		if marc.IsControlTag(f.Tag) {
			table.Append([]string{f.Tag, "", f.Data})
			continue
		}
		var content strings.Builder
		for i, sf := range f.Subfields {
			if i > 0 {
				content.WriteByte(' ')
			}
			content.WriteByte('$')
			content.WriteByte(sf.Code)
			content.WriteString(sf.Value)
		}
		table.Append([]string{f.Tag, string([]byte{indicator(f.Indicator1), indicator(f.Indicator2)}), content.String()})
	}
	table.Render()
}

func indicator(b byte) byte {
	if b == 0 || b == ' ' {
		return '_'
	}
	return b
}

func printIdentity(x *extract.IdentityExtractor, rec *marc.Record, file string) {
	id, err := x.Authority(rec, file)
	if err != nil {
		color.Yellow("no identity: %v", err)
		return
	}
	printField("ID", strconv.FormatInt(id.ID, 10))
	printField("Kind", id.Kind.String())
	printField("Name", id.Name)
	printField("Given", str(id.Given))
	printField("Search key", id.SearchKey)
	if !id.IsPerson() {
		return
	}
	if id.Gender != nil {
		printField("Gender", id.Gender.String())
	}
	printField("Lifespan", fmt.Sprintf("%s-%s (%s)", num(id.BirthYear), num(id.DeathYear), num(id.Age)))
}

func printDocument(doc *model.Document, rec *marc.Record) {
	printField("Title", doc.Title)
	printField("Byline", str(doc.Byline))
	contributors := []struct {
		tags []string
		kind model.IdentityKind
	}{
		{extract.PersonTags, model.KindPerson},
		{extract.CorporateTags, model.KindCorporateBody},
	}
	for _, c := range contributors {
		for _, f := range rec.Fields(c.tags...) {
			name, ok := extract.DisplayName(f, c.kind)
			if !ok {
				continue
			}
			role := model.RoleAuthor
			if code, ok := f.Subfield('4'); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(code)); err == nil {
					role = n
				}
			}
			printField("  "+f.Tag, fmt.Sprintf("%s (%s)", name, model.RoleLabel(role)))
		}
	}
	printField("Year", num(doc.Year))
	printField("Place", str(doc.Place))
	printField("Publisher", str(doc.Publisher))
	printField("Format", num(doc.Format))
	printField("Pages", num(doc.Pages))
	printField("Language", str(doc.Language))
}

func printField(label, value string) {
	color.Set(color.FgCyan)
	fmt.Print(label)
	color.Unset()
	fmt.Printf(": %s\n", value)
}

func str(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func num(n *int) string {
	if n == nil {
		return "-"
	}
	return strconv.Itoa(*n)
}
