package model

import "fmt"

// RoleLabels maps UNIMARC relator codes ($4) to labels. This is the subset
// found in printed book records.
var RoleLabels = map[int]string{
	10:  "Adapter",
	20:  "Annotator",
	70:  "Author",
	72:  "Author in quotations",
	75:  "Author of afterword",
	80:  "Author of introduction",
	100: "Bibliographic antecedent",
	205: "Collaborator",
	212: "Commentator",
	220: "Compiler",
	230: "Composer",
	295: "Degree grantor",
	340: "Editor",
	350: "Engraver",
	395: "Founder",
	440: "Illustrator",
	520: "Lyricist",
	557: "Organiser of meeting",
	570: "Other",
	600: "Photographer",
	605: "Presenter",
	610: "Printer",
	650: "Publisher",
	651: "Publishing director",
	660: "Recipient of letters",
	710: "Redactor",
	720: "Signer",
	727: "Thesis advisor",
	730: "Translator",
	750: "Typographer",
}

// RoleLabel returns the label of a relator code, or the code itself.
func RoleLabel(code int) string {
	if label, ok := RoleLabels[code]; ok {
		return label
	}
	return fmt.Sprintf("%03d", code)
}
