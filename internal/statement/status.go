package statement

import "fjacquet/finance-cli/internal/models"

// Variant is the visual weight of a status badge
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
)

// StatusDisplay is the label and badge variant shown for a status
type StatusDisplay struct {
	Label   string  `json:"label" yaml:"label"`
	Variant Variant `json:"variant" yaml:"variant"`
}

var statusDisplays = map[models.StatementStatus]StatusDisplay{
	models.StatusOpen:    {Label: "Abierto", Variant: VariantDefault},
	models.StatusClosed:  {Label: "Cerrado", Variant: VariantSecondary},
	models.StatusPaid:    {Label: "Pagado", Variant: VariantDefault},
	models.StatusPartial: {Label: "Parcial", Variant: VariantOutline},
}

// DisplayFor maps a status onto its display entry. Unrecognized values get
// the open entry.
func DisplayFor(status models.StatementStatus) StatusDisplay {
	if d, ok := statusDisplays[status]; ok {
		return d
	}
	return statusDisplays[models.StatusOpen]
}
