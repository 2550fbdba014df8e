package alert

import "github.com/FACorreiaa/go-supra/internal/app/components/ui"

type Variant string

const (
	VariantError Variant = "error"
	VariantInfo  Variant = "info"
)

type Props struct {
	Title   string
	Message string
	Detail  string
	Variant Variant
}

var variantClasses = map[Variant]string{
	VariantError: "border-red-300 bg-red-50 text-red-800",
	VariantInfo:  "border-blue-300 bg-blue-50 text-blue-800",
}

func (p Props) variant() Variant {
	if p.Variant == "" {
		return VariantError
	}
	return p.Variant
}

// role is "alert" for errors so screen readers announce them immediately.
func (p Props) role() string {
	if p.variant() == VariantError {
		return "alert"
	}
	return "status"
}

func (p Props) classes() string {
	return ui.Classes("alert container mx-auto my-4 rounded-lg border p-4", variantClasses[p.variant()])
}
