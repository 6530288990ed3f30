package counter

// Variant names the visual treatment for a count value.
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantLowBound  Variant = "low-bound"
	VariantPositive  Variant = "positive"
	VariantCelebrate Variant = "celebrate"
	VariantHighBound Variant = "high-bound"
)

// variants maps exact count values to their variant. Anything missing is VariantDefault.
var variants = map[int]Variant{
	Min:         VariantLowBound,
	18:          VariantPositive,
	CelebrateAt: VariantCelebrate,
	Max:         VariantHighBound,
}

// VariantFor returns the style variant for count.
func VariantFor(count int) Variant {
	if v, ok := variants[count]; ok {
		return v
	}
	return VariantDefault
}
