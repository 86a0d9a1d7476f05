package generator

// Method tags prefix wrapped errors.
const (
	MethodGenerate = "Generate"
	MethodValidate = "Validate"
	MethodSample   = "SampleColumns"
	MethodBudget   = "ApplyBudget"
	MethodInject   = "InjectCommon"
)

// DefaultCommonFraction is the share of Count sampled as common values in
// stage 3 (⌊Count·0.1⌋ values).
const DefaultCommonFraction = 0.1

// DefaultInjectionPasses is how many times stage 3 runs.
const DefaultInjectionPasses = 2

// maxRejections bounds rejection sampling of a replacement value before
// falling back to an exact scan for one free value.
const maxRejections = 32
