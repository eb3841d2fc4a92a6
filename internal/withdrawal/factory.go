package withdrawal

// CreatePolicy creates a withdrawal policy from its configured name.
// Unknown names fall back to the income-threshold policy.
func CreatePolicy(name string) Policy {
	switch name {
	case "income_threshold":
		return NewIncomeThresholdPolicy()
	case "taxable_first":
		return NewTaxableFirstPolicy()
	case "rmd_only":
		return NewRmdOnlyPolicy()
	default:
		return NewIncomeThresholdPolicy()
	}
}
