package domain

// Department labels recognized by the dashboard. Values outside this set are
// stored verbatim but counted under DepartmentOther.
const (
	DepartmentSales          = "営業"
	DepartmentDevelopment    = "開発"
	DepartmentGeneralAffairs = "総務"
	DepartmentHR             = "人事"

	// DepartmentOther is the catch-all bucket key for unrecognized values.
	DepartmentOther = "other"
)

// KnownDepartments lists the fixed department set in display order.
func KnownDepartments() []string {
	return []string{
		DepartmentSales,
		DepartmentDevelopment,
		DepartmentGeneralAffairs,
		DepartmentHR,
	}
}

// IsKnownDepartment reports membership in the fixed department set.
func IsKnownDepartment(department string) bool {
	switch department {
	case DepartmentSales, DepartmentDevelopment, DepartmentGeneralAffairs, DepartmentHR:
		return true
	}
	return false
}

// BucketDepartment maps a raw department value to its counting bucket. Applied
// wherever department counts are needed; CSV export keeps the raw value.
func BucketDepartment(department string) string {
	if IsKnownDepartment(department) {
		return department
	}
	return DepartmentOther
}
