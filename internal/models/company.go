package models

// Company is the single-row company table.
type Company struct {
	Name string `db:"name"`
	AuditFields
}
