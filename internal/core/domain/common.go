package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// CreatedBy is the subject of the token that performed the write.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// Company is the business the books belong to.
type Company struct {
	Name string `json:"name"`
	AuditFields
}
