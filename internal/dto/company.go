package dto

import "github.com/SscSPs/contabilidad_app/internal/core/domain"

// UpdateCompanyRequest sets the company name.
type UpdateCompanyRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// CompanyResponse defines the data returned for the company.
type CompanyResponse struct {
	Name string `json:"name"`
}

// ToCompanyResponse converts a domain.Company to CompanyResponse DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	if c == nil {
		return CompanyResponse{}
	}
	return CompanyResponse{Name: c.Name}
}
