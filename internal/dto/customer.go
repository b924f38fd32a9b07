package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pviana/retail_banking_app/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
// Which identity fields are required depends on the kind; this is enforced by
// a struct-level validation registered in RegisterCustomValidations.
type CreateCustomerRequest struct {
	Kind    domain.CustomerKind `json:"kind" binding:"required,oneof=INDIVIDUAL BUSINESS"`
	Address string              `json:"address" binding:"required"`

	// Individual fields
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"`
	TaxID     string `json:"taxID"`

	// Business fields
	CompanyName    string `json:"companyName"`
	RegistrationID string `json:"registrationID"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID     string              `json:"customerID"`
	Kind           domain.CustomerKind `json:"kind"`
	Address        string              `json:"address"`
	Identifier     string              `json:"identifier"`
	DisplayName    string              `json:"displayName"`
	FullName       string              `json:"fullName,omitempty"`
	BirthDate      string              `json:"birthDate,omitempty"`
	TaxID          string              `json:"taxID,omitempty"`
	CompanyName    string              `json:"companyName,omitempty"`
	RegistrationID string              `json:"registrationID,omitempty"`
	AccountNumbers []int64             `json:"accountNumbers"`
}

// ToCustomerResponse converts a domain.Customer to a CustomerResponse DTO.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	accounts := c.Accounts()
	numbers := make([]int64, len(accounts))
	for i, account := range accounts {
		numbers[i] = account.Number()
	}
	return CustomerResponse{
		CustomerID:     c.CustomerID,
		Kind:           c.Kind,
		Address:        c.Address,
		Identifier:     c.Identifier(),
		DisplayName:    c.DisplayName(),
		FullName:       c.FullName,
		BirthDate:      c.BirthDate,
		TaxID:          c.TaxID,
		CompanyName:    c.CompanyName,
		RegistrationID: c.RegistrationID,
		AccountNumbers: numbers,
	}
}

// ToListCustomerResponse converts a slice of customers to response DTOs.
func ToListCustomerResponse(customers []*domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		res[i] = ToCustomerResponse(c)
	}
	return res
}

// RegisterCustomValidations wires the kind-dependent customer validation into
// gin's validator engine. Call once at startup.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(createCustomerStructLevel, CreateCustomerRequest{})
	}
}

// createCustomerStructLevel enforces that the identity fields matching the
// requested kind are present: individuals need full name, birth date and tax
// ID; businesses need company name and registration ID.
func createCustomerStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateCustomerRequest)
	switch req.Kind {
	case domain.CustomerIndividual:
		if req.FullName == "" {
			sl.ReportError(req.FullName, "fullName", "FullName", "required_individual", "")
		}
		if req.BirthDate == "" {
			sl.ReportError(req.BirthDate, "birthDate", "BirthDate", "required_individual", "")
		}
		if req.TaxID == "" {
			sl.ReportError(req.TaxID, "taxID", "TaxID", "required_individual", "")
		}
	case domain.CustomerBusiness:
		if req.CompanyName == "" {
			sl.ReportError(req.CompanyName, "companyName", "CompanyName", "required_business", "")
		}
		if req.RegistrationID == "" {
			sl.ReportError(req.RegistrationID, "registrationID", "RegistrationID", "required_business", "")
		}
	}
}
