package domain

import (
	"time"

	"github.com/pviana/retail_banking_app/internal/apperrors"
)

// CustomerKind distinguishes the two customer variants.
type CustomerKind string

const (
	CustomerIndividual CustomerKind = "INDIVIDUAL"
	CustomerBusiness   CustomerKind = "BUSINESS"
)

// Customer is a tagged union over the Individual and Business variants.
// Shared fields are always set; variant fields are set according to Kind.
// Identity fields are immutable after creation and the accounts list only
// grows through AddAccount.
type Customer struct {
	CustomerID string       `json:"customerID"`
	Kind       CustomerKind `json:"kind"`
	Address    string       `json:"address"`

	// Individual variant
	FullName  string `json:"fullName,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
	TaxID     string `json:"taxID,omitempty"`

	// Business variant
	CompanyName    string `json:"companyName,omitempty"`
	RegistrationID string `json:"registrationID,omitempty"`

	accounts []*CheckingAccount
}

// NewIndividual creates an individual customer identified by tax ID.
func NewIndividual(customerID, fullName, birthDate, taxID, address string) *Customer {
	return &Customer{
		CustomerID: customerID,
		Kind:       CustomerIndividual,
		Address:    address,
		FullName:   fullName,
		BirthDate:  birthDate,
		TaxID:      taxID,
	}
}

// NewBusiness creates a business customer identified by registration ID.
func NewBusiness(customerID, companyName, registrationID, address string) *Customer {
	return &Customer{
		CustomerID:     customerID,
		Kind:           CustomerBusiness,
		Address:        address,
		CompanyName:    companyName,
		RegistrationID: registrationID,
	}
}

// Identifier returns the variant's unique identifier: tax ID for individuals,
// registration ID for businesses.
func (c *Customer) Identifier() string {
	if c.Kind == CustomerBusiness {
		return c.RegistrationID
	}
	return c.TaxID
}

// DisplayName returns the name shown on statements and account listings.
func (c *Customer) DisplayName() string {
	if c.Kind == CustomerBusiness {
		return c.CompanyName
	}
	return c.FullName
}

// AddAccount appends an account to the customer's owned list.
func (c *Customer) AddAccount(account *CheckingAccount) {
	c.accounts = append(c.accounts, account)
}

// Accounts returns a copy of the owned accounts list in creation order.
func (c *Customer) Accounts() []*CheckingAccount {
	out := make([]*CheckingAccount, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// SelectAccount resolves one of the customer's accounts by number. A zero
// number is accepted only when the customer holds exactly one account, which
// is then returned. Any other unresolved choice fails with ErrNoAccountSelected.
func (c *Customer) SelectAccount(number int64) (*CheckingAccount, error) {
	if number == 0 {
		if len(c.accounts) == 1 {
			return c.accounts[0], nil
		}
		return nil, apperrors.ErrNoAccountSelected
	}
	for _, account := range c.accounts {
		if account.Number() == number {
			return account, nil
		}
	}
	return nil, apperrors.ErrNoAccountSelected
}

// ApplyTransaction is the single sanctioned path for mutating an account's
// balance. It applies the transaction and, on success, appends exactly one
// record to the account's history. A failed application records nothing.
func (c *Customer) ApplyTransaction(account BankAccount, tx Transaction) error {
	if err := tx.Apply(account); err != nil {
		return err
	}
	account.History().Append(tx.Type, tx.Amount, time.Now())
	return nil
}
