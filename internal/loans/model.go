package loans

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

// StatusPending is assigned to every newly submitted application. Status is
// otherwise free text; only the stats aggregation interprets specific values.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Loan is a submitted loan application. Which of the optional fields carry
// meaning depends on LoanType, but nothing enforces that: callers may supply
// any subset regardless of type, and the record stores whatever arrived.
type Loan struct {
	ID           string    `json:"id,omitempty"`
	LoanType     string    `json:"loanType"`
	FullName     string    `json:"fullName,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	LoanAmount   float64   `json:"loanAmount,omitempty"`
	LoanDuration string    `json:"loanDuration,omitempty"`
	Status       string    `json:"status"`
	AppliedAt    time.Time `json:"appliedAt"`

	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	EmploymentType string    `json:"employmentType,omitempty"`
	MonthlyIncome  string    `json:"monthlyIncome,omitempty"`
	LoanPurpose    string    `json:"loanPurpose,omitempty"`
	PANCard        string    `json:"panCard,omitempty"`
	CreditScore    string    `json:"creditScore,omitempty"`
	ExistingLoans  *FlexBool `json:"existingLoans,omitempty"`
	BankName       string    `json:"bankName,omitempty"`
	AccountNumber  string    `json:"accountNumber,omitempty"`
	Age            int       `json:"age,omitempty"`
	ContactNumber  string    `json:"contactNumber,omitempty"`

	// Vehicle loans.
	CarMake     string `json:"carMake,omitempty"`
	CarModel    string `json:"carModel,omitempty"`
	CarPrice    string `json:"carPrice,omitempty"`
	LoanTenure  string `json:"loanTenure,omitempty"`
	DownPayment string `json:"downPayment,omitempty"`

	// Business loans.
	BusinessName    string `json:"businessName,omitempty"`
	BusinessType    string `json:"businessType,omitempty"`
	YearEstablished string `json:"yearEstablished,omitempty"`
	AnnualRevenue   string `json:"annualRevenue,omitempty"`
	BusinessAddress string `json:"businessAddress,omitempty"`
	TaxID           string `json:"taxId,omitempty"`

	// Education loans.
	Institution     string `json:"institution,omitempty"`
	Course          string `json:"course,omitempty"`
	CourseDuration  string `json:"courseDuration,omitempty"`
	TotalFees       string `json:"totalFees,omitempty"`
	ParentName      string `json:"parentName,omitempty"`
	ParentIncome    string `json:"parentIncome,omitempty"`
	AcademicScore   string `json:"academicScore,omitempty"`
	AdmissionStatus string `json:"admissionStatus,omitempty"`

	// Jewel loans.
	JewelType        string `json:"jewelType,omitempty"`
	JewelWeight      string `json:"jewelWeight,omitempty"`
	JewelPurity      string `json:"jewelPurity,omitempty"`
	EstimatedValue   string `json:"estimatedValue,omitempty"`
	EmploymentStatus string `json:"employmentStatus,omitempty"`

	// House loans.
	PropertyValue    string `json:"propertyValue,omitempty"`
	PropertyLocation string `json:"propertyLocation,omitempty"`
	PropertyType     string `json:"propertyType,omitempty"`
}

// FlexBool normalizes the mixed-typed existingLoans field: submissions carry it
// either as a JSON boolean or as a "Yes"/"No" style string. It always marshals
// back as a plain boolean.
type FlexBool bool

// UnmarshalJSON accepts true/false, "Yes"/"No", and "true"/"false" strings.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("true")):
		*b = true
		return nil
	case bytes.Equal(data, []byte("false")), bytes.Equal(data, []byte("null")):
		*b = false
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		switch strings.ToLower(string(data[1 : len(data)-1])) {
		case "yes", "true":
			*b = true
		default:
			*b = false
		}
		return nil
	}
	return fmt.Errorf("existingLoans: cannot parse %s", data)
}
