package payroll

import "context"

// PayrollService generates monthly payslips for salaried collaborators,
// layering statutory deductions on top of the settlement generator's
// net-commission figure for the calendar month.
type PayrollService interface {
	GeneratePayslips(ctx context.Context, req GeneratePayslipsRequest) ([]Payslip, error)
}
