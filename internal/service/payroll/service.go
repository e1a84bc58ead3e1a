package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/swisscourtage/brokerage-backend-go/internal/domain/collaborator"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/payroll"
	"github.com/swisscourtage/brokerage-backend-go/internal/domain/settlement"
	"github.com/swisscourtage/brokerage-backend-go/internal/fixtures"
)

type PayrollServiceImpl struct {
	collaboratorRepo  collaborator.CollaboratorRepository
	settlementService settlement.SettlementService
}

func NewPayrollService(
	collaboratorRepo collaborator.CollaboratorRepository,
	settlementService settlement.SettlementService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		collaboratorRepo:  collaboratorRepo,
		settlementService: settlementService,
	}
}

// GeneratePayslips builds one payslip per requested collaborator for the
// calendar month. The commission figures come from the settlement generator
// over the same interval; collaborators without commissions still get a
// payslip from their fixed salary alone. The result is empty only when none
// of the requested collaborators exist.
func (s *PayrollServiceImpl) GeneratePayslips(ctx context.Context, req payroll.GeneratePayslipsRequest) ([]payroll.Payslip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	collaborators, err := s.collaboratorRepo.GetByIDs(ctx, req.CollaboratorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get collaborators: %w", err)
	}
	if len(collaborators) == 0 {
		return []payroll.Payslip{}, nil
	}

	monthStart := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	statements, err := s.settlementService.GenerateStatements(ctx, settlement.GenerateRequest{
		StartDate:       monthStart.Format("2006-01-02"),
		EndDate:         monthEnd.Format("2006-01-02"),
		CollaboratorIDs: req.CollaboratorIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to settle commissions for %d-%02d: %w", req.Year, req.Month, err)
	}

	statementByCollaborator := make(map[string]settlement.Statement, len(statements))
	for _, st := range statements {
		statementByCollaborator[st.Collaborator.ID] = st
	}

	payslips := make([]payroll.Payslip, 0, len(collaborators))
	for _, col := range collaborators {
		payslips = append(payslips, buildPayslip(col, statementByCollaborator[col.ID], req.Month, req.Year))
	}

	return payslips, nil
}

// buildPayslip layers the statutory deductions on top of the settlement
// figures. All published amounts are rounded to the centime; the identities
// total_brut = salaire_brut + commissions_net and
// net_a_payer = total_brut - total_charges_sociales - impot_source hold
// exactly because the totals are sums of the rounded components.
func buildPayslip(col collaborator.Collaborator, st settlement.Statement, month, year int) payroll.Payslip {
	commissionsBrut := st.TotalAgentAmount.Round(2)
	reserveAmount := st.ReserveAmount.Round(2)
	commissionsNet := commissionsBrut.Sub(reserveAmount)

	salaireBrut := col.FixedSalary.Round(2)
	totalBrut := salaireBrut.Add(commissionsNet)

	avs := totalBrut.Mul(fixtures.RateAVS).Round(2)
	ac := totalBrut.Mul(fixtures.RateAC).Round(2)
	lpp := totalBrut.Mul(fixtures.RateLPP).Round(2)
	aanp := totalBrut.Mul(fixtures.RateAANP).Round(2)
	totalChargesSociales := avs.Add(ac).Add(lpp).Add(aanp)

	taux := fixtures.WithholdingRateFor(col.Canton, col.IsMarried())
	impotSource := totalBrut.Mul(taux).Round(2)

	totalDeductions := totalChargesSociales.Add(impotSource)
	netAPayer := totalBrut.Sub(totalDeductions)

	return payroll.Payslip{
		Collaborator: col,
		Month:        month,
		Year:         year,

		SalaireBrut:     salaireBrut,
		CommissionsBrut: commissionsBrut,
		ReserveAmount:   reserveAmount,
		CommissionsNet:  commissionsNet,
		TotalBrut:       totalBrut,

		AVS:                  avs,
		AC:                   ac,
		LPP:                  lpp,
		AANP:                 aanp,
		TotalChargesSociales: totalChargesSociales,

		Canton:          col.Canton,
		TauxImpotSource: taux,
		ImpotSource:     impotSource,

		TotalDeductions: totalDeductions,
		NetAPayer:       netAPayer,
	}
}
