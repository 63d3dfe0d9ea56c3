package memory

import (
	"time"

	"github.com/caixinha-app/caixinha_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func decPtr(v int64) *decimal.Decimal {
	d := dec(v)
	return &d
}

// SeedDemoData returns the demo dataset the application boots with.
// Loans and governance requests live in the approval queue of their fund;
// the account screen views are projections over these ledgers.
func SeedDemoData(now time.Time) ([]domain.Fund, []domain.DebtItem) {
	audit := domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	funds := []domain.Fund{
		{
			FundID:      "1",
			Name:        "Amigos do futebol de sexta",
			Description: "Grana para locação de equipamentos",
			Image:       "https://images.unsplash.com/photo-1575361204480-aadea25e6e68?q=80&w=200&h=200",
			Date:        "10/04/2023",
			Balance:     dec(5000),
			Growth:      dec(268),
			Members: []domain.Member{
				{MemberID: "1", Name: "Lucas", Role: domain.RoleAdmin, Joined: "10/04/2023"},
				{MemberID: "2", Name: "João", Role: domain.RoleMember, Joined: "10/04/2023"},
				{MemberID: "3", Name: "Maria", Role: domain.RoleMember, Joined: "15/04/2023"},
				{MemberID: "4", Name: "Carlos", Role: domain.RoleMember, Joined: "20/04/2023"},
				{MemberID: "5", Name: "Ana", Role: domain.RoleMember, Joined: "25/04/2023"},
				{MemberID: "6", Name: "Pedro", Role: domain.RoleMember, Joined: "30/04/2023"},
				{MemberID: "7", Name: "Paula", Role: domain.RoleMember, Joined: "05/05/2023"},
			},
			History: []domain.HistoryItem{
				{HistoryID: "1", Date: "12/05/2023", Description: "Aporte de João", Value: dec(500), Type: domain.HistoryDeposit},
				{HistoryID: "2", Date: "05/05/2023", Description: "Pagamento quadra", Value: dec(-200), Type: domain.HistoryWithdrawal},
				{HistoryID: "3", Date: "01/05/2023", Description: "Aporte de Maria", Value: dec(500), Type: domain.HistoryDeposit},
			},
			Approvals: []domain.ApprovalItem{
				{ApprovalID: "1", Date: "15/05/2023", Description: "Compra de bolas", Value: decPtr(350), Status: domain.ApprovalPending},
				{ApprovalID: "2", Date: "15/05/2023", Description: "Solicitação de empréstimo - João", Value: decPtr(1000), Status: domain.ApprovalPending, RequesterID: "2"},
			},
			AuditFields: audit,
		},
		{
			FundID:      "2",
			Name:        "Amigo secreto TI",
			Description: "Compra de presentes para o final de ano",
			Image:       "https://images.unsplash.com/photo-1608116518432-ec97a1b7e8b0?q=80&w=200&h=200",
			Date:        "15/03/2023",
			Balance:     dec(500),
			Growth:      dec(27),
			Members: []domain.Member{
				{MemberID: "1", Name: "Lucas", Role: domain.RoleAdmin, Joined: "15/03/2023"},
				{MemberID: "8", Name: "Carlos", Role: domain.RoleMember, Joined: "16/03/2023"},
				{MemberID: "9", Name: "Ana", Role: domain.RoleMember, Joined: "17/03/2023"},
				{MemberID: "10", Name: "Rafael", Role: domain.RoleMember, Joined: "18/03/2023"},
				{MemberID: "11", Name: "Juliana", Role: domain.RoleMember, Joined: "19/03/2023"},
				{MemberID: "12", Name: "Marcos", Role: domain.RoleMember, Joined: "20/03/2023"},
			},
			History: []domain.HistoryItem{
				{HistoryID: "4", Date: "10/05/2023", Description: "Aporte de Carlos", Value: dec(100), Type: domain.HistoryDeposit},
				{HistoryID: "5", Date: "01/05/2023", Description: "Aporte de Ana", Value: dec(100), Type: domain.HistoryDeposit},
			},
			Approvals: []domain.ApprovalItem{
				// Governance request, no amount attached.
				{ApprovalID: "3", Date: "12/05/2023", Description: "Alteração de regras do fundo", Status: domain.ApprovalPending},
			},
			AuditFields: audit,
		},
	}

	debts := []domain.DebtItem{
		{DebtID: "1", FundID: "1", FundName: "Amigos do futebol de sexta", Amount: dec(1200), DueDate: "30/05/2023", Description: "Empréstimo para equipamentos"},
		{DebtID: "2", FundID: "2", FundName: "Amigo secreto TI", Amount: dec(300), DueDate: "15/06/2023", Description: "Adiantamento para presente"},
	}

	return funds, debts
}
