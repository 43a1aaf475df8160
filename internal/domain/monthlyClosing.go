package domain

import "time"

// MonthlyClosing congela a folha e o DRE de uma unidade em um mês
type MonthlyClosing struct {
	ID        int            `json:"id"`
	UnitID    string         `json:"unit_id"`
	Month     string         `json:"month"` // Formato mm-yyyy (ex: 01-2024)
	Payroll   *PayrollReport `json:"payroll"`
	Statement *Statement     `json:"statement"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type MonthlyClosingResponse struct {
	Closings   []MonthlyClosing `json:"closings"`
	LastUpdate time.Time        `json:"last_update"`
}

type Unit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
