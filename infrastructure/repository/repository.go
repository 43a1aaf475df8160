package repository

import (
	jsoniter "github.com/json-iterator/go"
)

//go:generate mockgen -source=snapshot.go -destination=mocks/snapshot.go -package=mocks
//go:generate mockgen -source=pipeline.go -destination=mocks/pipeline.go -package=mocks
//go:generate mockgen -source=closing.go -destination=mocks/closing.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	unitsTable              = "units"
	staffTable              = "staff_members"
	appointmentsTable       = "appointments"
	transactionsTable       = "transactions"
	fiscalAccountsTable     = "fiscal_accounts"
	treatmentPlansTable     = "treatment_plans"
	leadsTable              = "leads"
	payrollAdjustmentsTable = "payroll_adjustments"
	stageHistoryTable       = "stage_history"
	monthlyClosingTable     = "monthly_closing"
)
