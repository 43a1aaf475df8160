package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/clinic-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/clinic-insights-api/internal/config"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-insights-api/internal/usecases/pipeline"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS units (
		id   VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS staff_members (
		id              VARCHAR(32) PRIMARY KEY,
		name            TEXT NOT NULL,
		role            TEXT NOT NULL,
		commission_rate NUMERIC(6,4),
		unit_id         VARCHAR(32) REFERENCES units(id),
		allowed_units   TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id           VARCHAR(32) PRIMARY KEY,
		client_id    VARCHAR(32) NOT NULL,
		staff_id     VARCHAR(32) NOT NULL REFERENCES staff_members(id),
		room_id      VARCHAR(32),
		unit_id      VARCHAR(32) REFERENCES units(id),
		service_name TEXT NOT NULL,
		price        NUMERIC(14,2) NOT NULL DEFAULT 0,
		start_time   TIMESTAMPTZ NOT NULL,
		end_time     TIMESTAMPTZ NOT NULL,
		status       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS appointments_unit_start_idx ON appointments (unit_id, start_time)`,
	`CREATE TABLE IF NOT EXISTS fiscal_accounts (
		id   VARCHAR(32) PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id                VARCHAR(32) PRIMARY KEY,
		type              TEXT NOT NULL,
		revenue_type      TEXT,
		amount            NUMERIC(14,2) NOT NULL,
		date              TIMESTAMPTZ NOT NULL,
		status            TEXT,
		description       TEXT,
		category          TEXT,
		fiscal_account_id VARCHAR(32) REFERENCES fiscal_accounts(id),
		unit_id           VARCHAR(32) REFERENCES units(id)
	)`,
	`CREATE INDEX IF NOT EXISTS transactions_unit_date_idx ON transactions (unit_id, date)`,
	`CREATE TABLE IF NOT EXISTS treatment_plans (
		id             VARCHAR(32) PRIMARY KEY,
		client_id      VARCHAR(32) NOT NULL,
		unit_id        VARCHAR(32) REFERENCES units(id),
		items          JSONB NOT NULL DEFAULT '[]',
		discount       NUMERIC(14,2) NOT NULL DEFAULT 0,
		status         TEXT NOT NULL,
		pipeline_stage TEXT NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id         VARCHAR(32) PRIMARY KEY,
		name       TEXT NOT NULL,
		value      NUMERIC(14,2) NOT NULL DEFAULT 0,
		stage      TEXT NOT NULL,
		status     TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_adjustments (
		staff_id VARCHAR(32) NOT NULL REFERENCES staff_members(id),
		month    VARCHAR(7) NOT NULL,
		advances NUMERIC(14,2) NOT NULL DEFAULT 0,
		salary   NUMERIC(14,2) NOT NULL DEFAULT 0,
		bonus    NUMERIC(14,2) NOT NULL DEFAULT 0,
		PRIMARY KEY (staff_id, month)
	)`,
	`CREATE TABLE IF NOT EXISTS stage_history (
		id          VARCHAR(32) PRIMARY KEY,
		entity_type TEXT NOT NULL,
		entity_id   VARCHAR(32) NOT NULL,
		from_stage  TEXT NOT NULL,
		to_stage    TEXT NOT NULL,
		status_from TEXT,
		status_to   TEXT,
		changed_by  TEXT,
		changed_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS stage_history_entity_idx ON stage_history (entity_type, entity_id)`,
	`CREATE TABLE IF NOT EXISTS monthly_closing (
		id         SERIAL PRIMARY KEY,
		unit_id    VARCHAR(32) NOT NULL REFERENCES units(id),
		month      VARCHAR(7) NOT NULL,
		payroll    JSONB,
		statement  JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT monthly_closing_unit_month_unique UNIQUE (unit_id, month)
	)`,
}

func generateID() string {
	id, err := gonanoid.Generate(characters, idLength)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao gerar ID")
	}
	return id
}

func createSchema(ctx context.Context, conn postgres.Queryer) error {
	logrus.Infof("Criando %d objetos de schema...", len(schema))

	for i, statement := range schema {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}

	logrus.Info("Schema criado com sucesso")
	return nil
}

// seed insere uma unidade de demonstração com equipe, agenda, lançamentos e funis
func seed(ctx context.Context, tx postgres.Queryer, location *time.Location) error {
	startTime := time.Now()

	unitID := generateID()
	if _, err := tx.ExecContext(ctx, `INSERT INTO units (id, name) VALUES ($1, $2)`, unitID, "Unidade Centro"); err != nil {
		return fmt.Errorf("unidade: %w", err)
	}

	staff := []struct {
		name string
		role string
		rate any
	}{
		{name: "Ana Souza", role: "esteticista", rate: "0.30"},
		{name: "Bruno Lima", role: "biomédico", rate: "0.25"},
		{name: "Carla Dias", role: "recepção", rate: nil},
	}

	staffIDs := make([]string, 0, len(staff))
	for _, member := range staff {
		id := generateID()
		_, err := tx.ExecContext(ctx,
			`INSERT INTO staff_members (id, name, role, commission_rate, unit_id) VALUES ($1, $2, $3, $4, $5)`,
			id, member.name, member.role, member.rate, unitID)
		if err != nil {
			return fmt.Errorf("profissional %s: %w", member.name, err)
		}
		staffIDs = append(staffIDs, id)
	}

	now := time.Now().In(location)
	monday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location)
	for monday.Weekday() != time.Monday {
		monday = monday.AddDate(0, 0, -1)
	}

	appointmentCount := 0
	for day := 0; day < 6; day++ {
		for hour := 9; hour < 18; hour += 2 {
			start := time.Date(monday.Year(), monday.Month(), monday.Day()+day, hour, 0, 0, 0, location)
			status := domain.AppointmentStatusCompleted
			if (day+hour)%7 == 0 {
				status = domain.AppointmentStatusCancelled
			}

			_, err := tx.ExecContext(ctx,
				`INSERT INTO appointments (id, client_id, staff_id, room_id, unit_id, service_name, price, start_time, end_time, status)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				generateID(), generateID(), staffIDs[(day+hour)%2], fmt.Sprintf("sala-%d", hour%3+1), unitID,
				"Limpeza de pele", "180.00", start, start.Add(time.Hour), string(status))
			if err != nil {
				return fmt.Errorf("agendamento: %w", err)
			}
			appointmentCount++
		}
	}

	clinicAccount := generateID()
	professionalAccount := generateID()
	accounts := map[string]domain.FiscalAccountType{
		clinicAccount:       domain.FiscalAccountTypeClinicService,
		professionalAccount: domain.FiscalAccountTypeProfessional,
	}
	for id, accountType := range accounts {
		if _, err := tx.ExecContext(ctx, `INSERT INTO fiscal_accounts (id, name, type) VALUES ($1, $2, $3)`, id, string(accountType), string(accountType)); err != nil {
			return fmt.Errorf("conta fiscal: %w", err)
		}
	}

	transactions := []struct {
		kind        domain.TransactionType
		revenueType domain.RevenueType
		amount      string
		category    string
		account     string
	}{
		{kind: domain.TransactionTypeIncome, revenueType: domain.RevenueTypeService, amount: "12000.00", account: clinicAccount},
		{kind: domain.TransactionTypeIncome, revenueType: domain.RevenueTypeProduct, amount: "2500.00", account: clinicAccount},
		{kind: domain.TransactionTypeIncome, revenueType: domain.RevenueTypeService, amount: "3000.00", account: professionalAccount},
		{kind: domain.TransactionTypeExpense, amount: "4000.00", category: "Aluguel"},
		{kind: domain.TransactionTypeExpense, amount: "1200.00", category: "Insumos", account: clinicAccount},
	}
	for _, transaction := range transactions {
		var account any
		if transaction.account != "" {
			account = transaction.account
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, type, revenue_type, amount, date, status, description, category, fiscal_account_id, unit_id)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			generateID(), string(transaction.kind), string(transaction.revenueType), transaction.amount, monday,
			"paid", "lançamento de demonstração", transaction.category, account, unitID)
		if err != nil {
			return fmt.Errorf("lançamento: %w", err)
		}
	}

	for i, stage := range domain.PipelineStages() {
		items := fmt.Sprintf(`[{"service_name":"Sessão de laser","quantity":%d,"unit_price":"350.00","total_price":"%d.00"}]`, i+1, 350*(i+1))
		_, err := tx.ExecContext(ctx,
			`INSERT INTO treatment_plans (id, client_id, unit_id, items, discount, status, pipeline_stage) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			generateID(), generateID(), unitID, items, "0", string(domain.PlanStatusPrescribed), string(stage))
		if err != nil {
			return fmt.Errorf("plano de tratamento: %w", err)
		}
	}

	for _, stage := range domain.LeadStages() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO leads (id, name, value, stage, status) VALUES ($1, $2, $3, $4, $5)`,
			generateID(), "Clínica "+string(stage), "990.00", string(stage), string(pipeline.LeadStatusFor(stage)))
		if err != nil {
			return fmt.Errorf("lead: %w", err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"unit_id":      unitID,
		"appointments": appointmentCount,
		"elapsed":      time.Since(startTime).String(),
	}).Info("Dados de demonstração inseridos")

	return nil
}

func main() {
	withSeed := flag.Bool("seed", false, "insere dados de demonstração")
	tokenFor := flag.String("token", "", "emite um token de desenvolvimento para o ID de usuário informado")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("erro ao carregar configuração")
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("erro ao conectar ao banco de dados")
	}
	defer conn.Close()

	if err := createSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("erro ao criar schema")
	}

	if *withSeed {
		err := conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
			return seed(ctx, tx, cfg.App.Location)
		})
		if err != nil {
			logrus.WithError(err).Fatal("erro ao inserir dados de demonstração")
		}
	}

	if *tokenFor != "" {
		token, err := authenticating.NewService(cfg).IssueToken(domain.Claims{
			UserID:     *tokenFor,
			UserName:   "dev",
			UserRoleID: 1,
		}, 24*time.Hour)
		if err != nil {
			logrus.WithError(err).Fatal("erro ao emitir token")
		}
		fmt.Println(token)
	}
}
