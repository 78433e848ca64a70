package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// ─── Models ──────────────────────────────────────────────────────────────────

// PlanRecord is one stored trip plan: the original request fields, the
// assembled plan as JSON, and the rendered PDF when one was generated.
type PlanRecord struct {
	ID            string    `json:"id"`
	DepartureCity string    `json:"departure_city"`
	ArrivalCity   string    `json:"arrival_city"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	PlanJSON      string    `json:"plan_json"`
	PDFData       []byte    `json:"pdf_data,omitempty"` // stored in DB, no filesystem needed
	CreatedAt     time.Time `json:"created_at"`
}

// ─── Init ─────────────────────────────────────────────────────────────────────

// InitDB opens the Postgres connection and runs migrations. Persistence
// is optional: callers skip this entirely when no DSN is configured and
// the service runs stateless.
func InitDB(dsn string) error {
	var err error
	DB, err = sql.Open("postgres", dsn)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(10)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	// Retry connection up to 10 times (the DB may take a moment to be ready)
	for i := 0; i < 10; i++ {
		if err = DB.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Waiting for database... attempt %d/10: %v", i+1, err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		DB = nil
		return err
	}

	if err := migrate(); err != nil {
		DB = nil
		return err
	}

	log.Println("✅ Database connected and migrated")
	return nil
}

// Enabled reports whether plan persistence is available.
func Enabled() bool {
	return DB != nil
}

// ─── Migrations ───────────────────────────────────────────────────────────────

func migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS plans (
			id             TEXT PRIMARY KEY,
			departure_city TEXT NOT NULL,
			arrival_city   TEXT NOT NULL,
			start_date     TEXT NOT NULL,
			end_date       TEXT NOT NULL,
			plan_json      TEXT,
			pdf_data       BYTEA,
			created_at     TIMESTAMPTZ DEFAULT NOW()
		)`,

		`CREATE INDEX IF NOT EXISTS idx_plans_created_at
			ON plans(created_at DESC)`,
	}

	for _, m := range migrations {
		if _, err := DB.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

func SavePlan(p *PlanRecord) error {
	_, err := DB.Exec(`
		INSERT INTO plans (id, departure_city, arrival_city, start_date, end_date, plan_json, pdf_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.DepartureCity, p.ArrivalCity, p.StartDate, p.EndDate, p.PlanJSON, p.PDFData)
	return err
}

func GetPlan(id string) (*PlanRecord, error) {
	p := &PlanRecord{}
	err := DB.QueryRow(`
		SELECT id, departure_city, arrival_city, start_date, end_date, plan_json, pdf_data, created_at
		FROM plans WHERE id = $1`, id).
		Scan(&p.ID, &p.DepartureCity, &p.ArrivalCity, &p.StartDate, &p.EndDate,
			&p.PlanJSON, &p.PDFData, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}
