package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type LDContext string

const (
	DBContextURL LDContext = "leasedesk-backend-url"
)

// Connect opens the database, migrates it and configures the connection pool.
//
// driver is either "sqlite" or "postgres".
func Connect(driver, dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	var db *gorm.DB
	var err error

	switch driver {
	case "postgres":
		db, err = connectPostgres(dsn, config)
	case "sqlite", "":
		db, err = connectSQLite(dsn, config)
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	if err != nil {
		return err
	}

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

func connectSQLite(dsn string, config *gorm.Config) (*gorm.DB, error) {
	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, then the table
	// is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func connectPostgres(dsn string, config *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)

	return db, nil
}

func registerCallbacks(db *gorm.DB) error {
	// Query callbacks
	err := db.Callback().Query().After("*").Register("leasedesk:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("leasedesk:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("leasedesk:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("leasedesk:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("leasedesk:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("leasedesk:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("leasedesk:after_delete", deleteCallback)
	if err != nil {
		return err
	}

	return db.Callback().Delete().After("*").Register("leasedesk:after_delete_general", generalCallback)
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		name = plural.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// constraint maps a failed database constraint to a user friendly error.
// sqlite reports the columns, postgres reports the index name.
type constraint struct {
	sqlite   string
	postgres string
	err      error
}

var uniqueConstraints = []constraint{
	{"organizations.name", "idx_organizations_name", ErrOrganizationNameNotUnique},
	{"towers.organization_id, towers.code", "tower_code", ErrTowerCodeNotUnique},
	{"floors.tower_id, floors.name", "floor_name", ErrFloorNameNotUnique},
	{"units.organization_id, units.code", "unit_code", ErrUnitCodeNotUnique},
	{"field_definitions.organization_id, field_definitions.entity, field_definitions.key", "field_key", ErrFieldKeyNotUnique},
	{"invoices.organization_id, invoices.number", "invoice_number", ErrInvoiceNumberNotUnique},
	{"payments.organization_id, payments.number", "payment_number", ErrPaymentNumberNotUnique},
	{"payments.organization_id, payments.idempotency_key", "payment_idempotency", ErrPaymentDuplicate},
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	message := db.Error.Error()

	var pgErr *pgconn.PgError
	isPostgres := errors.As(db.Error, &pgErr)

	for _, c := range uniqueConstraints {
		if strings.Contains(message, "UNIQUE constraint failed: "+c.sqlite) {
			db.Error = c.err
			return
		}

		if isPostgres && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, c.postgres) {
			db.Error = c.err
			return
		}
	}

	if strings.Contains(message, "FOREIGN KEY constraint failed") || (isPostgres && pgErr.Code == "23503") {
		db.Error = ErrReferenceMissing
	}
}

// deleteCallback reports deletions that are blocked by referencing resources
func deleteCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError
	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") || (errors.As(db.Error, &pgErr) && pgErr.Code == "23503") {
		db.Error = ErrResourceInUse
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	var pgErr *pgconn.PgError

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) || errors.As(db.Error, &pgErr) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		Organization{},
		Tower{},
		Floor{},
		Unit{},
		Tenant{},
		Lease{},
		BillingRule{},
		AgeingBucket{},
		FieldDefinition{},
		Invoice{},
		InvoiceLine{},
		Payment{},
		PaymentAllocation{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
