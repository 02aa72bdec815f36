// Package schema creates and checks the sales tables.
//
// Bootstrap is idempotent and meant to run at every startup. Verify
// introspects the live database and reports what is missing:
//
//	res := schema.Verify(ctx, db)
//	if !res.OK() {
//	    return res // Result is an error
//	}
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/shashiranjanraj/salesdesk/app/models"
	"github.com/shashiranjanraj/salesdesk/pkg/logger"
	"gorm.io/gorm"
)

// Table names a table and the columns the data layer relies on.
type Table struct {
	Name    string
	Columns []string
}

// Required is the fixed table → columns mapping checked by Verify.
var Required = []Table{
	{Name: models.Customer{}.TableName(), Columns: []string{"id", "name", "phone", "address"}},
	{Name: models.Product{}.TableName(), Columns: []string{"id", "name", "price"}},
	{Name: models.Order{}.TableName(), Columns: []string{"id", "customer_id", "created_at", "document_generated"}},
	{Name: models.OrderItem{}.TableName(), Columns: []string{"id", "order_id", "product_id", "quantity", "unit_kind"}},
	{Name: models.User{}.TableName(), Columns: []string{"id", "username", "password_hash", "role"}},
}

// Models lists the gorm models in dependency order: referenced tables
// come before the tables holding the foreign keys.
func Models() []any {
	return []any{
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
	}
}

// Bootstrap creates every missing table and column. Existing data is kept.
func Bootstrap(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("schema: bootstrap: %w", err)
	}
	logger.Info("schema: tables ready", "tables", len(Required))
	return nil
}

// Drop removes the sales tables, children first.
func Drop(ctx context.Context, db *gorm.DB) error {
	all := Models()
	reversed := make([]any, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		reversed = append(reversed, all[i])
	}
	if err := db.WithContext(ctx).Migrator().DropTable(reversed...); err != nil {
		return fmt.Errorf("schema: drop: %w", err)
	}
	return nil
}

// Result is the outcome of Verify. It implements error so a failed
// verification can be returned as is.
type Result struct {
	MissingTables  []string
	MissingColumns map[string][]string // table → columns
	// Err is set when the database could not be inspected at all.
	Err error
}

// OK reports whether every required table and column exists.
func (r Result) OK() bool {
	return r.Err == nil && len(r.MissingTables) == 0 && len(r.MissingColumns) == 0
}

func (r Result) Error() string {
	if r.OK() {
		return ""
	}

	var problems []string
	if r.Err != nil {
		problems = append(problems, r.Err.Error())
	}
	for _, t := range r.MissingTables {
		problems = append(problems, fmt.Sprintf("table %q does not exist", t))
	}
	for _, t := range Required {
		for _, c := range r.MissingColumns[t.Name] {
			problems = append(problems, fmt.Sprintf("column %q does not exist in table %q", c, t.Name))
		}
	}
	return "schema: verification failed: " + strings.Join(problems, "; ")
}

func (r Result) Unwrap() error { return r.Err }

// Verify checks every table in Required against the database metadata.
// Problems are logged and returned; nothing panics or exits.
func Verify(ctx context.Context, db *gorm.DB) Result {
	res := Result{MissingColumns: map[string][]string{}}
	migrator := db.WithContext(ctx).Migrator()

	tables, err := migrator.GetTables()
	if err != nil {
		res.Err = fmt.Errorf("schema: list tables: %w", err)
		logger.Error("schema: verification failed", "error", res.Error())
		return res
	}
	present := make(map[string]bool, len(tables))
	for _, name := range tables {
		present[name] = true
	}

	for _, table := range Required {
		if !present[table.Name] {
			res.MissingTables = append(res.MissingTables, table.Name)
			continue
		}

		columnTypes, err := migrator.ColumnTypes(table.Name)
		if err != nil {
			res.Err = fmt.Errorf("schema: inspect %s: %w", table.Name, err)
			break
		}

		existing := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			existing[strings.ToLower(ct.Name())] = true
		}
		for _, col := range table.Columns {
			if !existing[col] {
				res.MissingColumns[table.Name] = append(res.MissingColumns[table.Name], col)
			}
		}
	}

	if res.OK() {
		logger.Info("schema: tables and columns verified", "tables", len(Required))
	} else {
		logger.Error("schema: verification failed", "error", res.Error())
	}
	return res
}
