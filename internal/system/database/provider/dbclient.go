/*
 * Copyright (c) 2026, eVote NG (https://evote.ng).
 *
 * eVote NG licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package provider provides database client access for feature stores.
package provider

import (
	"context"

	"github.com/evoteng/voter-card-api/internal/system/database"
	dbmodel "github.com/evoteng/voter-card-api/internal/system/database/model"
	"github.com/evoteng/voter-card-api/internal/system/log"
)

// DBClientInterface defines the operations feature stores use against the
// database. Rows are returned as column-name keyed maps so stores own their
// own entity mapping.
type DBClientInterface interface {
	Query(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error)
	Execute(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) (int64, error)
}

type dbClient struct {
	db     *database.DB
	dbType string
	logger *log.Logger
}

// NewDBClient creates a database client bound to the given connection.
func NewDBClient(db *database.DB, dbType string) DBClientInterface {
	return &dbClient{
		db:     db,
		dbType: dbType,
		logger: log.GetLogger().With(log.String(log.LoggerKeyComponentName, "DBClient")),
	}
}

// Query executes a read query and returns the result rows as maps.
func (c *dbClient) Query(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) ([]map[string]interface{}, error) {
	c.logger.Debug("Executing query", log.String("query_id", query.GetID()))

	rows, err := c.db.QueryxContext(ctx, query.GetQuery(c.dbType), args...)
	if err != nil {
		c.logger.Error("Query failed", log.String("query_id", query.GetID()), log.Error(err))
		return nil, err
	}
	defer rows.Close()

	var results []map[string]interface{}
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, err
		}
		normalizeRow(row)
		results = append(results, row)
	}
	return results, rows.Err()
}

// Execute runs a write query and returns the number of affected rows.
func (c *dbClient) Execute(ctx context.Context, query dbmodel.DBQueryInterface, args ...interface{}) (int64, error) {
	c.logger.Debug("Executing statement", log.String("query_id", query.GetID()))

	result, err := c.db.ExecContext(ctx, query.GetQuery(c.dbType), args...)
	if err != nil {
		c.logger.Error("Statement failed", log.String("query_id", query.GetID()), log.Error(err))
		return 0, err
	}
	return result.RowsAffected()
}

// normalizeRow converts driver-specific []byte values to strings so store
// mappers can type-assert on string.
func normalizeRow(row map[string]interface{}) {
	for k, v := range row {
		if b, ok := v.([]byte); ok {
			row[k] = string(b)
		}
	}
}
