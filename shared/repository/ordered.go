package repository

import (
	"context"
	"fmt"

	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/ordering"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

func (repo *Repository[T]) entriesQuery(where string, lock bool) string {
	query := fmt.Sprintf("SELECT %[1]s.%[2]s AS id, %[1]s.%[3]s AS sort_order FROM %[1]s %[4]s ORDER BY %[1]s.%[3]s ASC",
		repo.table, repo.primaryColumn, constant.FieldSortOrder, where)
	if lock {
		query += " FOR UPDATE"
	}

	return query
}

// Entries lists the id and sort_order of every row matching filter, by order.
func (repo *Repository[T]) Entries(ctx context.Context, filter dto.FilterGroup) ([]ordering.Entry, error) {
	ctx, scope := repo.span(ctx, "Entries")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return nil, errRequiredFilter
	}

	entries := []ordering.Entry{}
	if err := repo.selectAll(ctx, scope, repo.db.Read, repo.entriesQuery(where, false), &entries, args); err != nil {
		return nil, repo.fail(scope, "get entries", err)
	}

	return entries, nil
}

// EntriesTx is Entries on the write side of a transaction, rows locked for update.
func (repo *Repository[T]) EntriesTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) ([]ordering.Entry, error) {
	ctx, scope := repo.span(ctx, "EntriesTx")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return nil, errRequiredFilter
	}

	entries := []ordering.Entry{}
	if err := repo.selectAll(ctx, scope, sqltx, repo.entriesQuery(where, true), &entries, args); err != nil {
		return nil, repo.fail(scope, "get entries", err)
	}

	return entries, nil
}

// ReorderTx rewrites sort_order of the rows named by ids to their position
// in ids with a single statement. Every id must match a row of filter.
func (repo *Repository[T]) ReorderTx(ctx context.Context, sqltx *sqlx.Tx, ids []string, filter dto.FilterGroup) error {
	ctx, scope := repo.span(ctx, "ReorderTx")
	defer scope.End()

	if len(ids) == 0 {
		return nil
	}

	where, args := filter.GetWhereClause()
	if where == "" {
		return errRequiredFilter
	}

	args["ordered_ids"] = pq.Array(ids)

	query := fmt.Sprintf(
		"UPDATE %[1]s SET %[2]s = v.ord - 1 FROM unnest(CAST(:ordered_ids AS uuid[])) WITH ORDINALITY AS v(id, ord) WHERE %[1]s.%[3]s = v.id AND %[4]s",
		repo.table, constant.FieldSortOrder, repo.primaryColumn, where,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res, err := sqltx.NamedExecContext(ctx, query, args)
	if err != nil {
		return repo.fail(scope, "reorder data", translateError(repo.entity, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return repo.fail(scope, "read reorder result", err)
	}

	if int(affected) != len(ids) {
		err = fmt.Errorf("%w: reordered %d of %d %s rows", errReorderMismatch, affected, len(ids), repo.entity)
		scope.TraceError(err)

		return err
	}

	return nil
}

func (repo *Repository[T]) sumQuery(column, where string) string {
	return fmt.Sprintf("SELECT COALESCE(SUM(%s.%s), 0) FROM %s %s", repo.table, column, repo.table, where)
}

// Sum adds up column over the rows matching filter, 0 when none match.
func (repo *Repository[T]) Sum(ctx context.Context, column string, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.span(ctx, "Sum")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var total int
	if err := repo.get(ctx, scope, repo.db.Read, repo.sumQuery(column, where), &total, args); err != nil {
		return 0, repo.fail(scope, "sum data", err)
	}

	return total, nil
}

// SumTx is Sum on the write side of a transaction.
func (repo *Repository[T]) SumTx(ctx context.Context, sqltx *sqlx.Tx, column string, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.span(ctx, "SumTx")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var total int
	if err := repo.get(ctx, scope, sqltx, repo.sumQuery(column, where), &total, args); err != nil {
		return 0, repo.fail(scope, "sum data", err)
	}

	return total, nil
}

// LockTx takes a transaction-scoped advisory lock on key within the table,
// held until sqltx commits or rolls back.
func (repo *Repository[T]) LockTx(ctx context.Context, sqltx *sqlx.Tx, key string) error {
	ctx, scope := repo.span(ctx, "LockTx")
	defer scope.End()

	query := "SELECT pg_advisory_xact_lock(hashtext(:lock_key))"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := sqltx.NamedExecContext(ctx, query, map[string]any{"lock_key": repo.table + ":" + key}); err != nil {
		return repo.fail(scope, "lock rows", err)
	}

	return nil
}
