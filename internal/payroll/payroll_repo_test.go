package payroll_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/payroll"
)

// Two separate mock connections: the repository is built over the first,
// the transaction lives on the second. Every statement issued through
// WithTx must land on the transaction's connection, never the pool the
// repository was constructed with.
func TestWithTxRunsStatementsOnTransaction(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { poolDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	repo := payroll.NewRepository(gormDB).WithTx(tx)
	userID := uuid.NewString()

	txMock.ExpectExec(`UPDATE "users" SET "name"`).
		WithArgs("Ayesha Raza", userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdateUserName(context.Background(), userID, "Ayesha Raza"))

	txMock.ExpectQuery(`SELECT \* FROM "salaries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "gross_salary"}).
			AddRow(uuid.NewString(), "E0126001", 60000.0))
	sal, err := repo.FindSalary(context.Background(), "E0126001")
	assert.NoError(t, err)
	assert.Equal(t, 60000.0, sal.GrossSalary)

	txMock.ExpectRollback()
	assert.NoError(t, tx.Rollback())

	// The rollback covers both statements; the construction pool never
	// saw any traffic.
	assert.NoError(t, txMock.ExpectationsWereMet())
	assert.NoError(t, poolMock.ExpectationsWereMet())
}

// The base repository keeps using the pool after a transactional copy
// has been taken.
func TestWithTxLeavesBaseRepositoryOnPool(t *testing.T) {
	poolDB, poolMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { poolDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: poolDB}), &gorm.Config{})
	assert.NoError(t, err)

	txDB, txMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { txDB.Close() })

	txMock.ExpectBegin()
	tx, err := txDB.Begin()
	assert.NoError(t, err)

	base := payroll.NewRepository(gormDB)
	_ = base.WithTx(tx)

	poolMock.ExpectQuery(`SELECT \* FROM "salaries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "gross_salary"}).
			AddRow(uuid.NewString(), "E0126001", 60000.0))
	_, err = base.FindSalary(context.Background(), "E0126001")
	assert.NoError(t, err)

	assert.NoError(t, poolMock.ExpectationsWereMet())
}
