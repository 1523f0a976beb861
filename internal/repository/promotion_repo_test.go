package repository

import (
	"context"
	"testing"
	"time"

	"agrisetu/internal/model"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromotionRepository_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	p := &model.Promotion{CustomerID: testCustomerID, Percent: 15, Source: model.PromotionSourceQuiz, GrantedAt: time.Now()}
	mock.ExpectExec("INSERT INTO promotions").
		WithArgs(p.CustomerID, p.Percent, p.Source, p.GrantedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewPromotionRepository(mock).Upsert(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPromotionRepository_FindByCustomer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("FROM promotions WHERE customer_id").WithArgs(testCustomerID).
		WillReturnRows(pgxmock.NewRows([]string{"customer_id", "percent", "source", "granted_at"}).
			AddRow(testCustomerID, 20, model.PromotionSourceQuiz, now))

	p, err := NewPromotionRepository(mock).FindByCustomer(context.Background(), testCustomerID)

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 20, p.Percent)
}
