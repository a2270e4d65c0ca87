package service

import (
	"context"
	"testing"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectService_Calculate(t *testing.T) {
	svc := NewConnectService(logger.NewNop())

	file := textFile("connect.csv", "text/csv",
		"Payment Received,Payment Pending,Amount Bonused\n10,5,2\n3,0,1\n")

	b, err := svc.Calculate(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 21.0, b.Total)
	assert.Equal(t, 13.0, b.Received)
	assert.Equal(t, 5.0, b.Pending)
	assert.Equal(t, 3.0, b.Bonused)
}

func TestConnectService_Calculate_Errors(t *testing.T) {
	svc := NewConnectService(logger.NewNop())
	ctx := context.Background()

	_, err := svc.Calculate(ctx, textFile("connect.pdf", "application/pdf", "x"))
	assert.ErrorIs(t, err, domain.ErrInvalidFileType)

	_, err = svc.Calculate(ctx, textFile("connect.csv", "", "Payment Received,Amount Bonused\n1,2"))
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
	assert.Equal(t, domain.MsgMissingColumns, domain.UserMessage(err))
}
