package service

import (
	"context"

	"github.com/grachmannico95/gig-earnings/internal/domain"
	"github.com/grachmannico95/gig-earnings/internal/earnings"
	"github.com/grachmannico95/gig-earnings/pkg/logger"
)

type ConnectService interface {
	Calculate(ctx context.Context, file domain.UploadedFile) (domain.EarningsBreakdown, error)
}

type connectService struct {
	logger *logger.Logger
}

func NewConnectService(log *logger.Logger) ConnectService {
	return &connectService{logger: log}
}

func (s *connectService) Calculate(ctx context.Context, file domain.UploadedFile) (domain.EarningsBreakdown, error) {
	ctx = logger.WithSource(ctx, string(domain.SourceConnect))

	s.logger.Info(ctx, "Calculating Connect earnings",
		"file_name", file.Name,
	)

	text, err := ReadUploadedText(file)
	if err != nil {
		s.logger.Warn(ctx, "Rejected Connect upload",
			"file_name", file.Name,
			"error", err,
		)
		return domain.EarningsBreakdown{}, err
	}

	breakdown, err := earnings.CalculateConnect(text)
	if err != nil {
		s.logger.Warn(ctx, "Failed to aggregate Connect export",
			"file_name", file.Name,
			"error", err,
		)
		return domain.EarningsBreakdown{}, err
	}

	s.logger.Info(ctx, "Connect earnings calculated",
		"total", breakdown.Total,
		"received", breakdown.Received,
		"pending", breakdown.Pending,
		"bonused", breakdown.Bonused,
	)

	return breakdown, nil
}
