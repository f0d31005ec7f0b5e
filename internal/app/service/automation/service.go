package automation

import (
	"context"
	"fmt"

	"github.com/lumenshop/beacon/internal/app/service/billing"
	models "github.com/lumenshop/beacon/internal/models"
	types "github.com/lumenshop/beacon/pkg/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service is the automation engine: rule evaluation, job scheduling and the
// batched due-job processor.
type Service struct {
	db         *gorm.DB
	log        *zap.SugaredLogger
	billing    *billing.Service
	audience   AudienceResolver
	dispatcher Dispatcher
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, bill *billing.Service, audience AudienceResolver, dispatcher Dispatcher) *Service {
	return &Service{db: db, log: log, billing: bill, audience: audience, dispatcher: dispatcher}
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

type ScanJobsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanJobsResponse struct {
	Items []*models.AutomationJob `json:"items"`
	Total int64                   `json:"total"`
}

// ScanJobs implements paginated job inspection for the admin surface. Failed
// jobs are only observable here; the processor never surfaces per-job errors.
func (s *Service) ScanJobs(ctx context.Context, req *ScanJobsRequest) (*ScanJobsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.AutomationJob{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	var rows []*models.AutomationJob

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	if req.SortBy != "" {
		q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: req.SortBy}, Desc: req.SortOrder != "asc"}}})
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &ScanJobsResponse{Items: rows, Total: total}, nil
}
