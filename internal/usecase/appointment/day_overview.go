package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/receptionist-api/internal/domain/appointment"
	"github.com/BruksfildServices01/receptionist-api/internal/timezone"
)

// Resumo do dia para superfícies de preview (hover, célula do mês)
type GetDayOverview struct {
	repo domain.Repository
}

func NewGetDayOverview(repo domain.Repository) *GetDayOverview {
	return &GetDayOverview{repo: repo}
}

func (uc *GetDayOverview) Execute(
	ctx context.Context,
	businessID uint,
	date time.Time,
) (domain.DayOverview, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return domain.DayOverview{}, err
	}

	start, end := timezone.DayBounds(date, biz.Timezone)

	appointments, err := uc.repo.ListForPeriod(ctx, businessID, start, end)
	if err != nil {
		return domain.DayOverview{}, err
	}

	return domain.GroupForDay(start, appointments), nil
}
