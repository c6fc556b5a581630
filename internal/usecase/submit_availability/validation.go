package submit_availability

import (
	"fmt"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

// validateRequest валидирует неделю целиком и возвращает нормализованную форму
// Любая ошибка отклоняет всю отправку: частичное применение плохой недели недопустимо
func validateRequest(req *Request) (map[domain.Weekday][]types.TimeString, error) {
	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrValidation)
	}

	week := make(map[domain.Weekday][]types.TimeString, len(req.Week))

	for dayKey, labels := range req.Week {
		day, err := domain.ParseWeekday(dayKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}

		if len(labels) > domain.MaxSlotsPerDay {
			return nil, fmt.Errorf("%w: %s has %d slots, max %d", ErrValidation, day, len(labels), domain.MaxSlotsPerDay)
		}

		seen := make(map[types.TimeString]struct{}, len(labels))
		parsed := make([]types.TimeString, 0, len(labels))

		for _, raw := range labels {
			label, err := types.NewTimeStringFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrValidation, day, err)
			}

			if _, ok := seen[label]; ok {
				return nil, fmt.Errorf("%w: duplicate label %s on %s", ErrValidation, label, day)
			}
			seen[label] = struct{}{}

			parsed = append(parsed, label)
		}

		week[day] = parsed
	}

	return week, nil
}
