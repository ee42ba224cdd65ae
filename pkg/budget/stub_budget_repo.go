package budget

import (
	"context"

	"github.com/finboard/finboard/pkg/transaction"
)

type StubRepo struct {
	nextId int
	data   map[int]BudgetLine
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[int]BudgetLine{}}
}

func (s *StubRepo) Upsert(ctx context.Context, userId int, line BudgetLine) (BudgetLine, error) {
	for id, existing := range s.data {
		if existing.Period == line.Period && existing.Category == line.Category && existing.Subcategory == line.Subcategory {
			line.ID = id
			s.data[id] = line
			return line, nil
		}
	}
	s.nextId++
	line.ID = s.nextId
	s.data[line.ID] = line
	return line, nil
}

func (s *StubRepo) GetForPeriod(ctx context.Context, userId int, period transaction.Period) ([]BudgetLine, error) {
	lines := make([]BudgetLine, 0)
	for id := 1; id <= s.nextId; id++ {
		if line, ok := s.data[id]; ok && line.Period == period {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func (s *StubRepo) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}
