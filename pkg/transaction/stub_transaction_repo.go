package transaction

import (
	"context"
)

type StubRepo struct {
	nextId int
	data   map[int]Transaction
}

func NewStubRepo() *StubRepo {
	return &StubRepo{nextId: 0, data: map[int]Transaction{}}
}

func (s *StubRepo) StoreAll(ctx context.Context, userId int, transactions []Transaction) (int, error) {
	for _, tx := range transactions {
		s.nextId++
		tx.ID = s.nextId
		s.data[tx.ID] = tx
	}
	return len(transactions), nil
}

func (s *StubRepo) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(s.data))
	for id := 1; id <= s.nextId; id++ {
		if tx, ok := s.data[id]; ok {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

func (s *StubRepo) GetForPeriod(ctx context.Context, userId int, period Period) ([]Transaction, error) {
	all, _ := s.GetAll(ctx, userId)
	matching := make([]Transaction, 0, len(all))
	for _, tx := range all {
		if period.Contains(tx.Date) {
			matching = append(matching, tx)
		}
	}
	return matching, nil
}

func (s *StubRepo) Update(ctx context.Context, userId int, tx Transaction) (bool, error) {
	if _, ok := s.data[tx.ID]; !ok {
		return false, nil
	}
	s.data[tx.ID] = tx
	return true, nil
}

func (s *StubRepo) Delete(ctx context.Context, userId int, id int) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}
