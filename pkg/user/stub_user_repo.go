package user

import (
	"context"
)

type StubRepo struct {
	nextId int
	data   map[int]User
}

func NewStubRepo() *StubRepo {
	return &StubRepo{data: map[int]User{}}
}

func (s *StubRepo) CreateUser(ctx context.Context, user User) (int, error) {
	s.nextId++
	user.Id = s.nextId
	s.data[user.Id] = user
	return user.Id, nil
}

func (s *StubRepo) GetUser(ctx context.Context, id int) (User, error) {
	user, ok := s.data[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *StubRepo) GetUserByUid(ctx context.Context, uid string) (User, error) {
	for _, user := range s.data {
		if user.Uid == uid {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubRepo) GetUserByUsername(ctx context.Context, username string) (User, error) {
	for _, user := range s.data {
		if user.Username == username {
			return user, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (s *StubRepo) UpdateSettings(ctx context.Context, userId int, settings Settings) (bool, error) {
	user, ok := s.data[userId]
	if !ok {
		return false, nil
	}
	user.Settings = settings
	s.data[userId] = user
	return true, nil
}

func (s *StubRepo) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	for _, user := range s.data {
		if user.Username == username {
			return false, nil
		}
	}
	return true, nil
}
