package user

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistAll(ctx context.Context, userIDs []uint) (bool, error)
	List(ctx context.Context, page, pageSize int) ([]*User, int64, error)
}
